package team

import "fmt"

// Catalog is the process-wide, immutable set of team configurations. It is
// built once at startup from fixture data and validated before use; lookups
// after that cannot fail in a surprising way.
type Catalog struct {
	teams map[string]TeamConfig
	order []string
}

// NewCatalog validates the given configurations and builds a catalog.
// Validation failures are configuration errors and should abort startup.
func NewCatalog(configs []TeamConfig) (*Catalog, error) {
	c := &Catalog{teams: make(map[string]TeamConfig, len(configs))}
	for _, cfg := range configs {
		if err := validateTeam(cfg); err != nil {
			return nil, fmt.Errorf("%w: team %q: %v", ErrInvalidCatalog, cfg.ID, err)
		}
		if _, exists := c.teams[cfg.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate team id %q", ErrInvalidCatalog, cfg.ID)
		}
		c.teams[cfg.ID] = cfg
		c.order = append(c.order, cfg.ID)
	}
	return c, nil
}

func validateTeam(cfg TeamConfig) error {
	if cfg.ID == "" || cfg.Name == "" {
		return fmt.Errorf("id and name are required")
	}
	if len(cfg.Activities) == 0 {
		return fmt.Errorf("at least one activity is required")
	}
	seen := make(map[string]bool, len(cfg.Activities))
	for _, a := range cfg.Activities {
		if a.ID == "" {
			return fmt.Errorf("activity id is required")
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate activity id %q", a.ID)
		}
		seen[a.ID] = true
	}
	for _, loc := range []LocationType{LocationOnshore, LocationOffshore} {
		goals, ok := cfg.Goals[loc]
		if !ok {
			return fmt.Errorf("missing goal profile for %s", loc)
		}
		if goals.DailyHours <= 0 || goals.WeeklyHours <= 0 {
			return fmt.Errorf("%s goal targets must be positive", loc)
		}
	}
	return nil
}

// Get returns the configuration for a team id.
func (c *Catalog) Get(teamID string) (TeamConfig, error) {
	cfg, ok := c.teams[teamID]
	if !ok {
		return TeamConfig{}, ErrTeamNotFound
	}
	return cfg, nil
}

// List returns all team configurations in registration order.
func (c *Catalog) List() []TeamConfig {
	out := make([]TeamConfig, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.teams[id])
	}
	return out
}

// GoalsFor returns the goal snapshot for a team and location, used to seed a
// user's goals at registration time.
func (c *Catalog) GoalsFor(teamID string, location LocationType) (map[string]float64, error) {
	cfg, err := c.Get(teamID)
	if err != nil {
		return nil, err
	}
	return cfg.Goals[location].ToMap(), nil
}
