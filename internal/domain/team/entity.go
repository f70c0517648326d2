package team

// LocationType selects the work-hour policy applied to a user.
type LocationType string

const (
	LocationOnshore  LocationType = "onshore"
	LocationOffshore LocationType = "offshore"
)

// ParseLocationType maps a raw string to a LocationType. Anything other than
// the literal "offshore" resolves to onshore, including empty and unknown
// values, so that a bad location can never break metric computation.
func ParseLocationType(s string) LocationType {
	if s == string(LocationOffshore) {
		return LocationOffshore
	}
	return LocationOnshore
}

// ActivityDef is one time-trackable category of work within a team.
type ActivityDef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Category string `json:"category"`
}

// GoalSet holds the targets for one location type. The extra goal is a named
// team-specific target (e.g. monthly_productivity, migration_success_rate)
// carried as an explicit field instead of being fished out of a loose map.
type GoalSet struct {
	DailyHours  float64 `json:"daily_hours"`
	WeeklyHours float64 `json:"weekly_hours"`
	ExtraName   string  `json:"extra_name"`
	ExtraTarget float64 `json:"extra_target"`
}

// ToMap flattens the goal set into the goal-name -> target form stored on a
// user at registration time.
func (g GoalSet) ToMap() map[string]float64 {
	m := map[string]float64{
		"daily_hours":  g.DailyHours,
		"weekly_hours": g.WeeklyHours,
	}
	if g.ExtraName != "" {
		m[g.ExtraName] = g.ExtraTarget
	}
	return m
}

// TeamConfig is static configuration for one team: display metadata, its
// ordered activity definitions, and goal profiles per location type.
type TeamConfig struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Icon        string                   `json:"icon"`
	Color       string                   `json:"color"`
	Description string                   `json:"description"`
	Activities  []ActivityDef            `json:"activities"`
	Goals       map[LocationType]GoalSet `json:"goals"`
}
