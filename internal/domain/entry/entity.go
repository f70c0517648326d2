package entry

import "time"

// Work locations accepted on a daily entry.
const (
	LocationOffice     = "office"
	LocationRemote     = "remote"
	LocationHybrid     = "hybrid"
	LocationClientSite = "client-site"
	LocationTravel     = "travel"
)

// WorkLocations lists the accepted work_location values.
var WorkLocations = []string{
	LocationOffice, LocationRemote, LocationHybrid, LocationClientSite, LocationTravel,
}

// DailyEntry is one user's logged activity hours for one calendar date.
// (UserID, Date) is the natural key: saving the same pair again replaces the
// prior record. TotalHours is always derived from ActivityHours at save time.
type DailyEntry struct {
	ID            string
	UserID        string
	Date          string // YYYY-MM-DD
	ActivityHours map[string]float64
	TotalHours    float64
	Notes         string
	WorkLocation  string
	MoodScore     int
	EnergyLevel   int
	UpdatedAt     time.Time
}

// SumActivityHours returns the total of all activity hours in the map.
func SumActivityHours(hours map[string]float64) float64 {
	var total float64
	for _, h := range hours {
		total += h
	}
	return total
}
