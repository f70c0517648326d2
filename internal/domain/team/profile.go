package team

// Work-hour policy per location type. Offshore teams run a 44-hour week,
// everyone else the standard 40.
const (
	onshoreDailyHours  = 8.0
	onshoreWeeklyHours = 40.0

	offshoreDailyHours  = 8.8
	offshoreWeeklyHours = 44.0
)

// ExpectedDailyHours returns the expected working hours per day for a
// location type. Total function: unknown values fall back to onshore.
func ExpectedDailyHours(location LocationType) float64 {
	if location == LocationOffshore {
		return offshoreDailyHours
	}
	return onshoreDailyHours
}

// ExpectedWeeklyHours returns the expected working hours per week for a
// location type. Total function: unknown values fall back to onshore.
func ExpectedWeeklyHours(location LocationType) float64 {
	if location == LocationOffshore {
		return offshoreWeeklyHours
	}
	return onshoreWeeklyHours
}
