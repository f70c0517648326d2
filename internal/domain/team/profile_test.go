package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpectedHours(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 8.0, ExpectedDailyHours(LocationOnshore))
	assert.Equal(t, 40.0, ExpectedWeeklyHours(LocationOnshore))
	assert.Equal(t, 8.8, ExpectedDailyHours(LocationOffshore))
	assert.Equal(t, 44.0, ExpectedWeeklyHours(LocationOffshore))

	// Unknown locations never panic, they take the onshore profile.
	assert.Equal(t, 8.0, ExpectedDailyHours(LocationType("lunar")))
	assert.Equal(t, 40.0, ExpectedWeeklyHours(LocationType("")))
}

func TestParseLocationType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, LocationOffshore, ParseLocationType("offshore"))
	assert.Equal(t, LocationOnshore, ParseLocationType("onshore"))
	assert.Equal(t, LocationOnshore, ParseLocationType(""))
	assert.Equal(t, LocationOnshore, ParseLocationType("Offshore"))
}

func TestGoalSetToMap(t *testing.T) {
	t.Parallel()
	goals := GoalSet{DailyHours: 8, WeeklyHours: 40, ExtraName: "uptime_target", ExtraTarget: 99.9}

	m := goals.ToMap()

	assert.Equal(t, 8.0, m["daily_hours"])
	assert.Equal(t, 40.0, m["weekly_hours"])
	assert.Equal(t, 99.9, m["uptime_target"])

	// No extra goal, no extra key.
	m = GoalSet{DailyHours: 8, WeeklyHours: 40}.ToMap()
	assert.Len(t, m, 2)
}
