package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, Date("2025-03-10"), d)

	for _, raw := range []string{"", "2025-3-10", "2025-02-30", "10/03/2025", "2025-03-10T00:00"} {
		_, err := ParseDate(raw)
		assert.ErrorIs(t, err, ErrInvalidDate, raw)
	}
}

func TestDate_Weekday(t *testing.T) {
	day, err := Date("2025-03-10").Weekday()
	require.NoError(t, err)
	assert.Equal(t, Monday, day)

	day, err = Date("2025-03-16").Weekday()
	require.NoError(t, err)
	assert.Equal(t, Sunday, day)

	_, err = Date("not-a-date").Weekday()
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDateOf_UsesTimeLocation(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	utc := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, Date("2025-03-10"), DateOf(utc))
	assert.Equal(t, Date("2025-03-11"), DateOf(utc.In(loc)))
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("09:05")
	require.NoError(t, err)
	hour, minute := tod.Clock()
	assert.Equal(t, 9, hour)
	assert.Equal(t, 5, minute)

	for _, raw := range []string{"", "9:05", "24:00", "12:60", "12-30", "12:30:00"} {
		_, err := ParseTimeOfDay(raw)
		assert.ErrorIs(t, err, ErrInvalidTimeOfDay, raw)
	}
}

func TestTimeOfDay_StringOrder(t *testing.T) {
	assert.Less(t, TimeOfDay("08:59"), TimeOfDay("09:00"))
	assert.Less(t, TimeOfDay("09:00"), TimeOfDay("17:00"))
}

func TestTask_Window(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	task := Task{ID: "t1", Date: "2025-03-10", StartTime: "23:30", Duration: 45}

	start, end, err := task.Window(loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 23, 30, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 3, 11, 0, 15, 0, 0, loc), end, "windows may cross midnight")

	task.StartTime = "7pm"
	_, _, err = task.Window(loc)
	assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
}

func TestStatusPredicates(t *testing.T) {
	assert.False(t, IsTerminal(StatusPending))
	assert.True(t, IsTerminal(StatusCompleted))
	assert.True(t, IsTerminal(StatusCompletedLate))
	assert.True(t, IsTerminal(StatusNotCompleted))

	assert.True(t, IsSuccessful(StatusCompleted))
	assert.True(t, IsSuccessful(StatusCompletedLate))
	assert.False(t, IsSuccessful(StatusNotCompleted))
	assert.False(t, IsSuccessful(StatusPending))

	assert.False(t, Status("Done").Valid())
}

func TestEnumsValid(t *testing.T) {
	assert.True(t, PriorityHigh.Valid())
	assert.False(t, Priority("Urgent").Valid())
	assert.True(t, AlertBeforeCompletion.Valid())
	assert.False(t, AlertMode("never").Valid())
	assert.True(t, ProfessionBusinessOwner.Valid())
	assert.False(t, Profession("Astronaut").Valid())
	assert.True(t, Saturday.Valid())
	assert.False(t, DayOfWeek("Funday").Valid())
}

func TestUserProfile_DisplayProfession(t *testing.T) {
	p := UserProfile{Profession: ProfessionOther, CustomProfession: "Pilot"}
	assert.Equal(t, "Pilot", p.DisplayProfession())

	p.CustomProfession = ""
	assert.Equal(t, "Other", p.DisplayProfession())

	p = UserProfile{Profession: ProfessionDoctor, CustomProfession: "ignored"}
	assert.Equal(t, "Doctor", p.DisplayProfession())
}

func TestTask_JSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(Task{
		ID: "t1", Name: "Read", Date: "2025-03-10", StartTime: "20:00", Duration: 30,
		Priority: PriorityLow, Status: StatusCompletedLate, AlertTime: AlertAtStart,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": "t1", "name": "Read", "date": "2025-03-10", "startTime": "20:00",
		"duration": 30, "priority": "Low", "status": "Completed Late", "alertTime": "at-start"
	}`, string(raw))
}
