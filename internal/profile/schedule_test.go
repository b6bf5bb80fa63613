package profile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flowx/internal/model"
	"flowx/internal/profile"
)

func TestIsWorkDay(t *testing.T) {
	p := profile.DefaultProfile("ana")

	assert.True(t, profile.IsWorkDay(p, "2026-03-02"), "Monday")
	assert.True(t, profile.IsWorkDay(p, "2026-03-06"), "Friday")
	assert.False(t, profile.IsWorkDay(p, "2026-03-07"), "Saturday")
	assert.False(t, profile.IsWorkDay(p, "2026-03-08"), "Sunday")
	assert.False(t, profile.IsWorkDay(p, "not-a-date"))
}

func TestConflictsWithWindow(t *testing.T) {
	tests := []struct {
		start model.TimeOfDay
		want  bool
	}{
		{"08:59", false},
		{"09:00", true},
		{"12:30", true},
		{"16:59", true},
		{"17:00", false},
		{"20:00", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, profile.ConflictsWithWindow(tc.start, "09:00", "17:00"), tc.start)
	}
}

func TestWorkConflict(t *testing.T) {
	p := profile.DefaultProfile("ana")
	p.ExtraHours = []model.ExtraWorkHour{
		{ID: "x1", Day: model.Saturday, Start: "10:00", End: "12:00"},
	}

	w, ok := profile.WorkConflict(p, "2026-03-02", "10:00")
	assert.True(t, ok)
	assert.Equal(t, profile.Window{Start: "09:00", End: "17:00"}, w)

	_, ok = profile.WorkConflict(p, "2026-03-02", "18:00")
	assert.False(t, ok, "after hours on a work day")

	_, ok = profile.WorkConflict(p, "2026-03-08", "10:00")
	assert.False(t, ok, "rest day")

	w, ok = profile.WorkConflict(p, "2026-03-07", "11:00")
	assert.True(t, ok, "extra hours on Saturday")
	assert.True(t, w.Extra)

	_, ok = profile.WorkConflict(p, "2026-03-07", "12:00")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	valid := profile.DefaultProfile("ana")
	assert.NoError(t, profile.Validate(valid))

	noName := valid
	noName.Username = ""
	assert.ErrorIs(t, profile.Validate(noName), profile.ErrInvalidUsername)

	inverted := valid
	inverted.RegularHours = model.WorkingHours{Start: "17:00", End: "09:00"}
	assert.ErrorIs(t, profile.Validate(inverted), profile.ErrInvalidProfile)

	badDay := valid
	badDay.WorkingDays = []model.DayOfWeek{"Funday"}
	assert.ErrorIs(t, profile.Validate(badDay), profile.ErrInvalidProfile)

	badExtra := valid
	badExtra.ExtraHours = []model.ExtraWorkHour{{ID: "1", Day: model.Sunday, Start: "10:00", End: "10:00"}}
	assert.ErrorIs(t, profile.Validate(badExtra), profile.ErrInvalidProfile)
}
