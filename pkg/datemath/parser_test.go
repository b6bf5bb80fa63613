package datemath

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Date(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	p := NewParser(loc)

	// Wednesday
	base := time.Date(2025, 3, 12, 23, 30, 0, 0, loc)

	tests := []struct {
		expr string
		want string
	}{
		{"", "2025-03-12"},
		{"today", "2025-03-12"},
		{"  Tomorrow ", "2025-03-13"},
		{"yesterday", "2025-03-11"},
		{"2025-04-01", "2025-04-01"},
		{"in 3 days", "2025-03-15"},
		{"in 1 day", "2025-03-13"},
		{"in 2 weeks", "2025-03-26"},
		{"in 1 month", "2025-04-12"},
		{"next friday", "2025-03-14"},
		{"next wednesday", "2025-03-19"},
		{"next  Monday", "2025-03-17"},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := p.Date(tc.expr, base)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParser_BaseInOtherZone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Ho_Chi_Minh")
	require.NoError(t, err)

	// 20:00 UTC is 03:00 the next day in UTC+7.
	base := time.Date(2025, 3, 12, 20, 0, 0, 0, time.UTC)
	got, err := NewParser(loc).Date("today", base)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-13", got)
}

func TestParser_Unknown(t *testing.T) {
	p := NewParser(time.UTC)
	for _, expr := range []string{"someday", "next week", "in two days", "2025-13-01", "next funday"} {
		_, err := p.Parse(expr, time.Now())
		assert.ErrorIs(t, err, ErrUnknownExpression, expr)
	}
}
