package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"flowx/internal/model"
	"flowx/internal/scoring"
)

func TestSummarize(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		s := scoring.Summarize(nil)
		assert.False(t, s.HasData)
		assert.Zero(t, s.Count)
	})

	t.Run("aggregates", func(t *testing.T) {
		records := []model.PerformanceRecord{
			{Date: "2026-03-01", Score: 40, CompletedTasks: 1, TotalTasks: 3},
			{Date: "2026-03-02", Score: 75, CompletedTasks: 1, TotalTasks: 2},
			{Date: "2026-03-03", Score: 50, CompletedTasks: 1, TotalTasks: 1},
		}
		s := scoring.Summarize(records)
		assert.True(t, s.HasData)
		assert.Equal(t, 75, s.Peak)
		assert.Equal(t, 55, s.Average)
		assert.Equal(t, 3, s.Count)
		assert.Equal(t, 6, s.TotalTasks)
	})
}

func TestBreakdownOf(t *testing.T) {
	b := scoring.BreakdownOf([]model.Task{
		{Status: model.StatusCompleted},
		{Status: model.StatusCompleted},
		{Status: model.StatusCompletedLate},
		{Status: model.StatusNotCompleted},
		{Status: model.StatusPending},
	})
	assert.Equal(t, scoring.Breakdown{Done: 2, Late: 1, Missed: 1, Pending: 1}, b)
}
