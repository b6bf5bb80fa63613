// Package scoring derives the 0-100 efficiency score of a day from its tasks
// and aggregates per-day scores into ledger summaries.
package scoring

import (
	"math"

	"flowx/internal/model"
)

// Engine computes scores with a fixed weight table.
type Engine struct {
	weights Weights
}

// New returns an Engine using w. Invalid weights fall back to the defaults.
func New(w Weights) *Engine {
	if err := w.Validate(); err != nil {
		w = DefaultWeights()
	}
	return &Engine{weights: w}
}

func (e *Engine) Weights() Weights { return e.weights }

// Earned returns the earned and total weight of tasks.
func (e *Engine) Earned(tasks []model.Task) (earned, total float64) {
	for _, t := range tasks {
		w := e.weights.For(t.Priority)
		total += w
		switch t.Status {
		case model.StatusCompleted:
			earned += w
		case model.StatusCompletedLate:
			earned += w * e.weights.LateFactor
		}
	}
	return earned, total
}

// Score returns round(earned/total*100), or 0 for an empty task set.
func (e *Engine) Score(tasks []model.Task) int {
	earned, total := e.Earned(tasks)
	if total <= 0 {
		return 0
	}
	score := int(math.Round(earned / total * 100))
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}

// Record builds the ledger entry for date. It reports false when tasks is
// empty: no record is ever written for a day without tasks.
func (e *Engine) Record(date model.Date, tasks []model.Task) (model.PerformanceRecord, bool) {
	if len(tasks) == 0 {
		return model.PerformanceRecord{}, false
	}
	completed := 0
	for _, t := range tasks {
		if model.IsSuccessful(t.Status) {
			completed++
		}
	}
	return model.PerformanceRecord{
		Date:           date,
		Score:          e.Score(tasks),
		CompletedTasks: completed,
		TotalTasks:     len(tasks),
	}, true
}
