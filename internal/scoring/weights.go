package scoring

import (
	"errors"
	"fmt"

	"flowx/internal/model"
)

var ErrInvalidWeights = errors.New("invalid scoring weights")

// Weights is the priority weight table plus the share of a weight earned by
// a late completion.
type Weights struct {
	Low        float64
	Medium     float64
	High       float64
	LateFactor float64
}

// DefaultWeights returns Low 0.5, Medium 1.0, High 1.5 and half credit for
// late completions.
func DefaultWeights() Weights {
	return Weights{Low: 0.5, Medium: 1.0, High: 1.5, LateFactor: 0.5}
}

// Validate requires positive priority weights and a late factor in [0,1].
func (w Weights) Validate() error {
	if w.Low <= 0 || w.Medium <= 0 || w.High <= 0 {
		return fmt.Errorf("%w: priority weights must be positive", ErrInvalidWeights)
	}
	if w.LateFactor < 0 || w.LateFactor > 1 {
		return fmt.Errorf("%w: late factor must be within [0,1]", ErrInvalidWeights)
	}
	return nil
}

// For returns the weight of p. Unknown priorities weigh like Medium.
func (w Weights) For(p model.Priority) float64 {
	switch p {
	case model.PriorityLow:
		return w.Low
	case model.PriorityHigh:
		return w.High
	default:
		return w.Medium
	}
}
