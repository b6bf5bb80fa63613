// Package assistant wraps the text-generation collaborator. Every method
// answers: when the model is unreachable, slow or returns nothing usable,
// a fixed fallback text is returned instead and the failure is only logged.
package assistant

import (
	"context"

	"flowx/internal/model"
	"flowx/pkg/llmprovider"
)

// MaxSuggestions caps the number of task suggestions returned.
const MaxSuggestions = 5

// Assistant produces suggestions, feedback and reminder scripts.
type Assistant interface {
	// SuggestTasks returns up to MaxSuggestions off-hours task names for the
	// profile's profession, or an empty slice.
	SuggestTasks(ctx context.Context, p model.UserProfile) []string
	MotivationalFeedback(ctx context.Context, score int, tasks []model.Task) string
	VoiceReminderText(ctx context.Context, t model.Task) string
}

// Generator is the text-generation backend, normally *llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}
