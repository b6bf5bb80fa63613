package assistant

import (
	"context"
	"fmt"
	"strings"

	"flowx/internal/model"
)

func (a *implAssistant) MotivationalFeedback(ctx context.Context, score int, tasks []model.Task) string {
	key := feedbackKey(score, tasks)
	if cached, ok := a.feedback.Get(key); ok {
		return cached
	}

	text, err := a.generate(ctx, feedbackPrompt(score, tasks), false)
	if err != nil {
		a.l.Warnf(ctx, "assistant.MotivationalFeedback: %v", err)
		return FeedbackFallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return FeedbackEmpty
	}
	a.feedback.Add(key, text)
	return text
}

// feedbackKey identifies a day's outcome: same score and same task statuses
// give the same feedback.
func feedbackKey(score int, tasks []model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", score)
	for _, t := range tasks {
		fmt.Fprintf(&b, "|%s=%s", t.Name, t.Status)
	}
	return b.String()
}
