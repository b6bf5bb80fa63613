package assistant

import (
	"context"
	"strings"

	"flowx/internal/model"
)

func (a *implAssistant) VoiceReminderText(ctx context.Context, t model.Task) string {
	text, err := a.generate(ctx, voicePrompt(t.Name), false)
	if err != nil {
		a.l.Warnf(ctx, "assistant.VoiceReminderText: %v", err)
		return VoiceFallback(t.Name)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return VoiceEmpty(t.Name)
	}
	return text
}
