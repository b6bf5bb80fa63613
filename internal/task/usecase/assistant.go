package usecase

import (
	"context"

	"flowx/internal/model"
)

// VoiceReminder asks the assistant for a reminder script and stores it on
// the task. The assistant always answers, falling back to a fixed text.
func (uc *implUseCase) VoiceReminder(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.Get(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	text := uc.assistant.VoiceReminderText(ctx, t)
	updated, err := uc.repo.SetVoiceReminder(ctx, t.ID, text)
	if err != nil {
		return model.Task{}, mapRepoError(err)
	}
	return updated, nil
}

func (uc *implUseCase) Suggestions(ctx context.Context) ([]string, error) {
	p, err := uc.profiles.Current(ctx)
	if err != nil {
		return nil, err
	}
	return uc.assistant.SuggestTasks(ctx, p), nil
}
