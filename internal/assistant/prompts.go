package assistant

import (
	"fmt"
	"strings"

	"flowx/internal/model"
)

const (
	FeedbackFallback = "Great job focusing on your goals today!"
	FeedbackEmpty    = "Keep up the great effort! Every small step counts towards better habits."
)

func VoiceFallback(name string) string { return "Reminder: " + name }

func VoiceEmpty(name string) string { return "Time to start your task: " + name }

func suggestionsPrompt(profession string) string {
	return fmt.Sprintf("As an AI time-management assistant, suggest %d common tasks for a %s "+
		"that typically occur outside of working hours. Return only a JSON array of strings.",
		MaxSuggestions, profession)
}

func feedbackPrompt(score int, tasks []model.Task) string {
	var completed, missed []string
	for _, t := range tasks {
		switch {
		case model.IsSuccessful(t.Status):
			completed = append(completed, t.Name)
		case t.Status == model.StatusNotCompleted:
			missed = append(missed, t.Name)
		}
	}
	return fmt.Sprintf("Generate a short, supportive, non-judgmental feedback for a user who achieved "+
		"a time-management score of %d%%.\nCompleted tasks: %s.\nMissed tasks: %s.\n"+
		"Keep it brief (max 3 sentences) and focus on habit building.",
		score, joinOrNone(completed), joinOrNone(missed))
}

func voicePrompt(name string) string {
	return fmt.Sprintf("Write a short, friendly reminder for the task %q. "+
		"It should be concise for a text-to-speech engine.", name)
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
