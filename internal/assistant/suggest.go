package assistant

import (
	"context"
	"encoding/json"
	"strings"

	"flowx/internal/model"
)

func (a *implAssistant) SuggestTasks(ctx context.Context, p model.UserProfile) []string {
	profession := p.DisplayProfession()
	if cached, ok := a.suggestions.Get(profession); ok {
		return append([]string(nil), cached...)
	}

	text, err := a.generate(ctx, suggestionsPrompt(profession), true)
	if err != nil {
		a.l.Warnf(ctx, "assistant.SuggestTasks: %v", err)
		return []string{}
	}

	out, err := parseSuggestions(text)
	if err != nil {
		a.l.Warnf(ctx, "assistant.SuggestTasks: unparsable answer: %v", err)
		return []string{}
	}
	if len(out) > 0 {
		a.suggestions.Add(profession, out)
	}
	return append([]string(nil), out...)
}

// parseSuggestions decodes a JSON array of strings, tolerating a markdown
// code fence around it. Blank entries are dropped and the list is capped.
func parseSuggestions(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}, nil
	}

	var raw []string
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, err
	}

	out := make([]string, 0, MaxSuggestions)
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == MaxSuggestions {
			break
		}
	}
	return out, nil
}
