package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

// AuthFlow runs the offline consent flow for installed-app credentials and
// caches the token where NewFromCredentialsJSON looks for it.
type AuthFlow struct {
	config *oauth2.Config
}

func NewAuthFlow(credentialsJSON []byte) (*AuthFlow, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("credentials must be an OAuth desktop app file: %w", err)
	}
	return &AuthFlow{config: cfg}, nil
}

// URL is the consent page the user opens to obtain an authorization code.
func (f *AuthFlow) URL(state string) string {
	return f.config.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// Exchange trades code for a token and writes it to tokenPath with owner-only
// permissions.
func (f *AuthFlow) Exchange(ctx context.Context, code, tokenPath string) error {
	tok, err := f.config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	if dir := filepath.Dir(tokenPath); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create token dir: %w", err)
		}
	}
	file, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tokenPath, err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(tok); err != nil {
		return fmt.Errorf("failed to write %s: %w", tokenPath, err)
	}
	return nil
}
