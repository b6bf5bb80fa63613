package telegram

import (
	"context"
	"fmt"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// IBot sends plain messages to a chat.
type IBot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	Username() string
}

// Config selects the bot. APIEndpoint and HTTPClient are for tests.
type Config struct {
	Token       string
	APIEndpoint string
	HTTPClient  *http.Client
}

type bot struct {
	api *tgbotapi.BotAPI
}

// New authorizes the bot with getMe and returns a client.
func New(cfg Config) (IBot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram: bot token is required")
	}
	endpoint := cfg.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	client := cfg.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.Token, endpoint, client)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	return &bot{api: api}, nil
}

func (b *bot) Username() string { return b.api.Self.UserName }

// SendMessage sends text as HTML. The Bot API call itself cannot be
// cancelled, so ctx is only checked before sending.
func (b *bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	if _, err := b.api.Send(msg); err != nil {
		return fmt.Errorf("telegram sendMessage: %w", err)
	}
	return nil
}
