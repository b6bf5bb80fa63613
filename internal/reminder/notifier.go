package reminder

import (
	"context"
	"fmt"
	"html"
	"time"

	"flowx/internal/model"
	"flowx/pkg/log"
	"flowx/pkg/telegram"
)

// Reminder is one alert for one task.
type Reminder struct {
	Task model.Task
	Text string
	// At is the moment the alert was due.
	At time.Time
}

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(ctx context.Context, r Reminder) error
}

type logNotifier struct {
	l log.Logger
}

// NewLogNotifier writes reminders to the service log.
func NewLogNotifier(l log.Logger) Notifier {
	return logNotifier{l: l}
}

func (n logNotifier) Notify(ctx context.Context, r Reminder) error {
	n.l.Infof(ctx, "reminder: task=%s name=%q start=%s alert=%s text=%q",
		r.Task.ID, r.Task.Name, r.Task.StartTime, r.Task.AlertTime, r.Text)
	return nil
}

type telegramNotifier struct {
	bot    telegram.IBot
	chatID int64
}

// NewTelegramNotifier sends reminders to a single chat.
func NewTelegramNotifier(bot telegram.IBot, chatID int64) Notifier {
	return telegramNotifier{bot: bot, chatID: chatID}
}

func (n telegramNotifier) Notify(ctx context.Context, r Reminder) error {
	return n.bot.SendMessage(ctx, n.chatID, formatMessage(r))
}

func formatMessage(r Reminder) string {
	when := "starts"
	if r.Task.AlertTime == model.AlertBeforeCompletion {
		when = "ends soon, started"
	}
	return fmt.Sprintf("⏰ <b>%s</b> %s at %s (%s priority)\n%s",
		html.EscapeString(r.Task.Name), when, r.Task.StartTime, r.Task.Priority, html.EscapeString(r.Text))
}
