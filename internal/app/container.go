// Package app wires configuration, storage and use cases into a Container
// shared by the HTTP server and the command-line client.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flowx/config"
	"flowx/internal/assistant"
	"flowx/internal/httpserver"
	"flowx/internal/profile"
	profileRepo "flowx/internal/profile/repository/kv"
	profileUC "flowx/internal/profile/usecase"
	"flowx/internal/reminder"
	"flowx/internal/scoring"
	"flowx/internal/task"
	taskRepository "flowx/internal/task/repository"
	taskRepo "flowx/internal/task/repository/kv"
	taskUC "flowx/internal/task/usecase"
	"flowx/pkg/gcalendar"
	"flowx/pkg/kvstore"
	"flowx/pkg/llmprovider"
	"flowx/pkg/log"
	"flowx/pkg/telegram"
)

// Container holds all application dependencies.
type Container struct {
	Config   *config.Config
	Logger   log.Logger
	Location *time.Location

	Store kvstore.Store

	ProfileUseCase profile.UseCase
	TaskUseCase    task.UseCase

	// Dispatcher is nil when reminders are disabled.
	Dispatcher *reminder.Dispatcher
}

// NewContainer opens storage, restores the persisted session and builds the
// use cases. Optional collaborators that fail to start are logged and left
// out.
func NewContainer(ctx context.Context, cfg *config.Config, l log.Logger) (*Container, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	store, err := kvstore.Open(ctx, kvstore.Options{
		Driver:     cfg.Storage.Driver,
		Dir:        cfg.Storage.Dir,
		SQLitePath: cfg.Storage.SQLitePath,
		Redis: kvstore.RedisConfig{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
			Prefix:   cfg.Storage.Redis.Prefix,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	c := &Container{
		Config:   cfg,
		Logger:   l,
		Location: loc,
		Store:    store,
	}

	// Profile domain
	pUC := profileUC.New(profileRepo.New(store, l, cfg.Storage.Keys.User), l)
	if p, ok, err := pUC.Restore(ctx); err != nil {
		l.Warnf(ctx, "app.NewContainer: restore session: %v", err)
	} else if ok {
		l.Infof(ctx, "Resumed session for %s", p.Username)
	}
	c.ProfileUseCase = pUC

	// Task domain
	tRepo := taskRepo.New(store, l, taskRepository.Keys{
		Tasks:       cfg.Storage.Keys.Tasks,
		Performance: cfg.Storage.Keys.Performance,
	})
	if err := tRepo.Load(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	weights := scoring.Weights{
		Low:        cfg.Scoring.Low,
		Medium:     cfg.Scoring.Medium,
		High:       cfg.Scoring.High,
		LateFactor: cfg.Scoring.LateFactor,
	}
	if err := weights.Validate(); err != nil {
		l.Warnf(ctx, "app.NewContainer: %v, using default weights", err)
	}
	engine := scoring.New(weights)

	c.TaskUseCase = taskUC.New(
		l,
		tRepo,
		pUC,
		engine,
		newAssistant(ctx, cfg, l),
		newCalendar(ctx, cfg, l),
		taskUC.Options{
			Location:      loc,
			CountdownTick: cfg.Countdown.Tick,
		},
	)

	if cfg.Reminder.Enabled {
		c.Dispatcher = reminder.NewDispatcher(l, c.TaskUseCase, newNotifiers(ctx, cfg, l), reminder.Options{
			Location:     loc,
			ScanInterval: cfg.Reminder.ScanInterval,
			LeadTime:     cfg.Reminder.LeadTime,
		})
	}

	return c, nil
}

// Ready reports whether the store answers reads.
func (c *Container) Ready(ctx context.Context) error {
	key := c.Config.Storage.Keys.User
	if key == "" {
		key = profileRepo.DefaultKey
	}
	if _, err := c.Store.Get(ctx, key); err != nil && !errors.Is(err, kvstore.ErrNotFound) {
		return err
	}
	return nil
}

// NewHTTPServer builds the HTTP server on top of the container's use cases.
func (c *Container) NewHTTPServer() (*httpserver.HTTPServer, error) {
	return httpserver.New(c.Logger, httpserver.Config{
		Logger:          c.Logger,
		Port:            c.Config.HTTPServer.Port,
		Mode:            c.Config.HTTPServer.Mode,
		Environment:     c.Config.Environment.Name,
		ShutdownTimeout: c.Config.HTTPServer.ShutdownTimeout,
		ProfileUseCase:  c.ProfileUseCase,
		TaskUseCase:     c.TaskUseCase,
		Ready:           c.Ready,
	})
}

// Serve starts the reminder dispatcher, if any, and blocks in the HTTP
// server until ctx is cancelled.
func (c *Container) Serve(ctx context.Context) error {
	srv, err := c.NewHTTPServer()
	if err != nil {
		return err
	}

	if c.Dispatcher != nil {
		if err := c.Dispatcher.Start(); err != nil {
			return fmt.Errorf("start reminders: %w", err)
		}
		defer c.Dispatcher.Stop()
	}

	return srv.Run(ctx)
}

// Close releases the store.
func (c *Container) Close() error {
	return c.Store.Close()
}

func newAssistant(ctx context.Context, cfg *config.Config, l log.Logger) assistant.Assistant {
	opt := assistant.Options{
		CallTimeout: cfg.Assistant.CallTimeout,
		CacheSize:   cfg.Assistant.CacheSize,
		CacheTTL:    cfg.Assistant.CacheTTL,
	}

	providers, err := llmprovider.InitializeProviders(&cfg.LLM, l)
	if err != nil {
		l.Warnf(ctx, "Assistant running on fallbacks only: %v", err)
		return assistant.New(l, nil, opt)
	}
	manager := llmprovider.NewManagerFromConfig(&cfg.LLM, providers, l)
	l.Infof(ctx, "Assistant providers: %v", manager.Providers())
	return assistant.New(l, manager, opt)
}

// newCalendar returns nil unless the calendar mirror is enabled and its
// credentials load.
func newCalendar(ctx context.Context, cfg *config.Config, l log.Logger) gcalendar.ICalendar {
	if !cfg.GoogleCalendar.Enabled {
		return nil
	}
	cal, err := gcalendar.New(ctx, gcalendar.Config{
		CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
		TokenPath:       cfg.GoogleCalendar.TokenPath,
		CalendarID:      cfg.GoogleCalendar.CalendarID,
	})
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available: %v", err)
		return nil
	}
	l.Infof(ctx, "Google Calendar mirroring to %s", cal.CalendarID())
	return cal
}

func newNotifiers(ctx context.Context, cfg *config.Config, l log.Logger) []reminder.Notifier {
	notifiers := []reminder.Notifier{reminder.NewLogNotifier(l)}
	if cfg.Telegram.BotToken == "" || cfg.Telegram.ChatID == 0 {
		return notifiers
	}

	bot, err := telegram.New(telegram.Config{Token: cfg.Telegram.BotToken})
	if err != nil {
		l.Warnf(ctx, "Telegram reminders disabled: %v", err)
		return notifiers
	}
	l.Infof(ctx, "Telegram reminders via @%s", bot.Username())
	return append(notifiers, reminder.NewTelegramNotifier(bot, cfg.Telegram.ChatID))
}
