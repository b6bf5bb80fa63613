package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"flowx/internal/model"
	"flowx/internal/profile/repository"
	"flowx/pkg/kvstore"
	"flowx/pkg/log"
)

// DefaultKey matches the storage layout of earlier releases.
const DefaultKey = "flow-x_user"

// sessionSuffix names the session record stored next to the profile.
const sessionSuffix = "_session"

type implRepository struct {
	l          log.Logger
	store      kvstore.Store
	key        string
	sessionKey string
}

type sessionRecord struct {
	Username string `json:"username"`
}

// New creates a profile repository storing one JSON object under key.
func New(store kvstore.Store, l log.Logger, key string) repository.Repository {
	if store == nil {
		panic("profile/repository/kv: store is required")
	}
	if key == "" {
		key = DefaultKey
	}
	return &implRepository{l: l, store: store, key: key, sessionKey: key + sessionSuffix}
}

func (r *implRepository) GetProfile(ctx context.Context) (model.UserProfile, error) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return model.UserProfile{}, repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "profile/repository/kv.GetProfile store.Get: %v", err)
		return model.UserProfile{}, fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}

	var p model.UserProfile
	if err := json.Unmarshal(raw, &p); err != nil || p.Username == "" {
		r.l.Warnf(ctx, "profile/repository/kv.GetProfile ignoring malformed profile: %v", err)
		return model.UserProfile{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *implRepository) SaveProfile(ctx context.Context, p model.UserProfile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		r.l.Errorf(ctx, "profile/repository/kv.SaveProfile store.Set: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	return nil
}

func (r *implRepository) GetSession(ctx context.Context) (string, error) {
	raw, err := r.store.Get(ctx, r.sessionKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "profile/repository/kv.GetSession store.Get: %v", err)
		return "", fmt.Errorf("%w: %v", repository.ErrFailedToGet, err)
	}
	var rec sessionRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		r.l.Warnf(ctx, "profile/repository/kv.GetSession ignoring malformed session: %v", err)
		return "", repository.ErrNotFound
	}
	return rec.Username, nil
}

func (r *implRepository) SaveSession(ctx context.Context, username string) error {
	raw, err := json.Marshal(sessionRecord{Username: username})
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	if err := r.store.Set(ctx, r.sessionKey, raw); err != nil {
		r.l.Errorf(ctx, "profile/repository/kv.SaveSession store.Set: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	return nil
}
