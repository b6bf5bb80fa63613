package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"flowx/internal/model"
	"flowx/internal/task/repository"
	"flowx/pkg/kvstore"
	"flowx/pkg/log"

	"github.com/google/uuid"
)

type implRepository struct {
	l     log.Logger
	store kvstore.Store
	keys  repository.Keys
	newID func() string

	// mu serializes every operation so each mutation and its persistence
	// complete before the next one starts. Each operation re-reads its
	// collection first so writes from another process sharing the store
	// are kept.
	mu     sync.Mutex
	tasks  []model.Task
	ledger []model.PerformanceRecord
}

// New creates a task store backed by a key-value store. Call Load before use.
func New(store kvstore.Store, l log.Logger, keys repository.Keys) repository.Repository {
	if store == nil {
		panic("task/repository/kv: store is required")
	}
	if keys.Tasks == "" || keys.Performance == "" {
		keys = repository.DefaultKeys()
	}
	return &implRepository{
		l:     l,
		store: store,
		keys:  keys,
		newID: uuid.NewString,
	}
}

func (r *implRepository) scope(method string) string {
	return fmt.Sprintf("task/repository/kv.%s", method)
}

func (r *implRepository) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.reloadTasks(ctx); err != nil {
		return err
	}
	return r.reloadLedger(ctx)
}

func (r *implRepository) reloadTasks(ctx context.Context) error {
	tasks, err := readCollection[model.Task](ctx, r, r.keys.Tasks)
	if err != nil {
		return err
	}
	r.tasks = tasks
	return nil
}

func (r *implRepository) reloadLedger(ctx context.Context) error {
	ledger, err := readCollection[model.PerformanceRecord](ctx, r, r.keys.Performance)
	if err != nil {
		return err
	}
	sortLedger(ledger)
	r.ledger = ledger
	return nil
}

// readCollection decodes a JSON array stored under key. A missing key or
// malformed JSON yields an empty slice; only backend failures are returned.
func readCollection[T any](ctx context.Context, r *implRepository, key string) ([]T, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, kvstore.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s store.Get %s: %v", r.scope("Load"), key, err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToLoad, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		r.l.Warnf(ctx, "%s malformed data under %s, starting empty: %v", r.scope("Load"), key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *implRepository) writeCollection(ctx context.Context, key string, items any) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToPersist, err)
	}
	if err := r.store.Set(ctx, key, raw); err != nil {
		r.l.Errorf(ctx, "%s store.Set %s: %v", r.scope("persist"), key, err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToPersist, err)
	}
	return nil
}
