package kv

import (
	"context"
	"sort"

	"flowx/internal/model"
)

func (r *implRepository) UpsertPerformanceRecord(ctx context.Context, rec model.PerformanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reloadLedger(ctx); err != nil {
		return err
	}

	next := make([]model.PerformanceRecord, 0, len(r.ledger)+1)
	replaced := false
	for _, existing := range r.ledger {
		if existing.Date == rec.Date {
			next = append(next, rec)
			replaced = true
			continue
		}
		next = append(next, existing)
	}
	if !replaced {
		next = append(next, rec)
	}
	sortLedger(next)

	if err := r.writeCollection(ctx, r.keys.Performance, next); err != nil {
		return err
	}
	r.ledger = next
	return nil
}

func (r *implRepository) ListPerformanceRecords(ctx context.Context) ([]model.PerformanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.reloadLedger(ctx); err != nil {
		return nil, err
	}

	out := make([]model.PerformanceRecord, len(r.ledger))
	copy(out, r.ledger)
	return out, nil
}

func sortLedger(records []model.PerformanceRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date < records[j].Date
	})
}
