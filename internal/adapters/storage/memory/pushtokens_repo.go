package memory

import (
	"context"
	"sort"
	"sync"

	"mamas-embrace/internal/domain/notifications"
)

type pushTokensRepo struct {
	mu    sync.RWMutex
	byKey map[string]notifications.TokenRecord
}

func NewPushTokensRepo() notifications.Repository {
	return &pushTokensRepo{
		byKey: make(map[string]notifications.TokenRecord),
	}
}

func (r *pushTokensRepo) Upsert(ctx context.Context, rec notifications.TokenRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rec.UserID + "/" + notifications.SanitizeToken(rec.Token)
	if existing, ok := r.byKey[key]; ok {
		// Conservar created_at del alta original.
		rec.CreatedAt = existing.CreatedAt
	}
	r.byKey[key] = rec
	return nil
}

func (r *pushTokensRepo) ListByUser(ctx context.Context, userID string) ([]notifications.TokenRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notifications.TokenRecord, 0)
	for _, rec := range r.byKey {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}
