package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"mamas-embrace/internal/domain/journal"
)

type journalRepo struct {
	mu   sync.RWMutex
	byID map[string]journal.Entry
}

func NewJournalRepo() journal.Repository {
	return &journalRepo{
		byID: make(map[string]journal.Entry),
	}
}

func (r *journalRepo) Create(ctx context.Context, e journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(e.ID) == "" {
		return errors.New("entry id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("entry already exists")
	}
	r.byID[e.ID] = e
	return nil
}

func (r *journalRepo) GetByID(ctx context.Context, id string) (journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return journal.Entry{}, journal.ErrNotFound
	}
	return e, nil
}

func (r *journalRepo) ListByOwner(ctx context.Context, userID string) ([]journal.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]journal.Entry, 0)
	for _, e := range r.byID {
		if e.UserID == userID {
			out = append(out, e)
		}
	}

	// Más nuevas primero, igual que el repo de Postgres.
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *journalRepo) Update(ctx context.Context, e journal.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[e.ID]; !exists {
		return journal.ErrNotFound
	}
	r.byID[e.ID] = e
	return nil
}

func (r *journalRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return journal.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
