package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"mamas-embrace/internal/domain/memories"
)

type memoriesRepo struct {
	mu   sync.RWMutex
	byID map[string]memories.Memory
}

func NewMemoriesRepo() memories.Repository {
	return &memoriesRepo{
		byID: make(map[string]memories.Memory),
	}
}

func (r *memoriesRepo) Create(ctx context.Context, m memories.Memory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(m.ID) == "" {
		return errors.New("memory id required")
	}
	if _, exists := r.byID[m.ID]; exists {
		return errors.New("memory already exists")
	}
	r.byID[m.ID] = m
	return nil
}

func (r *memoriesRepo) GetByID(ctx context.Context, id string) (memories.Memory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	if !ok {
		return memories.Memory{}, memories.ErrNotFound
	}
	return m, nil
}

func (r *memoriesRepo) ListByOwner(ctx context.Context, userID string) ([]memories.Memory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]memories.Memory, 0)
	for _, m := range r.byID {
		if m.UserID == userID {
			out = append(out, m)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out, nil
}

func (r *memoriesRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return memories.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
