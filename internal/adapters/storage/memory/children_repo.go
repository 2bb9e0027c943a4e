package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"mamas-embrace/internal/domain/children"
)

type childrenRepo struct {
	mu   sync.RWMutex
	byID map[string]children.Child
}

func NewChildrenRepo() children.Repository {
	return &childrenRepo{
		byID: make(map[string]children.Child),
	}
}

func (r *childrenRepo) Create(ctx context.Context, c children.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(c.ID) == "" {
		return errors.New("child id required")
	}
	if _, exists := r.byID[c.ID]; exists {
		return errors.New("child already exists")
	}
	r.byID[c.ID] = c
	return nil
}

func (r *childrenRepo) GetByID(ctx context.Context, id string) (children.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return children.Child{}, children.ErrNotFound
	}
	return c, nil
}

func (r *childrenRepo) ListByParent(ctx context.Context, parentID string) ([]children.Child, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]children.Child, 0)
	for _, c := range r.byID {
		if c.ParentID == parentID {
			out = append(out, c)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})

	return out, nil
}

func (r *childrenRepo) Update(ctx context.Context, c children.Child) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[c.ID]; !exists {
		return children.ErrNotFound
	}
	r.byID[c.ID] = c
	return nil
}
