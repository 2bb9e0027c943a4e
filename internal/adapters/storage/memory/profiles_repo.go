package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"mamas-embrace/internal/domain/profiles"
)

type profilesRepo struct {
	mu   sync.RWMutex
	byID map[string]profiles.Profile
}

func NewProfilesRepo() profiles.Repository {
	return &profilesRepo{
		byID: make(map[string]profiles.Profile),
	}
}

func (r *profilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("profile id required")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *profilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return profiles.Profile{}, profiles.ErrNotFound
	}
	return p, nil
}

func (r *profilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return profiles.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}
