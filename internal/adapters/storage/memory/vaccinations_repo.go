package memory

import (
	"context"
	"sync"

	"mamas-embrace/internal/domain/vaccinations"
)

type vaccinationsRepo struct {
	mu       sync.RWMutex
	byUserID map[string][]vaccinations.Record
}

func NewVaccinationsRepo() vaccinations.Repository {
	return &vaccinationsRepo{
		byUserID: make(map[string][]vaccinations.Record),
	}
}

func (r *vaccinationsRepo) GetSchedule(ctx context.Context, userID string) ([]vaccinations.Record, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	schedule, ok := r.byUserID[userID]
	if !ok {
		return nil, false, nil
	}

	// Copia defensiva: el service muta el slice.
	out := make([]vaccinations.Record, len(schedule))
	copy(out, schedule)
	return out, true, nil
}

func (r *vaccinationsRepo) SaveSchedule(ctx context.Context, userID string, schedule []vaccinations.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]vaccinations.Record, len(schedule))
	copy(stored, schedule)
	r.byUserID[userID] = stored
	return nil
}
