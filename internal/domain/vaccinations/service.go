package vaccinations

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Schedule devuelve el calendario de la usuaria, sembrándolo desde el
// default fijo en la primera lectura (init lazy).
func (s *Service) Schedule(ctx context.Context, userID string) ([]Record, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}

	schedule, found, err := s.repo.GetSchedule(ctx, userID)
	if err != nil {
		return nil, err
	}
	if found {
		return schedule, nil
	}

	schedule = DefaultSchedule()
	if err := s.repo.SaveSchedule(ctx, userID, schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SetStatus muta in-place el status de la vacuna indicada por id.
// Idempotente: aplicar dos veces el mismo status deja el registro igual
// que aplicarlo una vez.
func (s *Service) SetStatus(ctx context.Context, userID, vaccinationID string, status Status) (Record, error) {
	vaccinationID = strings.TrimSpace(vaccinationID)
	if vaccinationID == "" || !IsValidStatus(status) || status == "" {
		return Record{}, ErrInvalidInput
	}

	schedule, err := s.Schedule(ctx, userID)
	if err != nil {
		return Record{}, err
	}

	idx := -1
	for i, rec := range schedule {
		if rec.ID == vaccinationID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Record{}, ErrNotFound
	}

	if schedule[idx].Status == status {
		// Nada que escribir: mismo estado, mismo documento.
		return schedule[idx], nil
	}

	schedule[idx].Status = status
	if err := s.repo.SaveSchedule(ctx, userID, schedule); err != nil {
		return Record{}, err
	}
	return schedule[idx], nil
}
