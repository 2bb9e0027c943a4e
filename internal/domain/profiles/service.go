package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"mamas-embrace/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// GetOrCreate devuelve el perfil del usuario; si es el primer fetch,
// lo crea desde los claims del token (creación lazy).
func (s *Service) GetOrCreate(ctx context.Context, claims auth.Claims) (Profile, error) {
	userID := strings.TrimSpace(claims.UserID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	now := s.now()
	p = Profile{
		ID:        userID,
		Email:     strings.TrimSpace(claims.Email),
		Phase:     PhaseEmpty,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

// CreateForAccount crea el perfil al registrarse.
func (s *Service) CreateForAccount(ctx context.Context, account auth.Account, name string, phase Phase) (Profile, error) {
	if strings.TrimSpace(account.ID) == "" {
		return Profile{}, ErrInvalidInput
	}
	if !IsValidPhase(phase) {
		return Profile{}, ErrInvalidInput
	}

	now := s.now()
	p := Profile{
		ID:        strings.TrimSpace(account.ID),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(account.Email),
		Phase:     phase,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Name  *string
	Phase *string
}

func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Phase != nil {
		phase := Phase(strings.TrimSpace(*in.Phase))
		if !IsValidPhase(phase) {
			return Profile{}, ErrInvalidInput
		}
		p.Phase = phase
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
