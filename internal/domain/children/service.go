package children

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
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

type CreateInput struct {
	Name        string
	Birthday    time.Time
	Gender      Gender
	BirthHeight float64 // cm
	BirthWeight float64 // kg
}

func (s *Service) Create(ctx context.Context, parentID string, in CreateInput) (Child, error) {
	parentID = strings.TrimSpace(parentID)
	if parentID == "" {
		return Child{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" || in.Birthday.IsZero() {
		return Child{}, ErrInvalidInput
	}
	if !IsValidGender(in.Gender) {
		return Child{}, ErrInvalidInput
	}
	if in.BirthHeight <= 0 || in.BirthWeight <= 0 {
		return Child{}, ErrInvalidInput
	}

	now := s.now()
	c := Child{
		ID:       uuid.NewString(),
		ParentID: parentID,
		Name:     strings.TrimSpace(in.Name),
		Birthday: in.Birthday,
		Gender:   in.Gender,
		// El alta siembra el historial con las medidas de nacimiento.
		Height:    []Measurement{{Value: in.BirthHeight, Date: in.Birthday}},
		Weight:    []Measurement{{Value: in.BirthWeight, Date: in.Birthday}},
		CreatedAt: now,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return Child{}, err
	}
	return c, nil
}

func (s *Service) ListByParent(ctx context.Context, parentID string) ([]Child, error) {
	return s.repo.ListByParent(ctx, parentID)
}

// GetOwned devuelve el perfil solo si callerID es el padre/madre.
func (s *Service) GetOwned(ctx context.Context, childID, callerID string) (Child, error) {
	childID = strings.TrimSpace(childID)
	callerID = strings.TrimSpace(callerID)
	if childID == "" || callerID == "" {
		return Child{}, ErrInvalidInput
	}

	c, err := s.repo.GetByID(ctx, childID)
	if err != nil {
		return Child{}, err
	}
	if c.ParentID != callerID {
		return Child{}, ErrForbidden
	}
	return c, nil
}

type MeasurementInput struct {
	Height *float64
	Weight *float64
	Date   *time.Time
}

// AddMeasurement agrega un punto a la historia de crecimiento.
// Read-modify-write sobre el documento completo: escritores concurrentes
// sobre el mismo registro compiten y gana el último (sin token de
// concurrencia optimista).
func (s *Service) AddMeasurement(ctx context.Context, childID, callerID string, in MeasurementInput) (Child, error) {
	c, err := s.GetOwned(ctx, childID, callerID)
	if err != nil {
		return Child{}, err
	}

	if in.Height == nil && in.Weight == nil {
		return Child{}, ErrInvalidInput
	}

	date := s.now()
	if in.Date != nil && !in.Date.IsZero() {
		date = *in.Date
	}

	if in.Height != nil {
		if *in.Height <= 0 {
			return Child{}, ErrInvalidInput
		}
		c.Height = append(c.Height, Measurement{Value: *in.Height, Date: date})
	}
	if in.Weight != nil {
		if *in.Weight <= 0 {
			return Child{}, ErrInvalidInput
		}
		c.Weight = append(c.Weight, Measurement{Value: *in.Weight, Date: date})
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return Child{}, err
	}
	return c, nil
}
