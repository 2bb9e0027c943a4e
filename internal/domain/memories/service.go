package memories

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
	Title        string
	Text         string
	ImageURL     string
	VoiceNoteURL string
	IsAIResponse bool
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Memory, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Memory{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" {
		return Memory{}, ErrInvalidInput
	}
	// Un recuerdo necesita al menos un contenido: texto, imagen o voz.
	if strings.TrimSpace(in.Text) == "" &&
		strings.TrimSpace(in.ImageURL) == "" &&
		strings.TrimSpace(in.VoiceNoteURL) == "" {
		return Memory{}, ErrInvalidInput
	}

	m := Memory{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        strings.TrimSpace(in.Title),
		Text:         strings.TrimSpace(in.Text),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		VoiceNoteURL: strings.TrimSpace(in.VoiceNoteURL),
		IsAIResponse: in.IsAIResponse,
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return Memory{}, err
	}
	return m, nil
}

func (s *Service) ListByOwner(ctx context.Context, userID string) ([]Memory, error) {
	return s.repo.ListByOwner(ctx, userID)
}

// Delete borra solo si callerID es la dueña; check pegado al read.
func (s *Service) Delete(ctx context.Context, memoryID, callerID string) error {
	memoryID = strings.TrimSpace(memoryID)
	callerID = strings.TrimSpace(callerID)
	if memoryID == "" || callerID == "" {
		return ErrInvalidInput
	}

	m, err := s.repo.GetByID(ctx, memoryID)
	if err != nil {
		return err
	}
	if m.UserID != callerID {
		return ErrForbidden
	}
	return s.repo.Delete(ctx, m.ID)
}
