package journal

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
	Content      string
	ImageURL     string
	VoiceNoteURL string
	Tags         []string
}

func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (Entry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Entry{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Title) == "" {
		return Entry{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Content) == "" {
		return Entry{}, ErrInvalidInput
	}

	e := Entry{
		ID:           uuid.NewString(),
		UserID:       userID,
		Title:        strings.TrimSpace(in.Title),
		Content:      strings.TrimSpace(in.Content),
		ImageURL:     strings.TrimSpace(in.ImageURL),
		VoiceNoteURL: strings.TrimSpace(in.VoiceNoteURL),
		Tags:         normalizeTags(in.Tags),
		CreatedAt:    s.now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) ListByOwner(ctx context.Context, userID string) ([]Entry, error) {
	return s.repo.ListByOwner(ctx, userID)
}

type UpdateInput struct {
	// Punteros para PATCH real: nil = no tocar.
	Title   *string
	Content *string
	Tags    *[]string
}

// Update aplica el cambio solo si callerID es la dueña de la entrada.
// El check va pegado al read: no existe camino de escritura sin chequear.
func (s *Service) Update(ctx context.Context, entryID, callerID string, in UpdateInput) (Entry, error) {
	e, err := s.ownedEntry(ctx, entryID, callerID)
	if err != nil {
		return Entry{}, err
	}

	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return Entry{}, ErrInvalidInput
		}
		e.Title = t
	}
	if in.Content != nil {
		c := strings.TrimSpace(*in.Content)
		if c == "" {
			return Entry{}, ErrInvalidInput
		}
		e.Content = c
	}
	if in.Tags != nil {
		e.Tags = normalizeTags(*in.Tags)
	}

	if err := s.repo.Update(ctx, e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

func (s *Service) Delete(ctx context.Context, entryID, callerID string) error {
	e, err := s.ownedEntry(ctx, entryID, callerID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, e.ID)
}

func (s *Service) ownedEntry(ctx context.Context, entryID, callerID string) (Entry, error) {
	entryID = strings.TrimSpace(entryID)
	callerID = strings.TrimSpace(callerID)
	if entryID == "" || callerID == "" {
		return Entry{}, ErrInvalidInput
	}

	e, err := s.repo.GetByID(ctx, entryID)
	if err != nil {
		return Entry{}, err
	}
	if e.UserID != callerID {
		return Entry{}, ErrForbidden
	}
	return e, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := map[string]struct{}{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
