package notifications

import (
	"context"
	"errors"
	"strings"
	"time"

	"mamas-embrace/internal/adapters/push/expo"
	"mamas-embrace/internal/ports/push"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidToken = errors.New("token must have the form ExponentPushToken[...]")
	ErrNoTokens     = errors.New("no registered tokens")
)

type Service struct {
	repo   Repository
	sender push.Sender
	now    func() time.Time
}

func NewService(repo Repository, sender push.Sender) *Service {
	return &Service{
		repo:   repo,
		sender: sender,
		now:    time.Now,
	}
}

// RegisterToken valida el formato antes de guardar nada.
func (s *Service) RegisterToken(ctx context.Context, userID, token string) error {
	userID = strings.TrimSpace(userID)
	token = strings.TrimSpace(token)
	if userID == "" {
		return ErrInvalidInput
	}
	if !expo.IsValidToken(token) {
		return ErrInvalidToken
	}

	return s.repo.Upsert(ctx, TokenRecord{
		UserID:    userID,
		Token:     token,
		CreatedAt: s.now(),
	})
}

type DispatchInput struct {
	Title string
	Body  string
	Data  map[string]string
}

// Dispatch manda la notificación a todos los dispositivos registrados del
// usuario. Sin retry: el error del gateway sube tal cual.
func (s *Service) Dispatch(ctx context.Context, userID string, in DispatchInput) ([]push.Ticket, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" || strings.TrimSpace(in.Title) == "" {
		return nil, ErrInvalidInput
	}

	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, ErrNoTokens
	}

	tokens := make([]string, 0, len(recs))
	for _, rec := range recs {
		tokens = append(tokens, rec.Token)
	}

	return s.sender.Send(ctx, push.Message{
		To:    tokens,
		Title: strings.TrimSpace(in.Title),
		Body:  strings.TrimSpace(in.Body),
		Data:  in.Data,
	})
}

// SanitizeToken arma la parte del key de documento que viene del token
// (solo alfanuméricos, guiones y guiones bajos).
func SanitizeToken(token string) string {
	var b strings.Builder
	for _, r := range token {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}
