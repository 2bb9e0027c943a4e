package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mamas-embrace/internal/ports/auth"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// Provider implementa auth.IdentityProvider sobre GoTrue.
type Provider struct {
	client gotrue.Client
}

func NewProvider(client gotrue.Client) *Provider {
	return &Provider{client: client}
}

func (p *Provider) Register(ctx context.Context, in auth.RegisterInput) (auth.Account, error) {
	if p == nil || p.client == nil {
		return auth.Account{}, ErrNotConfigured
	}

	resp, err := p.client.Signup(types.SignupRequest{
		Email:    strings.TrimSpace(in.Email),
		Password: in.Password,
	})
	if err != nil {
		return auth.Account{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	id := resp.ID.String()
	if strings.TrimSpace(id) == "" {
		return auth.Account{}, errors.New("supabase signup response missing user id")
	}

	return auth.Account{
		ID:        id,
		Email:     strings.TrimSpace(resp.Email),
		CreatedAt: resp.CreatedAt,
	}, nil
}

func (p *Provider) Login(ctx context.Context, email, password string) (auth.Session, error) {
	if p == nil || p.client == nil {
		return auth.Session{}, ErrNotConfigured
	}

	resp, err := p.client.SignInWithEmailPassword(strings.TrimSpace(email), password)
	if err != nil {
		// GoTrue devuelve 400 para credenciales malas; lo tratamos como
		// unauthorized para que el handler mapee a 401.
		return auth.Session{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	return auth.Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
		Account: auth.Account{
			ID:        resp.User.ID.String(),
			Email:     strings.TrimSpace(resp.User.Email),
			CreatedAt: resp.User.CreatedAt,
		},
	}, nil
}

func (p *Provider) Logout(ctx context.Context, token string) error {
	if p == nil || p.client == nil {
		return ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrTokenEmpty
	}

	if err := p.client.WithToken(token).Logout(); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

func (p *Provider) VerifyEmail(ctx context.Context, in auth.VerifyEmailInput) error {
	if p == nil || p.client == nil {
		return ErrNotConfigured
	}

	vtype, err := parseVerificationType(in.Type)
	if err != nil {
		return err
	}

	token := strings.TrimSpace(in.Token)
	if token == "" {
		return ErrTokenEmpty
	}

	if _, err := p.client.Verify(types.VerifyRequest{
		Type:  vtype,
		Token: token,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return nil
}

func parseVerificationType(s string) (types.VerificationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "signup":
		return types.VerificationTypeSignup, nil
	case "recovery":
		return types.VerificationTypeRecovery, nil
	case "invite":
		return types.VerificationTypeInvite, nil
	default:
		return "", auth.ErrUnknownVerifyType
	}
}
