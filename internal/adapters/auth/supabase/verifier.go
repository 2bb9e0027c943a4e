package supabase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mamas-embrace/internal/ports/auth"

	"github.com/supabase-community/gotrue-go"
)

var ErrTokenEmpty = errors.New("token is empty")

// Verifier implementa auth.AuthVerifier contra GoTrue:
// un token es válido si GetUser() con ese token devuelve un usuario.
type Verifier struct {
	client gotrue.Client
}

func NewVerifier(client gotrue.Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrTokenEmpty
	}

	// El SDK no recibe ctx acá; el context va implícito en el HTTP
	// interno del cliente.
	user, err := v.client.WithToken(token).GetUser()
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	uid := user.ID.String()
	if strings.TrimSpace(uid) == "" {
		return auth.Claims{}, errors.New("supabase claims missing user id")
	}

	return auth.Claims{
		UserID: uid,
		Email:  strings.TrimSpace(user.Email),
	}, nil
}
