package auth

import (
	"context"
	"errors"
)

// ErrUnknownVerifyType: vtype fuera de signup | recovery | invite.
// Lo devuelven los adapters para que el handler mapee a 400 y no a 401.
var ErrUnknownVerifyType = errors.New("unknown verification type")

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// IdentityProvider agrupa el ciclo de vida de cuentas contra el
// proveedor externo (registro, login, logout, verificación de email).
// Los handlers de accounts dependen de esta interfaz, nunca del SDK.
type IdentityProvider interface {
	Register(ctx context.Context, in RegisterInput) (Account, error)
	Login(ctx context.Context, email, password string) (Session, error)
	Logout(ctx context.Context, token string) error
	VerifyEmail(ctx context.Context, in VerifyEmailInput) error
}
