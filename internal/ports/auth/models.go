package auth

import "time"

// Claims representa la información extraída de un token verificado.
type Claims struct {
	UserID string
	Email  string
}

// Account es la cuenta tal como la devuelve el proveedor de identidad.
// El perfil de la app (name, phase, etc.) vive en el módulo profiles;
// acá solo identidad y credenciales.
type Account struct {
	ID        string
	Email     string
	CreatedAt time.Time
}

// Session es el resultado de un login exitoso.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
	Account      Account
}

type RegisterInput struct {
	Email    string
	Password string
}

type VerifyEmailInput struct {
	Token string
	Type  string // signup | recovery | invite
}
