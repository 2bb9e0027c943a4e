package notifications

import "time"

// TokenRecord es un token de dispositivo registrado para push.
// Se upsertea keyed por userID + token sanitizado; nunca se lee de vuelta
// salvo para despachar.
type TokenRecord struct {
	UserID    string
	Token     string
	CreatedAt time.Time
}
