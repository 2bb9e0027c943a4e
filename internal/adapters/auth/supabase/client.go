package supabase

import (
	"errors"
	"strings"

	"github.com/supabase-community/gotrue-go"
)

var (
	ErrNotConfigured = errors.New("supabase auth client not configured")
	ErrUnauthorized  = errors.New("supabase auth unauthorized")
	ErrUpstream      = errors.New("supabase auth upstream error")
)

// Config del cliente GoTrue.
// ProjectRef + AnonKey vienen de env; GoTrueURL solo para self-hosted.
type Config struct {
	ProjectRef string
	AnonKey    string
	GoTrueURL  string
}

// NewGoTrueClient arma el cliente del SDK. Devuelve nil si falta config;
// el wiring del router lo interpreta como "identidad deshabilitada" (dev).
func NewGoTrueClient(cfg Config) gotrue.Client {
	ref := strings.TrimSpace(cfg.ProjectRef)
	key := strings.TrimSpace(cfg.AnonKey)
	if ref == "" || key == "" {
		return nil
	}

	client := gotrue.New(ref, key)
	if u := strings.TrimSpace(cfg.GoTrueURL); u != "" {
		client = client.WithCustomGoTrueURL(u)
	}
	return client
}
