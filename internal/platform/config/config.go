package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config concentra todo lo que viene de env.
// Se carga una vez en main; el resto del código recibe valores, no lee env.
type Config struct {
	Port string

	// Postgres. Vacío => repos in-memory (modo dev).
	DBDSN string

	// Supabase (identidad + storage)
	SupabaseProjectRef string
	SupabaseAnonKey    string
	SupabaseGoTrueURL  string // opcional, para self-hosted
	SupabaseStorageURL string
	StorageBucket      string

	// Gemini
	GeminiAPIKey string

	// Expo push gateway
	ExpoPushURL     string
	ExpoAccessToken string

	HTTPTimeout time.Duration
}

// Load lee .env si existe y arma la Config desde env vars.
// No valida presencia: cada adapter decide si está configurado o no
// (mismo criterio que IsConfigured en los clientes).
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:               getEnv("PORT", "8080"),
		DBDSN:              getEnv("DB_DSN", ""),
		SupabaseProjectRef: getEnv("SUPABASE_PROJECT_REF", ""),
		SupabaseAnonKey:    getEnv("SUPABASE_ANON_KEY", ""),
		SupabaseGoTrueURL:  getEnv("SUPABASE_GOTRUE_URL", ""),
		SupabaseStorageURL: getEnv("SUPABASE_STORAGE_URL", ""),
		StorageBucket:      getEnv("STORAGE_BUCKET", "media"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		ExpoPushURL:        getEnv("EXPO_PUSH_URL", "https://exp.host/--/api/v2/push/send"),
		ExpoAccessToken:    getEnv("EXPO_ACCESS_TOKEN", ""),
		HTTPTimeout:        getDuration("HTTP_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
