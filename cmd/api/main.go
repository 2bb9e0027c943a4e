package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"mamas-embrace/internal/adapters/ai/gemini"
	authsb "mamas-embrace/internal/adapters/auth/supabase"
	blobsb "mamas-embrace/internal/adapters/blob/supabase"
	"mamas-embrace/internal/adapters/push/expo"
	"mamas-embrace/internal/adapters/storage/postgres"
	"mamas-embrace/internal/platform/config"
	"mamas-embrace/internal/platform/logger"
	"mamas-embrace/internal/router"
	"mamas-embrace/internal/ports/ai"
	"mamas-embrace/internal/ports/auth"
	"mamas-embrace/internal/ports/blob"
)

func main() {
	cfg := config.Load()
	lg := logger.NewFromEnv()

	// Identidad (Supabase GoTrue). Sin config => modo dev, sin verifier.
	var (
		verifier auth.AuthVerifier
		identity auth.IdentityProvider
	)
	if client := authsb.NewGoTrueClient(authsb.Config{
		ProjectRef: cfg.SupabaseProjectRef,
		AnonKey:    cfg.SupabaseAnonKey,
		GoTrueURL:  cfg.SupabaseGoTrueURL,
	}); client != nil {
		verifier = authsb.NewVerifier(client)
		identity = authsb.NewProvider(client)
	} else {
		lg.Warn("identity provider not configured, running in dev mode", nil)
	}

	// Storage de blobs (Supabase Storage).
	var uploader blob.Uploader
	if up := blobsb.NewUploader(blobsb.Config{
		BaseURL: cfg.SupabaseStorageURL,
		APIKey:  cfg.SupabaseAnonKey,
		Bucket:  cfg.StorageBucket,
	}); up.IsConfigured() {
		uploader = up
	} else {
		lg.Warn("blob storage not configured, uploads disabled", nil)
	}

	// Flujos de IA (Gemini).
	var flows ai.PromptFlows
	if cfg.GeminiAPIKey != "" {
		f, err := gemini.New(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			lg.Error("gemini client init failed", map[string]any{"error": err.Error()})
		} else {
			flows = f
			defer f.Close()
		}
	}

	// Postgres opcional.
	var db *sql.DB
	if cfg.DBDSN != "" {
		opened, err := postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		db = opened
		defer db.Close()
	}

	sender := expo.NewClient(expo.Config{
		PushURL:     cfg.ExpoPushURL,
		AccessToken: cfg.ExpoAccessToken,
		Timeout:     cfg.HTTPTimeout,
	})

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Identity:     identity,
		DB:           db,
		Uploader:     uploader,
		Flows:        flows,
		Sender:       sender,
		Log:          lg,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
