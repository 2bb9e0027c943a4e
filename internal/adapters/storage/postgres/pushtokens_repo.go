package postgres

import (
	"context"
	"database/sql"
	"strings"

	"mamas-embrace/internal/domain/notifications"
)

type PushTokensRepo struct {
	db *sql.DB
}

func NewPushTokensRepo(db *sql.DB) *PushTokensRepo {
	return &PushTokensRepo{db: db}
}

// Upsert keyed por (user_id, token_key): registrar el mismo dispositivo
// dos veces no duplica.
func (r *PushTokensRepo) Upsert(ctx context.Context, rec notifications.TokenRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO push_tokens (user_id, token_key, token, created_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (user_id, token_key) DO UPDATE SET token = EXCLUDED.token
	`,
		rec.UserID,
		notifications.SanitizeToken(rec.Token),
		rec.Token,
		rec.CreatedAt,
	)
	return err
}

func (r *PushTokensRepo) ListByUser(ctx context.Context, userID string) ([]notifications.TokenRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT user_id, token, created_at
		FROM push_tokens
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.TokenRecord, 0)
	for rows.Next() {
		var rec notifications.TokenRecord
		if err := rows.Scan(&rec.UserID, &rec.Token, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, rows.Err()
}
