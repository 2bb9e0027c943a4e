package postgres

import (
	"context"
	"database/sql"
	"strings"

	"mamas-embrace/internal/domain/memories"
)

type MemoriesRepo struct {
	db *sql.DB
}

func NewMemoriesRepo(db *sql.DB) *MemoriesRepo {
	return &MemoriesRepo{db: db}
}

func (r *MemoriesRepo) Create(ctx context.Context, m memories.Memory) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memories (
			id, user_id, title, text,
			image_url, voice_note_url, is_ai_response,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		m.ID,
		m.UserID,
		m.Title,
		m.Text,
		m.ImageURL,
		m.VoiceNoteURL,
		m.IsAIResponse,
		m.CreatedAt,
	)
	return err
}

func (r *MemoriesRepo) GetByID(ctx context.Context, id string) (memories.Memory, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return memories.Memory{}, memories.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, text, image_url, voice_note_url, is_ai_response, created_at
		FROM memories
		WHERE id = $1
	`, id)

	var m memories.Memory
	if err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.Title,
		&m.Text,
		&m.ImageURL,
		&m.VoiceNoteURL,
		&m.IsAIResponse,
		&m.CreatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return memories.Memory{}, memories.ErrNotFound
		}
		return memories.Memory{}, err
	}

	return m, nil
}

func (r *MemoriesRepo) ListByOwner(ctx context.Context, userID string) ([]memories.Memory, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, text, image_url, voice_note_url, is_ai_response, created_at
		FROM memories
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]memories.Memory, 0)
	for rows.Next() {
		var m memories.Memory
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Title,
			&m.Text,
			&m.ImageURL,
			&m.VoiceNoteURL,
			&m.IsAIResponse,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}

	return out, rows.Err()
}

func (r *MemoriesRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM memories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return memories.ErrNotFound
	}
	return nil
}
