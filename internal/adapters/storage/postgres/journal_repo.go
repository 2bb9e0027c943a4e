package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"mamas-embrace/internal/domain/journal"
)

type JournalRepo struct {
	db *sql.DB
}

func NewJournalRepo(db *sql.DB) *JournalRepo {
	return &JournalRepo{db: db}
}

func (r *JournalRepo) Create(ctx context.Context, e journal.Entry) error {
	tags, err := json.Marshal(e.Tags)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO journal_entries (
			id, user_id, title, content,
			image_url, voice_note_url, tags,
			created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		e.ID,
		e.UserID,
		e.Title,
		e.Content,
		e.ImageURL,
		e.VoiceNoteURL,
		tags,
		e.CreatedAt,
	)
	return err
}

func (r *JournalRepo) GetByID(ctx context.Context, id string) (journal.Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return journal.Entry{}, journal.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, title, content, image_url, voice_note_url, tags, created_at
		FROM journal_entries
		WHERE id = $1
	`, id)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return journal.Entry{}, journal.ErrNotFound
	}
	return e, err
}

func (r *JournalRepo) ListByOwner(ctx context.Context, userID string) ([]journal.Entry, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, content, image_url, voice_note_url, tags, created_at
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]journal.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

func (r *JournalRepo) Update(ctx context.Context, e journal.Entry) error {
	tags, err := json.Marshal(e.Tags)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE journal_entries
		SET title = $2, content = $3, image_url = $4, voice_note_url = $5, tags = $6
		WHERE id = $1
	`,
		e.ID,
		e.Title,
		e.Content,
		e.ImageURL,
		e.VoiceNoteURL,
		tags,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return journal.ErrNotFound
	}
	return nil
}

func (r *JournalRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM journal_entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return journal.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (journal.Entry, error) {
	var e journal.Entry
	var tags []byte
	if err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Title,
		&e.Content,
		&e.ImageURL,
		&e.VoiceNoteURL,
		&tags,
		&e.CreatedAt,
	); err != nil {
		return journal.Entry{}, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &e.Tags); err != nil {
			return journal.Entry{}, err
		}
	}
	return e, nil
}
