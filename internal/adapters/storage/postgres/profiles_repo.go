package postgres

import (
	"context"
	"database/sql"
	"strings"

	"mamas-embrace/internal/domain/profiles"
)

type ProfilesRepo struct {
	db *sql.DB
}

func NewProfilesRepo(db *sql.DB) *ProfilesRepo {
	return &ProfilesRepo{db: db}
}

func (r *ProfilesRepo) Create(ctx context.Context, p profiles.Profile) error {
	// Upsert: el repo de vaccinations puede haber creado antes una fila
	// mínima para colgar el calendario.
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (
			id, name, email, phase,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, email = EXCLUDED.email,
		    phase = EXCLUDED.phase, updated_at = EXCLUDED.updated_at
	`,
		p.ID,
		p.Name,
		p.Email,
		string(p.Phase),
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *ProfilesRepo) GetByID(ctx context.Context, id string) (profiles.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return profiles.Profile{}, profiles.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, email, phase, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`, id)

	var p profiles.Profile
	var phase string
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &phase, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			return profiles.Profile{}, profiles.ErrNotFound
		}
		return profiles.Profile{}, err
	}
	p.Phase = profiles.Phase(phase)

	return p, nil
}

func (r *ProfilesRepo) Update(ctx context.Context, p profiles.Profile) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE profiles
		SET name = $2, email = $3, phase = $4, updated_at = $5
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Email,
		string(p.Phase),
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return profiles.ErrNotFound
	}
	return nil
}
