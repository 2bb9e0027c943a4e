package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"mamas-embrace/internal/domain/vaccinations"
)

// VaccinationsRepo persiste el calendario embebido en la fila del perfil
// (columna jsonb), igual que el documento original: un array por usuaria.
type VaccinationsRepo struct {
	db *sql.DB
}

func NewVaccinationsRepo(db *sql.DB) *VaccinationsRepo {
	return &VaccinationsRepo{db: db}
}

func (r *VaccinationsRepo) GetSchedule(ctx context.Context, userID string) ([]vaccinations.Record, bool, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, false, nil
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT vaccinations
		FROM profiles
		WHERE id = $1
	`, userID)

	var raw []byte
	if err := row.Scan(&raw); err != nil {
		if err == sql.ErrNoRows {
			// Sin fila de perfil todavía: el service siembra igual; el
			// save hace upsert del array.
			return nil, false, nil
		}
		return nil, false, err
	}

	if len(raw) == 0 {
		return nil, false, nil
	}

	var schedule []vaccinations.Record
	if err := json.Unmarshal(raw, &schedule); err != nil {
		return nil, false, err
	}
	if len(schedule) == 0 {
		return nil, false, nil
	}
	return schedule, true, nil
}

func (r *VaccinationsRepo) SaveSchedule(ctx context.Context, userID string, schedule []vaccinations.Record) error {
	raw, err := json.Marshal(schedule)
	if err != nil {
		return err
	}

	// Upsert: si la usuaria todavía no tiene fila de perfil (nunca hizo
	// un fetch de profile), se crea una mínima con el calendario.
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, name, email, phase, vaccinations, created_at, updated_at)
		VALUES ($1, '', '', '', $2, now(), now())
		ON CONFLICT (id) DO UPDATE SET vaccinations = EXCLUDED.vaccinations
	`, strings.TrimSpace(userID), raw)
	return err
}
