package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"mamas-embrace/internal/domain/children"
)

type ChildrenRepo struct {
	db *sql.DB
}

func NewChildrenRepo(db *sql.DB) *ChildrenRepo {
	return &ChildrenRepo{db: db}
}

func (r *ChildrenRepo) Create(ctx context.Context, c children.Child) error {
	height, err := json.Marshal(c.Height)
	if err != nil {
		return err
	}
	weight, err := json.Marshal(c.Weight)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO child_profiles (
			id, parent_id, name, birthday, gender,
			height, weight, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		c.ID,
		c.ParentID,
		c.Name,
		c.Birthday,
		string(c.Gender),
		height,
		weight,
		c.CreatedAt,
	)
	return err
}

func (r *ChildrenRepo) GetByID(ctx context.Context, id string) (children.Child, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return children.Child{}, children.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT id, parent_id, name, birthday, gender, height, weight, created_at
		FROM child_profiles
		WHERE id = $1
	`, id)

	c, err := scanChild(row)
	if err == sql.ErrNoRows {
		return children.Child{}, children.ErrNotFound
	}
	return c, err
}

func (r *ChildrenRepo) ListByParent(ctx context.Context, parentID string) ([]children.Child, error) {
	parentID = strings.TrimSpace(parentID)
	if parentID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, parent_id, name, birthday, gender, height, weight, created_at
		FROM child_profiles
		WHERE parent_id = $1
		ORDER BY created_at ASC
	`, parentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]children.Child, 0)
	for rows.Next() {
		c, err := scanChild(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	return out, rows.Err()
}

// Update reescribe el documento completo (incluidos los historiales):
// last-write-wins, sin token de concurrencia.
func (r *ChildrenRepo) Update(ctx context.Context, c children.Child) error {
	height, err := json.Marshal(c.Height)
	if err != nil {
		return err
	}
	weight, err := json.Marshal(c.Weight)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE child_profiles
		SET name = $2, birthday = $3, gender = $4, height = $5, weight = $6
		WHERE id = $1
	`,
		c.ID,
		c.Name,
		c.Birthday,
		string(c.Gender),
		height,
		weight,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return children.ErrNotFound
	}
	return nil
}

func scanChild(row rowScanner) (children.Child, error) {
	var c children.Child
	var gender string
	var height, weight []byte
	if err := row.Scan(
		&c.ID,
		&c.ParentID,
		&c.Name,
		&c.Birthday,
		&gender,
		&height,
		&weight,
		&c.CreatedAt,
	); err != nil {
		return children.Child{}, err
	}

	c.Gender = children.Gender(gender)
	if len(height) > 0 {
		if err := json.Unmarshal(height, &c.Height); err != nil {
			return children.Child{}, err
		}
	}
	if len(weight) > 0 {
		if err := json.Unmarshal(weight, &c.Weight); err != nil {
			return children.Child{}, err
		}
	}
	return c, nil
}
