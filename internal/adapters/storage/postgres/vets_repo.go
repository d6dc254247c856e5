package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vet-form/internal/domain/vets"
)

const createVetsTable = `
	CREATE TABLE IF NOT EXISTS vets (
		id           TEXT PRIMARY KEY,
		visibility   TEXT NOT NULL,
		verification TEXT NOT NULL,
		data         JSONB NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		updated_at   TIMESTAMPTZ NOT NULL
	)
`

// Migrate crea las tablas si no existen.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, createVetsTable); err != nil {
		return fmt.Errorf("create vets table: %w", err)
	}
	return nil
}

// VetsRepo guarda el FormDataRequest como JSONB; el resto son columnas.
type VetsRepo struct {
	db *sql.DB
}

func NewVetsRepo(db *sql.DB) *VetsRepo {
	return &VetsRepo{db: db}
}

func (r *VetsRepo) Create(ctx context.Context, rec vets.Record) error {
	data, err := json.Marshal(rec.Vet)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO vets (
			id, visibility, verification, data,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6)
	`,
		rec.ID,
		rec.Visibility,
		string(rec.Verification),
		data,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	return err
}

func (r *VetsRepo) Update(ctx context.Context, rec vets.Record) error {
	data, err := json.Marshal(rec.Vet)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE vets
		SET
			visibility = $2,
			verification = $3,
			data = $4,
			updated_at = $5
		WHERE id = $1
	`,
		rec.ID,
		rec.Visibility,
		string(rec.Verification),
		data,
		rec.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("vet %s: %w", rec.ID, vets.ErrNotFound)
	}
	return nil
}

const selectVets = `
	SELECT
		id, visibility, verification, data,
		created_at, updated_at
	FROM vets
`

func (r *VetsRepo) GetByID(ctx context.Context, id string) (vets.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return vets.Record{}, vets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, selectVets+`WHERE id = $1`, id)
	rec, err := scanVet(row)
	if errors.Is(err, sql.ErrNoRows) {
		return vets.Record{}, fmt.Errorf("vet %s: %w", id, vets.ErrNotFound)
	}
	return rec, err
}

func (r *VetsRepo) List(ctx context.Context, f vets.ListFilter) ([]vets.Record, error) {
	rows, err := r.db.QueryContext(ctx, selectVets+`
		WHERE ($1 = '' OR visibility = $1)
		  AND ($2 = '' OR verification = $2)
		ORDER BY created_at, id
	`, f.Visibility, string(f.Verification))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]vets.Record, 0)
	for rows.Next() {
		rec, err := scanVet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *VetsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vets WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("vet %s: %w", id, vets.ErrNotFound)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanVet(s scanner) (vets.Record, error) {
	var rec vets.Record
	var verification string
	var data []byte
	if err := s.Scan(
		&rec.ID,
		&rec.Visibility,
		&verification,
		&data,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return vets.Record{}, err
	}
	rec.Verification = vets.Verification(verification)

	// filas viejas pueden traer el esquema anterior (postCode, días en inglés)
	v, _, err := vets.DecodeFormDataRequest(data)
	if err != nil {
		return vets.Record{}, fmt.Errorf("decode vet %s: %w", rec.ID, err)
	}
	rec.Vet = v
	return rec, nil
}
