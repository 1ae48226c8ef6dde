package repository

import (
	"context"
	"errors"
	"time"

	"InvoiceNestAPI/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaxTypeRepository struct {
	DB *pgxpool.Pool
}

func NewTaxTypeRepository(db *pgxpool.Pool) *TaxTypeRepository {
	return &TaxTypeRepository{DB: db}
}

func (r *TaxTypeRepository) Create(ctx context.Context, t *model.TaxType) error {
	now := time.Now()
	t.ID = uuid.NewString()
	t.CreatedAt, t.UpdatedAt = now, now
	query := `INSERT INTO tax_types (id, name, rate, is_compound, is_active, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.DB.Exec(ctx, query, t.ID, t.Name, t.Rate, t.IsCompound, t.IsActive, t.CreatedBy, t.CreatedAt, t.UpdatedAt)
	return err
}

func (r *TaxTypeRepository) GetByID(ctx context.Context, id string) (*model.TaxType, error) {
	var t model.TaxType
	query := `SELECT id, name, rate, is_compound, is_active, created_by, created_at, updated_at
		FROM tax_types WHERE id=$1 AND is_active=TRUE`
	err := r.DB.QueryRow(ctx, query, id).
		Scan(&t.ID, &t.Name, &t.Rate, &t.IsCompound, &t.IsActive, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TaxTypeRepository) List(ctx context.Context) ([]model.TaxType, error) {
	query := `SELECT id, name, rate, is_compound, is_active, created_by, created_at, updated_at
		FROM tax_types WHERE is_active=TRUE ORDER BY name`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.TaxType{}
	for rows.Next() {
		var t model.TaxType
		if err := rows.Scan(&t.ID, &t.Name, &t.Rate, &t.IsCompound, &t.IsActive, &t.CreatedBy, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *TaxTypeRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM tax_types WHERE name=$1 AND is_active=TRUE)`
	if err := r.DB.QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TaxTypeRepository) Update(ctx context.Context, t *model.TaxType) error {
	t.UpdatedAt = time.Now()
	query := `UPDATE tax_types SET name=$1, rate=$2, is_compound=$3, updated_at=$4
		WHERE id=$5 AND is_active=TRUE`
	tag, err := r.DB.Exec(ctx, query, t.Name, t.Rate, t.IsCompound, t.UpdatedAt, t.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaxTypeRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE tax_types SET is_active=FALSE, updated_at=$1 WHERE id=$2 AND is_active=TRUE`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
