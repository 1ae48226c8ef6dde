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

type SettingRepository struct {
	DB *pgxpool.Pool
}

func NewSettingRepository(db *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{DB: db}
}

func (r *SettingRepository) GetByKey(ctx context.Context, key string) (*model.Setting, error) {
	var s model.Setting
	query := `SELECT id, key, value, type, description, created_by, created_at, updated_at
		FROM settings WHERE key=$1`
	err := r.DB.QueryRow(ctx, query, key).
		Scan(&s.ID, &s.Key, &s.Value, &s.Type, &s.Description, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) List(ctx context.Context) ([]model.Setting, error) {
	query := `SELECT id, key, value, type, description, created_by, created_at, updated_at
		FROM settings ORDER BY key`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Setting{}
	for rows.Next() {
		var s model.Setting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.Type, &s.Description, &s.CreatedBy, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Upsert inserts the setting or, when the key exists, overwrites its value.
func (r *SettingRepository) Upsert(ctx context.Context, s *model.Setting) error {
	now := time.Now()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.UpdatedAt = now
	query := `INSERT INTO settings (id, key, value, type, description, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$7)
		ON CONFLICT (key) DO UPDATE SET
			value=EXCLUDED.value, type=EXCLUDED.type, description=EXCLUDED.description, updated_at=EXCLUDED.updated_at`
	_, err := r.DB.Exec(ctx, query, s.ID, s.Key, s.Value, s.Type, s.Description, s.CreatedBy, now)
	return err
}

// EnsureKey inserts the setting when the key is absent and leaves an
// existing row untouched, so concurrent seeders cannot reset each other.
func (r *SettingRepository) EnsureKey(ctx context.Context, s *model.Setting) error {
	now := time.Now()
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `INSERT INTO settings (id, key, value, type, description, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$7)
		ON CONFLICT (key) DO NOTHING`
	_, err := r.DB.Exec(ctx, query, s.ID, s.Key, s.Value, s.Type, s.Description, s.CreatedBy, now)
	return err
}

func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM settings WHERE key=$1`, key)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// NextSequence increments a numeric sequence setting in a single statement
// and returns the value before the increment. ErrNotFound when the key does
// not exist yet.
func (r *SettingRepository) NextSequence(ctx context.Context, key string) (int64, error) {
	var n int64
	query := `UPDATE settings SET value = (value::bigint + 1)::text, updated_at = $2
		WHERE key = $1 RETURNING (value::bigint - 1)`
	if err := r.DB.QueryRow(ctx, query, key, time.Now()).Scan(&n); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return n, nil
}
