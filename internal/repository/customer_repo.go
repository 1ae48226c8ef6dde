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

type CustomerRepository struct {
	DB *pgxpool.Pool
}

func NewCustomerRepository(db *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	now := time.Now()
	c.ID = uuid.NewString()
	c.CreatedAt, c.UpdatedAt = now, now
	query := `INSERT INTO customers
		(id, display_name, contact_name, email, phone, website, address, city, state, country, zip_code, status, is_active, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`
	_, err := r.DB.Exec(ctx, query,
		c.ID, c.DisplayName, c.ContactName, c.Email, c.Phone, c.Website,
		c.Address, c.City, c.State, c.Country, c.ZipCode, c.Status,
		c.IsActive, c.CreatedBy, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	var c model.Customer
	query := `SELECT id, display_name, contact_name, email, phone, website, address, city, state, country, zip_code, status, is_active, created_by, created_at, updated_at
		FROM customers WHERE id=$1 AND is_active=TRUE`
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.DisplayName, &c.ContactName, &c.Email, &c.Phone, &c.Website,
		&c.Address, &c.City, &c.State, &c.Country, &c.ZipCode, &c.Status,
		&c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// List returns a page of active customers plus the total match count.
// search filters on display name, contact name and email.
func (r *CustomerRepository) List(ctx context.Context, offset, limit int, search string) ([]model.Customer, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM customers
		WHERE is_active=TRUE
		AND ($1 = '' OR display_name ILIKE '%'||$1||'%' OR contact_name ILIKE '%'||$1||'%' OR email ILIKE '%'||$1||'%')`
	if err := r.DB.QueryRow(ctx, countQuery, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, display_name, contact_name, email, phone, website, address, city, state, country, zip_code, status, is_active, created_by, created_at, updated_at
		FROM customers
		WHERE is_active=TRUE
		AND ($1 = '' OR display_name ILIKE '%'||$1||'%' OR contact_name ILIKE '%'||$1||'%' OR email ILIKE '%'||$1||'%')
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.DB.Query(ctx, query, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.Customer{}
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(
			&c.ID, &c.DisplayName, &c.ContactName, &c.Email, &c.Phone, &c.Website,
			&c.Address, &c.City, &c.State, &c.Country, &c.ZipCode, &c.Status,
			&c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	c.UpdatedAt = time.Now()
	query := `UPDATE customers SET
		display_name=$1, contact_name=$2, email=$3, phone=$4, website=$5,
		address=$6, city=$7, state=$8, country=$9, zip_code=$10, status=$11, updated_at=$12
		WHERE id=$13 AND is_active=TRUE`
	tag, err := r.DB.Exec(ctx, query,
		c.DisplayName, c.ContactName, c.Email, c.Phone, c.Website,
		c.Address, c.City, c.State, c.Country, c.ZipCode, c.Status,
		c.UpdatedAt, c.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE customers SET is_active=FALSE, updated_at=$1 WHERE id=$2 AND is_active=TRUE`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
