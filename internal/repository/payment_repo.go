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

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *model.Payment) error {
	now := time.Now()
	p.ID = uuid.NewString()
	p.CreatedAt, p.UpdatedAt = now, now
	query := `INSERT INTO payments
		(id, number, customer_id, invoice_id, amount, method, date, notes, status, is_active, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := r.DB.Exec(ctx, query,
		p.ID, p.Number, p.CustomerID, p.InvoiceID, p.Amount, p.Method,
		p.Date, p.Notes, p.Status, p.IsActive, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*model.Payment, error) {
	var p model.Payment
	query := `SELECT id, number, customer_id, invoice_id, amount, method, date, notes, status, is_active, created_by, created_at, updated_at
		FROM payments WHERE id=$1 AND is_active=TRUE`
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Number, &p.CustomerID, &p.InvoiceID, &p.Amount, &p.Method,
		&p.Date, &p.Notes, &p.Status, &p.IsActive, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns a page of payments plus the total count. customerID and
// invoiceID are optional filters; search matches the payment number.
func (r *PaymentRepository) List(ctx context.Context, offset, limit int, customerID, invoiceID, search string) ([]model.Payment, int, error) {
	where := `WHERE is_active=TRUE
		AND ($1 = '' OR customer_id = $1)
		AND ($2 = '' OR invoice_id = $2)
		AND ($3 = '' OR number ILIKE '%'||$3||'%')`

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM payments `+where, customerID, invoiceID, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, number, customer_id, invoice_id, amount, method, date, notes, status, is_active, created_by, created_at, updated_at
		FROM payments ` + where + ` ORDER BY date DESC LIMIT $4 OFFSET $5`
	rows, err := r.DB.Query(ctx, query, customerID, invoiceID, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(
			&p.ID, &p.Number, &p.CustomerID, &p.InvoiceID, &p.Amount, &p.Method,
			&p.Date, &p.Notes, &p.Status, &p.IsActive, &p.CreatedBy, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *model.Payment) error {
	p.UpdatedAt = time.Now()
	query := `UPDATE payments SET
		amount=$1, method=$2, date=$3, notes=$4, status=$5, updated_at=$6
		WHERE id=$7 AND is_active=TRUE`
	tag, err := r.DB.Exec(ctx, query, p.Amount, p.Method, p.Date, p.Notes, p.Status, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE payments SET is_active=FALSE, updated_at=$1 WHERE id=$2 AND is_active=TRUE`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SumCompletedForInvoice totals the completed payments recorded against an
// invoice, used to decide when the invoice counts as paid.
func (r *PaymentRepository) SumCompletedForInvoice(ctx context.Context, invoiceID string) (float64, error) {
	var sum float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE invoice_id=$1 AND status=$2 AND is_active=TRUE`
	if err := r.DB.QueryRow(ctx, query, invoiceID, model.PaymentCompleted).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}
