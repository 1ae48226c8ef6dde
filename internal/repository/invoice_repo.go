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

type InvoiceRepository struct {
	DB *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

// Create persists the invoice and its items in one transaction.
func (r *InvoiceRepository) Create(ctx context.Context, inv *model.Invoice) error {
	now := time.Now()
	inv.ID = uuid.NewString()
	inv.CreatedAt, inv.UpdatedAt = now, now

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `INSERT INTO invoices
		(id, number, customer_id, status, issue_date, due_date, subtotal, tax_amount, discount_amount, total, notes, is_active, created_by, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`
	if _, err := tx.Exec(ctx, query,
		inv.ID, inv.Number, inv.CustomerID, inv.Status, inv.IssueDate, inv.DueDate,
		inv.Subtotal, inv.TaxAmount, inv.DiscountAmount, inv.Total, inv.Notes,
		inv.IsActive, inv.CreatedBy, inv.CreatedAt, inv.UpdatedAt); err != nil {
		return err
	}

	if err := insertItems(ctx, tx, inv); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func insertItems(ctx context.Context, tx pgx.Tx, inv *model.Invoice) error {
	query := `INSERT INTO invoice_items
		(id, invoice_id, description, quantity, price, tax_rate, discount, total, sort_order)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	for i := range inv.Items {
		it := &inv.Items[i]
		it.ID = uuid.NewString()
		it.InvoiceID = inv.ID
		if _, err := tx.Exec(ctx, query,
			it.ID, it.InvoiceID, it.Description, it.Quantity, it.Price,
			it.TaxRate, it.Discount, it.Total, it.SortOrder); err != nil {
			return err
		}
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*model.Invoice, error) {
	var inv model.Invoice
	query := `SELECT id, number, customer_id, status, issue_date, due_date, subtotal, tax_amount, discount_amount, total, notes, is_active, created_by, created_at, updated_at
		FROM invoices WHERE id=$1 AND is_active=TRUE`
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.Number, &inv.CustomerID, &inv.Status, &inv.IssueDate, &inv.DueDate,
		&inv.Subtotal, &inv.TaxAmount, &inv.DiscountAmount, &inv.Total, &inv.Notes,
		&inv.IsActive, &inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	items, err := r.itemsFor(ctx, inv.ID)
	if err != nil {
		return nil, err
	}
	inv.Items = items
	return &inv, nil
}

func (r *InvoiceRepository) itemsFor(ctx context.Context, invoiceID string) ([]model.InvoiceItem, error) {
	query := `SELECT id, invoice_id, description, quantity, price, tax_rate, discount, total, sort_order
		FROM invoice_items WHERE invoice_id=$1 ORDER BY sort_order`
	rows, err := r.DB.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.InvoiceItem
	for rows.Next() {
		var it model.InvoiceItem
		if err := rows.Scan(&it.ID, &it.InvoiceID, &it.Description, &it.Quantity, &it.Price,
			&it.TaxRate, &it.Discount, &it.Total, &it.SortOrder); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, nil
}

// List returns a page of invoices without their items, plus the total count.
// customerID and status are optional filters; search matches the number.
func (r *InvoiceRepository) List(ctx context.Context, offset, limit int, customerID, status, search string) ([]model.Invoice, int, error) {
	where := `WHERE is_active=TRUE
		AND ($1 = '' OR customer_id = $1)
		AND ($2 = '' OR status = $2)
		AND ($3 = '' OR number ILIKE '%'||$3||'%')`

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM invoices `+where, customerID, status, search).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, number, customer_id, status, issue_date, due_date, subtotal, tax_amount, discount_amount, total, notes, is_active, created_by, created_at, updated_at
		FROM invoices ` + where + ` ORDER BY created_at DESC LIMIT $4 OFFSET $5`
	rows, err := r.DB.Query(ctx, query, customerID, status, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []model.Invoice{}
	for rows.Next() {
		var inv model.Invoice
		if err := rows.Scan(
			&inv.ID, &inv.Number, &inv.CustomerID, &inv.Status, &inv.IssueDate, &inv.DueDate,
			&inv.Subtotal, &inv.TaxAmount, &inv.DiscountAmount, &inv.Total, &inv.Notes,
			&inv.IsActive, &inv.CreatedBy, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, 0, err
		}
		out = append(out, inv)
	}
	return out, total, nil
}

// Update rewrites the invoice row and replaces its items in one transaction.
func (r *InvoiceRepository) Update(ctx context.Context, inv *model.Invoice) error {
	inv.UpdatedAt = time.Now()

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `UPDATE invoices SET
		customer_id=$1, status=$2, issue_date=$3, due_date=$4,
		subtotal=$5, tax_amount=$6, discount_amount=$7, total=$8, notes=$9, updated_at=$10
		WHERE id=$11 AND is_active=TRUE`
	tag, err := tx.Exec(ctx, query,
		inv.CustomerID, inv.Status, inv.IssueDate, inv.DueDate,
		inv.Subtotal, inv.TaxAmount, inv.DiscountAmount, inv.Total, inv.Notes,
		inv.UpdatedAt, inv.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM invoice_items WHERE invoice_id=$1`, inv.ID); err != nil {
		return err
	}
	if err := insertItems(ctx, tx, inv); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *InvoiceRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE invoices SET status=$1, updated_at=$2 WHERE id=$3 AND is_active=TRUE`
	tag, err := r.DB.Exec(ctx, query, status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	query := `UPDATE invoices SET is_active=FALSE, updated_at=$1 WHERE id=$2 AND is_active=TRUE`
	tag, err := r.DB.Exec(ctx, query, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
