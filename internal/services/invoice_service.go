package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/repository"
)

const (
	invoicePrefixKey   = "invoice_prefix"
	invoiceSequenceKey = "invoice_sequence"
)

type InvoiceService struct {
	Repo      InvoiceStore
	Customers CustomerStore
	Settings  SettingStore
}

func NewInvoiceService(r InvoiceStore, cr CustomerStore, sr SettingStore) *InvoiceService {
	return &InvoiceService{Repo: r, Customers: cr, Settings: sr}
}

// InvoiceTotals is the reduction of line items to invoice-level amounts.
type InvoiceTotals struct {
	Subtotal       float64
	TaxAmount      float64
	DiscountAmount float64
	Total          float64
}

// CalculateTotals sums the items: subtotal is the discounted line amounts,
// tax applies per item to the discounted amount, total is subtotal plus tax.
// All four results are rounded to cents.
func CalculateTotals(items []model.InvoiceItem) InvoiceTotals {
	var t InvoiceTotals
	for _, it := range items {
		line := it.Quantity*it.Price - it.Discount
		t.Subtotal += line
		t.TaxAmount += line * it.TaxRate / 100
		t.DiscountAmount += it.Discount
	}
	t.Total = t.Subtotal + t.TaxAmount
	t.Subtotal = round2(t.Subtotal)
	t.TaxAmount = round2(t.TaxAmount)
	t.DiscountAmount = round2(t.DiscountAmount)
	t.Total = round2(t.Total)
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *InvoiceService) validateItems(items []model.InvoiceItem) error {
	if len(items) == 0 {
		return &auth.ValidationError{Field: "items", Message: "At least one line item is required"}
	}
	for i := range items {
		it := &items[i]
		if strings.TrimSpace(it.Description) == "" {
			return &auth.ValidationError{Field: "items", Message: "Item description is required"}
		}
		if it.Quantity <= 0 {
			return &auth.ValidationError{Field: "items", Message: "Item quantity must be positive"}
		}
		if it.Price < 0 {
			return &auth.ValidationError{Field: "items", Message: "Item price cannot be negative"}
		}
		if it.Discount < 0 {
			return &auth.ValidationError{Field: "items", Message: "Item discount cannot be negative"}
		}
		if it.TaxRate < 0 || it.TaxRate > 100 {
			return &auth.ValidationError{Field: "items", Message: "Item tax rate must be between 0 and 100"}
		}
		line := it.Quantity*it.Price - it.Discount
		it.Total = round2(line + line*it.TaxRate/100)
		it.SortOrder = i
	}
	return nil
}

func (s *InvoiceService) applyTotals(inv *model.Invoice) {
	t := CalculateTotals(inv.Items)
	inv.Subtotal = t.Subtotal
	inv.TaxAmount = t.TaxAmount
	inv.DiscountAmount = t.DiscountAmount
	inv.Total = t.Total
}

func (s *InvoiceService) checkCustomer(ctx context.Context, id string) error {
	if _, err := s.Customers.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &auth.ValidationError{Field: "customer_id", Message: "Customer not found"}
		}
		return storeErr("while checking the customer", err)
	}
	return nil
}

// Create validates, computes totals, assigns the next document number and
// persists the invoice with its items.
func (s *InvoiceService) Create(ctx context.Context, inv *model.Invoice) error {
	if inv.CustomerID == "" {
		return &auth.ValidationError{Field: "customer_id", Message: "Customer is required"}
	}
	if err := s.checkCustomer(ctx, inv.CustomerID); err != nil {
		return err
	}
	if err := s.validateItems(inv.Items); err != nil {
		return err
	}
	s.applyTotals(inv)

	number, err := nextDocumentNumber(ctx, s.Settings, invoicePrefixKey, invoiceSequenceKey, "INV")
	if err != nil {
		return err
	}
	inv.Number = number

	if inv.Status == "" {
		inv.Status = model.InvoiceDraft
	}
	if !model.ValidInvoiceStatus(inv.Status) {
		return &auth.ValidationError{Field: "status", Message: "Invalid invoice status"}
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = time.Now()
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = inv.IssueDate.AddDate(0, 0, 30)
	}
	inv.IsActive = true
	if err := s.Repo.Create(ctx, inv); err != nil {
		return storeErr("during invoice creation", err)
	}
	return nil
}

func (s *InvoiceService) Get(ctx context.Context, id string) (*model.Invoice, error) {
	inv, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("while fetching invoice", err)
	}
	return inv, nil
}

func (s *InvoiceService) List(ctx context.Context, p ListParams, customerID, status string) ([]model.Invoice, int, error) {
	p = p.Normalize()
	list, total, err := s.Repo.List(ctx, p.Offset(), p.Limit, customerID, status, p.Search)
	if err != nil {
		return nil, 0, storeErr("while listing invoices", err)
	}
	return list, total, nil
}

// Update replaces the invoice fields and items, recomputing totals. The
// number is never reassigned.
func (s *InvoiceService) Update(ctx context.Context, inv *model.Invoice) error {
	existing, err := s.Repo.GetByID(ctx, inv.ID)
	if err != nil {
		return storeErr("while fetching invoice", err)
	}
	if inv.CustomerID == "" {
		inv.CustomerID = existing.CustomerID
	} else if err := s.checkCustomer(ctx, inv.CustomerID); err != nil {
		return err
	}
	if err := s.validateItems(inv.Items); err != nil {
		return err
	}
	s.applyTotals(inv)

	if inv.Status == "" {
		inv.Status = existing.Status
	}
	if !model.ValidInvoiceStatus(inv.Status) {
		return &auth.ValidationError{Field: "status", Message: "Invalid invoice status"}
	}
	if inv.IssueDate.IsZero() {
		inv.IssueDate = existing.IssueDate
	}
	if inv.DueDate.IsZero() {
		inv.DueDate = existing.DueDate
	}
	inv.Number = existing.Number
	if err := s.Repo.Update(ctx, inv); err != nil {
		return storeErr("during invoice update", err)
	}
	return nil
}

func (s *InvoiceService) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidInvoiceStatus(status) {
		return &auth.ValidationError{Field: "status", Message: "Invalid invoice status"}
	}
	if err := s.Repo.UpdateStatus(ctx, id, status); err != nil {
		return storeErr("during invoice status update", err)
	}
	return nil
}

func (s *InvoiceService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr("during invoice deletion", err)
	}
	return nil
}
