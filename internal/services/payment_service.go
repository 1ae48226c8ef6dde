package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/repository"
)

const (
	paymentPrefixKey   = "payment_prefix"
	paymentSequenceKey = "payment_sequence"
)

type PaymentService struct {
	Repo      PaymentStore
	Customers CustomerStore
	Invoices  InvoiceStore
	Settings  SettingStore
}

func NewPaymentService(r PaymentStore, cr CustomerStore, ir InvoiceStore, sr SettingStore) *PaymentService {
	return &PaymentService{Repo: r, Customers: cr, Invoices: ir, Settings: sr}
}

func validatePayment(p *model.Payment) error {
	if p.Amount <= 0 {
		return &auth.ValidationError{Field: "amount", Message: "Amount must be positive"}
	}
	if strings.TrimSpace(p.Method) == "" {
		return &auth.ValidationError{Field: "method", Message: "Payment method is required"}
	}
	return nil
}

// Create records a payment against a customer and, optionally, one of their
// invoices. A completed payment that covers the invoice total marks the
// invoice PAID.
func (s *PaymentService) Create(ctx context.Context, p *model.Payment) error {
	if p.CustomerID == "" {
		return &auth.ValidationError{Field: "customer_id", Message: "Customer is required"}
	}
	if _, err := s.Customers.GetByID(ctx, p.CustomerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &auth.ValidationError{Field: "customer_id", Message: "Customer not found"}
		}
		return storeErr("while checking the customer", err)
	}
	if err := validatePayment(p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = model.PaymentPending
	}
	if !model.ValidPaymentStatus(p.Status) {
		return &auth.ValidationError{Field: "status", Message: "Invalid payment status"}
	}

	var invoice *model.Invoice
	if p.InvoiceID != nil && *p.InvoiceID != "" {
		inv, err := s.Invoices.GetByID(ctx, *p.InvoiceID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return &auth.ValidationError{Field: "invoice_id", Message: "Invoice not found"}
			}
			return storeErr("while checking the invoice", err)
		}
		if inv.CustomerID != p.CustomerID {
			return &auth.ValidationError{Field: "invoice_id", Message: "Invoice does not belong to this customer"}
		}
		invoice = inv
	}

	number, err := nextDocumentNumber(ctx, s.Settings, paymentPrefixKey, paymentSequenceKey, "PAY")
	if err != nil {
		return err
	}
	p.Number = number

	if p.Date.IsZero() {
		p.Date = time.Now()
	}
	p.IsActive = true
	if err := s.Repo.Create(ctx, p); err != nil {
		return storeErr("during payment creation", err)
	}

	if invoice != nil && p.Status == model.PaymentCompleted {
		return s.settleInvoice(ctx, invoice)
	}
	return nil
}

// settleInvoice flips the invoice to PAID once completed payments cover its
// total.
func (s *PaymentService) settleInvoice(ctx context.Context, inv *model.Invoice) error {
	if inv.Status == model.InvoicePaid {
		return nil
	}
	paid, err := s.Repo.SumCompletedForInvoice(ctx, inv.ID)
	if err != nil {
		return storeErr("while settling the invoice", err)
	}
	if paid >= inv.Total {
		if err := s.Invoices.UpdateStatus(ctx, inv.ID, model.InvoicePaid); err != nil {
			return storeErr("while settling the invoice", err)
		}
	}
	return nil
}

func (s *PaymentService) Get(ctx context.Context, id string) (*model.Payment, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("while fetching payment", err)
	}
	return p, nil
}

func (s *PaymentService) List(ctx context.Context, p ListParams, customerID, invoiceID string) ([]model.Payment, int, error) {
	p = p.Normalize()
	list, total, err := s.Repo.List(ctx, p.Offset(), p.Limit, customerID, invoiceID, p.Search)
	if err != nil {
		return nil, 0, storeErr("while listing payments", err)
	}
	return list, total, nil
}

// Update rewrites the mutable fields; a status change to COMPLETED re-runs
// the invoice settlement check.
func (s *PaymentService) Update(ctx context.Context, p *model.Payment) error {
	existing, err := s.Repo.GetByID(ctx, p.ID)
	if err != nil {
		return storeErr("while fetching payment", err)
	}
	if err := validatePayment(p); err != nil {
		return err
	}
	if p.Status == "" {
		p.Status = existing.Status
	}
	if !model.ValidPaymentStatus(p.Status) {
		return &auth.ValidationError{Field: "status", Message: "Invalid payment status"}
	}
	if p.Date.IsZero() {
		p.Date = existing.Date
	}
	if err := s.Repo.Update(ctx, p); err != nil {
		return storeErr("during payment update", err)
	}

	if existing.InvoiceID != nil && p.Status == model.PaymentCompleted {
		inv, err := s.Invoices.GetByID(ctx, *existing.InvoiceID)
		if err != nil {
			// an invoice deleted since the payment was recorded has nothing
			// left to settle; any other failure must not pass as success
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			return storeErr("while settling the invoice", err)
		}
		return s.settleInvoice(ctx, inv)
	}
	return nil
}

func (s *PaymentService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr("during payment deletion", err)
	}
	return nil
}
