package services

import (
	"context"

	"InvoiceNestAPI/internal/model"
)

// Store interfaces cover the repository slices the services consume, so each
// service is unit-testable without postgres. The concrete repositories in
// internal/repository satisfy them.

type CustomerStore interface {
	Create(ctx context.Context, c *model.Customer) error
	GetByID(ctx context.Context, id string) (*model.Customer, error)
	List(ctx context.Context, offset, limit int, search string) ([]model.Customer, int, error)
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id string) error
}

type InvoiceStore interface {
	Create(ctx context.Context, inv *model.Invoice) error
	GetByID(ctx context.Context, id string) (*model.Invoice, error)
	List(ctx context.Context, offset, limit int, customerID, status, search string) ([]model.Invoice, int, error)
	Update(ctx context.Context, inv *model.Invoice) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

type PaymentStore interface {
	Create(ctx context.Context, p *model.Payment) error
	GetByID(ctx context.Context, id string) (*model.Payment, error)
	List(ctx context.Context, offset, limit int, customerID, invoiceID, search string) ([]model.Payment, int, error)
	Update(ctx context.Context, p *model.Payment) error
	Delete(ctx context.Context, id string) error
	SumCompletedForInvoice(ctx context.Context, invoiceID string) (float64, error)
}

type TaxTypeStore interface {
	Create(ctx context.Context, t *model.TaxType) error
	GetByID(ctx context.Context, id string) (*model.TaxType, error)
	List(ctx context.Context) ([]model.TaxType, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Update(ctx context.Context, t *model.TaxType) error
	Delete(ctx context.Context, id string) error
}

type SettingStore interface {
	GetByKey(ctx context.Context, key string) (*model.Setting, error)
	List(ctx context.Context) ([]model.Setting, error)
	Upsert(ctx context.Context, s *model.Setting) error
	EnsureKey(ctx context.Context, s *model.Setting) error
	Delete(ctx context.Context, key string) error
	NextSequence(ctx context.Context, key string) (int64, error)
}
