package services

import (
	"context"
	"strconv"
	"time"

	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/repository"

	"github.com/google/uuid"
)

// In-memory stores for service tests. Lookups return copies the way a real
// repository returns fresh rows.

type memCustomerStore struct {
	customers map[string]*model.Customer
}

func newMemCustomerStore() *memCustomerStore {
	return &memCustomerStore{customers: map[string]*model.Customer{}}
}

func (f *memCustomerStore) Create(_ context.Context, c *model.Customer) error {
	c.ID = uuid.NewString()
	cp := *c
	f.customers[c.ID] = &cp
	return nil
}

func (f *memCustomerStore) GetByID(_ context.Context, id string) (*model.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *memCustomerStore) List(context.Context, int, int, string) ([]model.Customer, int, error) {
	out := []model.Customer{}
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, len(out), nil
}

func (f *memCustomerStore) Update(_ context.Context, c *model.Customer) error {
	if _, ok := f.customers[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	f.customers[c.ID] = &cp
	return nil
}

func (f *memCustomerStore) Delete(_ context.Context, id string) error {
	if _, ok := f.customers[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.customers, id)
	return nil
}

type memInvoiceStore struct {
	invoices map[string]*model.Invoice
}

func newMemInvoiceStore() *memInvoiceStore {
	return &memInvoiceStore{invoices: map[string]*model.Invoice{}}
}

func (f *memInvoiceStore) put(inv *model.Invoice) *model.Invoice {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	cp := *inv
	f.invoices[inv.ID] = &cp
	return &cp
}

func (f *memInvoiceStore) Create(_ context.Context, inv *model.Invoice) error {
	inv.ID = uuid.NewString()
	f.put(inv)
	return nil
}

func (f *memInvoiceStore) GetByID(_ context.Context, id string) (*model.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *memInvoiceStore) List(context.Context, int, int, string, string, string) ([]model.Invoice, int, error) {
	out := []model.Invoice{}
	for _, inv := range f.invoices {
		out = append(out, *inv)
	}
	return out, len(out), nil
}

func (f *memInvoiceStore) Update(_ context.Context, inv *model.Invoice) error {
	if _, ok := f.invoices[inv.ID]; !ok {
		return repository.ErrNotFound
	}
	f.put(inv)
	return nil
}

func (f *memInvoiceStore) UpdateStatus(_ context.Context, id, status string) error {
	inv, ok := f.invoices[id]
	if !ok {
		return repository.ErrNotFound
	}
	inv.Status = status
	return nil
}

func (f *memInvoiceStore) Delete(_ context.Context, id string) error {
	if _, ok := f.invoices[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.invoices, id)
	return nil
}

type memPaymentStore struct {
	payments map[string]*model.Payment
}

func newMemPaymentStore() *memPaymentStore {
	return &memPaymentStore{payments: map[string]*model.Payment{}}
}

func (f *memPaymentStore) Create(_ context.Context, p *model.Payment) error {
	p.ID = uuid.NewString()
	cp := *p
	f.payments[p.ID] = &cp
	return nil
}

func (f *memPaymentStore) GetByID(_ context.Context, id string) (*model.Payment, error) {
	p, ok := f.payments[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *memPaymentStore) List(context.Context, int, int, string, string, string) ([]model.Payment, int, error) {
	out := []model.Payment{}
	for _, p := range f.payments {
		out = append(out, *p)
	}
	return out, len(out), nil
}

// Update touches the same column set as the SQL repository: amount, method,
// date, notes, status.
func (f *memPaymentStore) Update(_ context.Context, p *model.Payment) error {
	existing, ok := f.payments[p.ID]
	if !ok {
		return repository.ErrNotFound
	}
	existing.Amount = p.Amount
	existing.Method = p.Method
	existing.Date = p.Date
	existing.Notes = p.Notes
	existing.Status = p.Status
	existing.UpdatedAt = time.Now()
	return nil
}

func (f *memPaymentStore) Delete(_ context.Context, id string) error {
	if _, ok := f.payments[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.payments, id)
	return nil
}

func (f *memPaymentStore) SumCompletedForInvoice(_ context.Context, invoiceID string) (float64, error) {
	var sum float64
	for _, p := range f.payments {
		if p.InvoiceID != nil && *p.InvoiceID == invoiceID && p.Status == model.PaymentCompleted {
			sum += p.Amount
		}
	}
	return sum, nil
}

type memSettingStore struct {
	settings map[string]*model.Setting
}

func newMemSettingStore() *memSettingStore {
	return &memSettingStore{settings: map[string]*model.Setting{}}
}

func (f *memSettingStore) GetByKey(_ context.Context, key string) (*model.Setting, error) {
	s, ok := f.settings[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *memSettingStore) List(context.Context) ([]model.Setting, error) {
	out := []model.Setting{}
	for _, s := range f.settings {
		out = append(out, *s)
	}
	return out, nil
}

func (f *memSettingStore) Upsert(_ context.Context, s *model.Setting) error {
	cp := *s
	f.settings[s.Key] = &cp
	return nil
}

func (f *memSettingStore) EnsureKey(_ context.Context, s *model.Setting) error {
	if _, ok := f.settings[s.Key]; ok {
		return nil
	}
	cp := *s
	f.settings[s.Key] = &cp
	return nil
}

func (f *memSettingStore) Delete(_ context.Context, key string) error {
	if _, ok := f.settings[key]; !ok {
		return repository.ErrNotFound
	}
	delete(f.settings, key)
	return nil
}

func (f *memSettingStore) NextSequence(_ context.Context, key string) (int64, error) {
	s, ok := f.settings[key]
	if !ok {
		return 0, repository.ErrNotFound
	}
	n, err := strconv.ParseInt(s.Value, 10, 64)
	if err != nil {
		return 0, err
	}
	s.Value = strconv.FormatInt(n+1, 10)
	return n, nil
}
