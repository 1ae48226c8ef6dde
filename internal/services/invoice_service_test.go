package services

import (
	"context"
	"testing"

	"InvoiceNestAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotals(t *testing.T) {
	items := []model.InvoiceItem{
		{Quantity: 2, Price: 100, TaxRate: 10, Discount: 20},
		{Quantity: 1, Price: 50, TaxRate: 0, Discount: 0},
	}

	got := CalculateTotals(items)

	// line 1: 2*100-20 = 180, tax 18; line 2: 50, tax 0
	assert.Equal(t, 230.0, got.Subtotal)
	assert.Equal(t, 18.0, got.TaxAmount)
	assert.Equal(t, 20.0, got.DiscountAmount)
	assert.Equal(t, 248.0, got.Total)
}

func TestCalculateTotalsEmpty(t *testing.T) {
	got := CalculateTotals(nil)
	assert.Equal(t, 0.0, got.Subtotal)
	assert.Equal(t, 0.0, got.TaxAmount)
	assert.Equal(t, 0.0, got.DiscountAmount)
	assert.Equal(t, 0.0, got.Total)
}

func TestCalculateTotalsRounding(t *testing.T) {
	items := []model.InvoiceItem{
		{Quantity: 3, Price: 0.333, TaxRate: 7.25},
	}

	got := CalculateTotals(items)

	// 0.999 subtotal, 0.07242... tax
	assert.Equal(t, 1.0, got.Subtotal)
	assert.Equal(t, 0.07, got.TaxAmount)
	assert.Equal(t, 1.07, got.Total)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "INV-000001", formatNumber("INV", 1))
	assert.Equal(t, "PAY-000042", formatNumber("PAY", 42))
	assert.Equal(t, "INV-1000000", formatNumber("INV", 1000000))
}

func newInvoiceFixture(t *testing.T) (*InvoiceService, *memSettingStore, string) {
	t.Helper()
	customers := newMemCustomerStore()
	settings := newMemSettingStore()
	svc := NewInvoiceService(newMemInvoiceStore(), customers, settings)

	cust := &model.Customer{DisplayName: "Acme Corp", Country: "US", Status: model.CustomerActive}
	require.NoError(t, customers.Create(context.Background(), cust))
	return svc, settings, cust.ID
}

func TestInvoiceCreateAssignsSequentialNumbers(t *testing.T) {
	ctx := context.Background()
	svc, settings, customerID := newInvoiceFixture(t)

	first := &model.Invoice{
		CustomerID: customerID,
		Items:      []model.InvoiceItem{{Description: "Consulting", Quantity: 1, Price: 100}},
	}
	require.NoError(t, svc.Create(ctx, first))
	assert.Equal(t, "INV-000001", first.Number)
	assert.Equal(t, model.InvoiceDraft, first.Status)
	assert.Equal(t, 100.0, first.Total)

	second := &model.Invoice{
		CustomerID: customerID,
		Items:      []model.InvoiceItem{{Description: "Consulting", Quantity: 1, Price: 100}},
	}
	require.NoError(t, svc.Create(ctx, second))
	assert.Equal(t, "INV-000002", second.Number)

	// the seeded sequence row holds the next value
	seq, err := settings.GetByKey(ctx, "invoice_sequence")
	require.NoError(t, err)
	assert.Equal(t, "3", seq.Value)
}

func TestInvoiceNumberingUsesExistingSequenceAndPrefix(t *testing.T) {
	ctx := context.Background()
	svc, settings, customerID := newInvoiceFixture(t)

	require.NoError(t, settings.Upsert(ctx, &model.Setting{Key: "invoice_prefix", Value: "FACT", Type: "string"}))
	require.NoError(t, settings.Upsert(ctx, &model.Setting{Key: "invoice_sequence", Value: "42", Type: "number"}))

	inv := &model.Invoice{
		CustomerID: customerID,
		Items:      []model.InvoiceItem{{Description: "Consulting", Quantity: 1, Price: 100}},
	}
	require.NoError(t, svc.Create(ctx, inv))
	assert.Equal(t, "FACT-000042", inv.Number)
}

func TestListParamsNormalize(t *testing.T) {
	p := ListParams{}.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)

	p = ListParams{Page: 3, Limit: 500}.Normalize()
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 100, p.Limit)
	assert.Equal(t, 200, p.Offset())

	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, p.TotalPages(100))
	assert.Equal(t, 2, p.TotalPages(101))
}
