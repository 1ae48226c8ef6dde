package services

import (
	"context"
	"errors"
	"testing"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// downCustomerStore fails every call, the way a lost pool connection would.
type downCustomerStore struct {
	err error
}

func (f *downCustomerStore) Create(context.Context, *model.Customer) error { return f.err }
func (f *downCustomerStore) GetByID(context.Context, string) (*model.Customer, error) {
	return nil, f.err
}
func (f *downCustomerStore) List(context.Context, int, int, string) ([]model.Customer, int, error) {
	return nil, 0, f.err
}
func (f *downCustomerStore) Update(context.Context, *model.Customer) error { return f.err }
func (f *downCustomerStore) Delete(context.Context, string) error          { return f.err }

func TestCustomerCreateAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newMemCustomerStore())

	c := &model.Customer{DisplayName: "  Acme Corp  "}
	require.NoError(t, svc.Create(ctx, c))
	assert.Equal(t, "Acme Corp", c.DisplayName)
	assert.Equal(t, model.CustomerActive, c.Status)
	assert.Equal(t, "US", c.Country)
	assert.True(t, c.IsActive)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCustomerCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newMemCustomerStore())

	err := svc.Create(ctx, &model.Customer{DisplayName: "   "})
	require.Error(t, err)
	var ve *auth.ValidationError
	assert.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)

	err = svc.Create(ctx, &model.Customer{DisplayName: "Acme", Status: "BOGUS"})
	require.Error(t, err)
	assert.True(t, errors.As(err, &ve))
}

// A store outage must come back as a database error, never as the raw
// driver message in a client-facing kind.
func TestCustomerStoreFailuresWrapped(t *testing.T) {
	ctx := context.Background()
	down := errors.New("failed to connect to `host=localhost`")
	svc := NewCustomerService(&downCustomerStore{err: down})

	requireDatabaseError := func(t *testing.T, err error) {
		t.Helper()
		require.Error(t, err)
		var de *auth.DatabaseError
		require.True(t, errors.As(err, &de), "expected DatabaseError, got %v", err)
		assert.False(t, errors.As(err, new(*auth.ValidationError)))
	}

	requireDatabaseError(t, svc.Create(ctx, &model.Customer{DisplayName: "Acme"}))

	_, err := svc.Get(ctx, "some-id")
	requireDatabaseError(t, err)

	_, _, err = svc.List(ctx, ListParams{})
	requireDatabaseError(t, err)

	requireDatabaseError(t, svc.Update(ctx, &model.Customer{ID: "some-id", DisplayName: "Acme", Status: model.CustomerActive}))
	requireDatabaseError(t, svc.Delete(ctx, "some-id"))
}

// The not-found sentinel passes through untouched for the boundary's 404.
func TestCustomerNotFoundPassesThrough(t *testing.T) {
	ctx := context.Background()
	svc := NewCustomerService(newMemCustomerStore())

	_, err := svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.Delete(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
