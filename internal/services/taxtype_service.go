package services

import (
	"context"
	"strings"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/model"
)

type TaxTypeService struct {
	Repo TaxTypeStore
}

func NewTaxTypeService(r TaxTypeStore) *TaxTypeService {
	return &TaxTypeService{Repo: r}
}

func validateTaxType(t *model.TaxType) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return &auth.ValidationError{Field: "name", Message: "Tax type name is required"}
	}
	if t.Rate < 0 || t.Rate > 100 {
		return &auth.ValidationError{Field: "rate", Message: "Tax rate must be between 0 and 100"}
	}
	return nil
}

func (s *TaxTypeService) Create(ctx context.Context, t *model.TaxType) error {
	if err := validateTaxType(t); err != nil {
		return err
	}
	exists, err := s.Repo.ExistsByName(ctx, t.Name)
	if err != nil {
		return storeErr("during tax type creation", err)
	}
	if exists {
		return &auth.ValidationError{Field: "name", Message: "Tax type already exists"}
	}
	t.IsActive = true
	if err := s.Repo.Create(ctx, t); err != nil {
		return storeErr("during tax type creation", err)
	}
	return nil
}

func (s *TaxTypeService) Get(ctx context.Context, id string) (*model.TaxType, error) {
	t, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("while fetching tax type", err)
	}
	return t, nil
}

func (s *TaxTypeService) List(ctx context.Context) ([]model.TaxType, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storeErr("while listing tax types", err)
	}
	return list, nil
}

func (s *TaxTypeService) Update(ctx context.Context, t *model.TaxType) error {
	if err := validateTaxType(t); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, t); err != nil {
		return storeErr("during tax type update", err)
	}
	return nil
}

func (s *TaxTypeService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr("during tax type deletion", err)
	}
	return nil
}
