package services

import (
	"context"
	"strings"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/model"
)

type CustomerService struct {
	Repo CustomerStore
}

func NewCustomerService(r CustomerStore) *CustomerService {
	return &CustomerService{Repo: r}
}

func (s *CustomerService) Create(ctx context.Context, c *model.Customer) error {
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	if c.DisplayName == "" {
		return &auth.ValidationError{Field: "display_name", Message: "Display name is required"}
	}
	if c.Status == "" {
		c.Status = model.CustomerActive
	}
	if !model.ValidCustomerStatus(c.Status) {
		return &auth.ValidationError{Field: "status", Message: "Invalid customer status"}
	}
	if c.Country == "" {
		c.Country = "US"
	}
	c.IsActive = true
	if err := s.Repo.Create(ctx, c); err != nil {
		return storeErr("during customer creation", err)
	}
	return nil
}

func (s *CustomerService) Get(ctx context.Context, id string) (*model.Customer, error) {
	c, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeErr("while fetching customer", err)
	}
	return c, nil
}

func (s *CustomerService) List(ctx context.Context, p ListParams) ([]model.Customer, int, error) {
	p = p.Normalize()
	list, total, err := s.Repo.List(ctx, p.Offset(), p.Limit, p.Search)
	if err != nil {
		return nil, 0, storeErr("while listing customers", err)
	}
	return list, total, nil
}

func (s *CustomerService) Update(ctx context.Context, c *model.Customer) error {
	c.DisplayName = strings.TrimSpace(c.DisplayName)
	if c.DisplayName == "" {
		return &auth.ValidationError{Field: "display_name", Message: "Display name is required"}
	}
	if !model.ValidCustomerStatus(c.Status) {
		return &auth.ValidationError{Field: "status", Message: "Invalid customer status"}
	}
	if err := s.Repo.Update(ctx, c); err != nil {
		return storeErr("during customer update", err)
	}
	return nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return storeErr("during customer deletion", err)
	}
	return nil
}
