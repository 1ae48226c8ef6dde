package services

import (
	"context"
	"strings"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/model"
)

type SettingService struct {
	Repo SettingStore
}

func NewSettingService(r SettingStore) *SettingService {
	return &SettingService{Repo: r}
}

func (s *SettingService) Get(ctx context.Context, key string) (*model.Setting, error) {
	set, err := s.Repo.GetByKey(ctx, key)
	if err != nil {
		return nil, storeErr("while fetching setting", err)
	}
	return set, nil
}

func (s *SettingService) List(ctx context.Context) ([]model.Setting, error) {
	list, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storeErr("while listing settings", err)
	}
	return list, nil
}

// Set stores a setting, creating or overwriting by key.
func (s *SettingService) Set(ctx context.Context, setting *model.Setting) error {
	setting.Key = strings.TrimSpace(setting.Key)
	if setting.Key == "" {
		return &auth.ValidationError{Field: "key", Message: "Setting key is required"}
	}
	if setting.Type == "" {
		setting.Type = "string"
	}
	if err := s.Repo.Upsert(ctx, setting); err != nil {
		return storeErr("during setting upsert", err)
	}
	return nil
}

func (s *SettingService) Delete(ctx context.Context, key string) error {
	if err := s.Repo.Delete(ctx, key); err != nil {
		return storeErr("during setting deletion", err)
	}
	return nil
}
