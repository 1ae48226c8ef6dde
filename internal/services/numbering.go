package services

import (
	"context"
	"errors"
	"fmt"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/repository"
)

// formatNumber renders a document number like INV-000042.
func formatNumber(prefix string, sequence int64) string {
	return fmt.Sprintf("%s-%06d", prefix, sequence)
}

// nextDocumentNumber draws the next number from a settings-backed sequence,
// seeding the sequence row on first use. Seeding is insert-if-absent, so two
// concurrent first documents converge on the same row and still draw
// distinct values from it.
func nextDocumentNumber(ctx context.Context, store SettingStore, prefixKey, sequenceKey, fallbackPrefix string) (string, error) {
	prefix := fallbackPrefix
	set, err := store.GetByKey(ctx, prefixKey)
	switch {
	case err == nil:
		if set.Value != "" {
			prefix = set.Value
		}
	case !errors.Is(err, repository.ErrNotFound):
		return "", auth.NewDatabaseError("while reading the document number prefix", err)
	}

	seq, err := store.NextSequence(ctx, sequenceKey)
	if errors.Is(err, repository.ErrNotFound) {
		seed := &model.Setting{Key: sequenceKey, Value: "1", Type: "number"}
		if err := store.EnsureKey(ctx, seed); err != nil {
			return "", auth.NewDatabaseError("while seeding the document number sequence", err)
		}
		seq, err = store.NextSequence(ctx, sequenceKey)
	}
	if err != nil {
		return "", auth.NewDatabaseError("while advancing the document number sequence", err)
	}
	return formatNumber(prefix, seq), nil
}
