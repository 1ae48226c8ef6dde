package services

import (
	"errors"

	"InvoiceNestAPI/internal/auth"
	"InvoiceNestAPI/internal/repository"
)

// storeErr lets the not-found sentinel pass through for the boundary to turn
// into a 404 and wraps every other store failure as an opaque database error.
func storeErr(message string, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return auth.NewDatabaseError(message, err)
}
