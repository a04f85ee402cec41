package database

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/andreipy/hw05-final/internal/apperr"
)

// notFoundOr maps a missing record to NotFound with the given context; any
// other gorm error is a store failure.
func notFoundOr(err error, format string, a ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(format, a...)
	}
	return storeErr(err)
}

// storeErr classifies a database failure as Unavailable. The core never
// retries; bounded retry is the calling layer's decision.
func storeErr(err error) error {
	return fmt.Errorf("store: %v: %w", err, apperr.ErrUnavailable)
}
