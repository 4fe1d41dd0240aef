package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-master-password/internal/store"
)

// mapStoreError converts repository sentinels into service errors. Other
// errors are returned wrapped with op.
func mapStoreError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrSiteAlreadyExists):
		return ErrSiteExists
	case errors.Is(err, store.ErrSiteNotFound):
		return ErrSiteNotFound
	case errors.Is(err, store.ErrInvalidSite):
		return fmt.Errorf("%s: %w", op, ErrInvalidCounter)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
