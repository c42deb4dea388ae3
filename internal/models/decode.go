package models

import (
	"fmt"

	"campusHub/internal/storage"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Decode reads a record out of snap and validates it. Absent nodes return storage.ErrNotFound;
// anything that does not match the schema returns an error wrapping ErrMalformed.
func Decode[T any](snap storage.Snapshot, dst *T) error {
	if !snap.Exists() {
		return storage.ErrNotFound
	}

	if err := snap.Decode(dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, snap.Path, err)
	}

	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, snap.Path, err)
	}

	return nil
}
