package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
	ErrUnauthorized   = errors.New("unauthorized")
	// ErrConflict marks a like race that was resolved in place. It is logged, never returned.
	ErrConflict       = errors.New("conflict")
	ErrStorageFailure = errors.New("storage failure")
)

// storageFailure passes domain errors through and tags everything else as a
// storage failure.
func storageFailure(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrInvalidRequest),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrStorageFailure):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
}
