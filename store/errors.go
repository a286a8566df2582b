package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports a missing entity id.
	ErrNotFound = errors.New("not found")
	// ErrEmailExists reports a sign-up against an already-registered email.
	ErrEmailExists = errors.New("email already registered")
	// ErrPersist reports a flush that did not reach durable storage. The
	// in-memory mutation it followed stays applied; the store remains the
	// consistency authority until the next successful flush.
	ErrPersist = errors.New("persistence failure")
)

func persistErr(resource string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersist, resource, err)
}
