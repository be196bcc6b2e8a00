package moderation

import (
	"errors"
	"fmt"
	"net/http"
)

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "validation: " + e.Reason }

type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string { return "content not found: " + e.ID }

type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string { return "precondition failed: " + e.Reason }

// ConflictError reports that a compare-and-swap update lost to a
// concurrent writer. The caller re-reads and retries the whole operation.
type ConflictError struct {
	ID string
}

func (e *ConflictError) Error() string { return "concurrent update on " + e.ID }

type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// HTTPStatus maps an engine error to a response code.
func HTTPStatus(err error) int {
	var (
		ve *ValidationError
		nf *NotFoundError
		pe *PreconditionError
		ce *ConflictError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &nf):
		return http.StatusNotFound
	case errors.As(err, &pe):
		return http.StatusPreconditionFailed
	case errors.As(err, &ce):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
