package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/brand-styleguide/internal/brand"
	"github.com/jonathan/brand-styleguide/internal/db"
	"github.com/jonathan/brand-styleguide/internal/fetch"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrNotFound indicates the requested styleguide does not exist
type ErrNotFound struct {
	ID string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("styleguide not found: %s", e.ID)
}

// HTTPStatus maps an error from a handler or the pipeline to a status code
func HTTPStatus(err error) int {
	var validation *ErrValidation
	var notFound *ErrNotFound
	var insufficient *brand.InsufficientInputError
	var fetchErr *fetch.Error

	switch {
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.Is(err, db.ErrStyleguideNotFound):
		return http.StatusNotFound
	case errors.As(err, &insufficient):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
