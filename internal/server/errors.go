// Package server provides the HTTP REST API for the job skills analyzer.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/job-skills-analyzer/internal/annotate"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Annotator failures map to 502 since the annotation backend is an
// external collaborator from the API's point of view.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	var annotationErr *annotate.AnnotationError
	if errors.As(err, &annotationErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}
