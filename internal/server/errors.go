package server

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-studio/internal/ai"
	"github.com/jonathan/resume-studio/internal/ingestion"
	"github.com/jonathan/resume-studio/internal/schemas"
	"github.com/jonathan/resume-studio/internal/store"
)

// HTTPStatus maps domain errors to HTTP status codes.
func HTTPStatus(err error) int {
	var notFound *store.NotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}

	var importErr *store.ImportError
	if errors.As(err, &importErr) {
		return http.StatusBadRequest
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest
	}

	var unsupported *ingestion.UnsupportedTypeError
	if errors.As(err, &unsupported) {
		return http.StatusUnsupportedMediaType
	}

	var extraction *ingestion.ExtractionError
	if errors.As(err, &extraction) {
		return http.StatusBadRequest
	}

	var analysis *ai.AnalysisError
	if errors.As(err, &analysis) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}

// fail writes an error response with the mapped status code.
func (s *Server) fail(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}
