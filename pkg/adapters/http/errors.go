package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/aretw0/jornada/pkg/answers"
	"github.com/aretw0/jornada/pkg/domain"
	"github.com/aretw0/jornada/pkg/schema"
	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusFor maps an engine error to an HTTP status code.
func StatusFor(err error) int {
	var (
		unknownKey *answers.UnknownKeyError
		invalid    *schema.ValidationError
	)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrUnknownNode),
		errors.As(err, &unknownKey):
		return http.StatusNotFound
	case errors.As(err, &invalid):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotStarted),
		errors.Is(err, domain.ErrNotTerminal),
		errors.Is(err, domain.ErrDerivationInProgress):
		return http.StatusConflict
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	attrs := []any{"error", err, "status", status, "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context())}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", attrs...)
	} else {
		s.logger.Warn("request rejected", attrs...)
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
