package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"blogCPT/internal/domain"
)

const (
	msgInvalidToken   = "Invalid or expired token"
	msgNoToken        = "No token provided or invalid format"
	msgInternal       = "Internal server error"
	msgInvalidRequest = "Invalid request body"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError sends a JSON error body with the given status.
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	writeSuccess(w, ErrorResponse{Error: message}, statusCode)
}

func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// errorMessages holds the caller-facing text for each error kind an endpoint
// can produce. Empty fields fall back to generic text.
type errorMessages struct {
	Unauthenticated string
	Forbidden       string
	NotFound        string
	Conflict        string
	Internal        string
}

// AuthErrorMessage is the body text for a rejected bearer token.
func AuthErrorMessage(err error) string {
	if errors.Is(err, domain.ErrTokenInvalid) || errors.Is(err, domain.ErrTokenExpired) {
		return msgInvalidToken
	}
	return msgNoToken
}

// handleError maps a service error to a status code. Causes of internal
// errors are logged and never sent to the caller.
func (h *Handlers) handleError(w http.ResponseWriter, r *http.Request, err error, msgs errorMessages) {
	var validationErr *domain.ValidationError

	switch {
	case errors.As(err, &validationErr):
		WriteError(w, validationErr.Message, http.StatusBadRequest)
	case errors.Is(err, domain.ErrValidation):
		WriteError(w, msgInvalidRequest, http.StatusBadRequest)
	case errors.Is(err, domain.ErrUnauthenticated):
		WriteError(w, orDefault(msgs.Unauthenticated, AuthErrorMessage(err)), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		WriteError(w, orDefault(msgs.Forbidden, "Forbidden"), http.StatusForbidden)
	case errors.Is(err, domain.ErrNotFound):
		WriteError(w, orDefault(msgs.NotFound, "Not found"), http.StatusNotFound)
	case errors.Is(err, domain.ErrConflict):
		WriteError(w, orDefault(msgs.Conflict, "Already exists"), http.StatusConflict)
	default:
		h.Logger.ErrorContext(r.Context(), "request failed",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
		)
		WriteError(w, orDefault(msgs.Internal, msgInternal), http.StatusInternalServerError)
	}
}

func orDefault(message, fallback string) string {
	if message == "" {
		return fallback
	}
	return message
}
