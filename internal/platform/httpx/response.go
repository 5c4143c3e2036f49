// Package httpx holds the JSON envelope, error mapping and request decoding
// shared by every module handler.
package httpx

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/georgemunganga/venuehub-backend/internal/platform/apperr"
	"github.com/georgemunganga/venuehub-backend/internal/platform/logger"
	"go.uber.org/zap"
)

// Envelope is the standard response body: { success, data, message }.
type Envelope struct {
	Success bool                `json:"success"`
	Data    interface{}         `json:"data,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  []apperr.FieldError `json:"errors,omitempty"`
}

// ListEnvelope is the paginated response body: { success, data, total, page, limit }.
type ListEnvelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	Limit   int         `json:"limit"`
}

// Respond writes body as JSON with the given status.
func Respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// OK writes a success envelope.
func OK(w http.ResponseWriter, status int, data interface{}, message string) {
	Respond(w, status, Envelope{Success: true, Data: data, Message: message})
}

// List writes a paginated envelope.
func List(w http.ResponseWriter, data interface{}, total int64, p Page) {
	Respond(w, http.StatusOK, ListEnvelope{Success: true, Data: data, Total: total, Page: p.Page, Limit: p.Limit})
}

// Fail writes an error envelope with an explicit status and message.
func Fail(w http.ResponseWriter, status int, message string) {
	Respond(w, status, Envelope{Success: false, Message: message})
}

// Error maps err to a status code and writes the error envelope. Unexpected
// errors are logged with the request-scoped logger and hidden from the client.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		Respond(w, http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Validation failed",
			Errors:  apperr.Fields(err),
		})
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		Fail(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrUnauthorized):
		Fail(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperr.ErrForbidden):
		Fail(w, http.StatusForbidden, err.Error())
	case errors.Is(err, apperr.ErrConflict):
		Fail(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrInvalidTransition):
		Fail(w, http.StatusUnprocessableEntity, err.Error())
	default:
		logger.FromContext(r.Context()).Error("request failed", zap.Error(err))
		Fail(w, http.StatusInternalServerError, "Internal server error")
	}
}
