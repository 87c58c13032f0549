package helpers

import (
	"encoding/json"
	"net/http"

	"eventsapi/internal/domain"
)

// Content types written by the API.
const (
	ContentTypeHAL  = "application/hal+json;charset=UTF-8"
	ContentTypeJSON = "application/json;charset=UTF-8"
)

// Error codes for request-level failures that are not field validation rules.
const (
	ErrCodeMalformedBody = "malformedBody"
	ErrCodeInvalidSort   = "invalidSort"
	ErrCodeInternalError = "internalError"
)

// ErrorsResponse is the body of every 400 response.
// swagger:model ErrorsResponse
type ErrorsResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

// WriteHAL sets the hypermedia Content-Type, writes statusCode, and encodes v.
func WriteHAL(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", ContentTypeHAL)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteErrors writes statusCode and an ErrorsResponse carrying errs.
func WriteErrors(w http.ResponseWriter, statusCode int, errs []domain.FieldError) {
	if errs == nil {
		errs = []domain.FieldError{}
	}
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorsResponse{Errors: errs})
}

// WriteError writes a single request-level error.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteErrors(w, statusCode, []domain.FieldError{{Code: code, Message: message}})
}

// WriteEmpty writes statusCode with no body.
func WriteEmpty(w http.ResponseWriter, statusCode int) {
	w.WriteHeader(statusCode)
}

// BaseURL returns the scheme and host the request was addressed to. X-Forwarded-Proto
// and X-Forwarded-Host are honored only when trustProxy is set; otherwise r.Host is used.
func BaseURL(r *http.Request, trustProxy bool) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	host := r.Host
	if trustProxy {
		if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
			scheme = p
		}
		if h := r.Header.Get("X-Forwarded-Host"); h != "" {
			host = h
		}
	}
	return scheme + "://" + host
}
