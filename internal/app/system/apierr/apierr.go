// Package apierr defines the service's error taxonomy and the JSON response
// envelope. Handlers return errors instead of writing failure responses
// themselves; Wrap translates a returned error into the transport response in
// one place, so no handler carries its own status-code mapping.
package apierr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// Error carries an HTTP status and a user-visible message. Err, when set,
// holds the underlying cause for server-side logging only.
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports a missing record.
func NotFound(format string, args ...any) *Error {
	return &Error{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequest reports invalid caller input.
func BadRequest(format string, args ...any) *Error {
	return &Error{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// Forbidden reports a failed authorization rule for a valid credential.
func Forbidden(format string, args ...any) *Error {
	return &Error{Status: http.StatusForbidden, Message: fmt.Sprintf(format, args...)}
}

// TooMany reports a rate-limited request.
func TooMany(message string) *Error {
	return &Error{Status: http.StatusTooManyRequests, Message: message}
}

// TooLarge reports an upload exceeding the configured size limit.
func TooLarge(format string, args ...any) *Error {
	return &Error{Status: http.StatusRequestEntityTooLarge, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected failure. The cause is logged, never sent.
func Internal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// successEnvelope is the body for all 2xx responses.
type successEnvelope struct {
	Success bool `json:"success"`
	Count   *int `json:"count,omitempty"`
	Data    any  `json:"data"`
}

// errorEnvelope is the body for all non-2xx responses.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// JSON writes v with the given status. It is the single place response
// bodies are encoded; an encode failure at this point is unrecoverable and
// ignored because the status line has already been sent.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes a {success:true,data} envelope.
func OK(w http.ResponseWriter, status int, data any) {
	JSON(w, status, successEnvelope{Success: true, Data: data})
}

// OKCount writes a {success:true,count,data} envelope for result sets.
func OKCount(w http.ResponseWriter, status int, count int, data any) {
	JSON(w, status, successEnvelope{Success: true, Count: &count, Data: data})
}

// HandlerFunc is a request handler that reports failure by returning an error.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts a HandlerFunc to http.HandlerFunc, rendering any returned
// error as a {success:false,error} body. Unrecognized errors become a 500
// with a generic message; internal details go to the log only.
func Wrap(log *zap.Logger, h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := h(w, r)
		if err == nil {
			return
		}

		var apiErr *Error
		if !errors.As(err, &apiErr) {
			apiErr = Internal("server error", err)
		}

		if apiErr.Status >= http.StatusInternalServerError {
			log.Error("request failed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Error(err))
		} else {
			log.Info("request rejected",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", apiErr.Status),
				zap.String("reason", apiErr.Message))
		}

		JSON(w, apiErr.Status, errorEnvelope{Success: false, Error: apiErr.Message})
	}
}
