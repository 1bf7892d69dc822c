package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"stockquotes/internal/logging"
)

var (
	ErrInvalidInput = errors.New("invalid input provided")
	ErrNotFound     = errors.New("requested resource not found")
	ErrUpstream     = errors.New("upstream request failed")
)

// AppError pairs the message shown to the caller with the error kept for logs.
type AppError struct {
	Code    int    `json:"-"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) Unwrap() error { return e.Err }

func WrapError(err error, message string, code int) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *AppError {
	return WrapError(ErrInvalidInput, message, http.StatusBadRequest)
}

func NotFound(message string) *AppError {
	return WrapError(ErrNotFound, message, http.StatusNotFound)
}

// Upstream reports a provider failure. err is logged, never sent.
func Upstream(err error, message string) *AppError {
	return WrapError(errors.Join(ErrUpstream, err), message, http.StatusInternalServerError)
}

// WriteJSON sends data as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

func WriteText(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

// WriteError logs err and writes {"error": message}. Anything that is not an
// *AppError becomes a generic 500.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context(), nil)

	var appErr *AppError
	if errors.As(err, &appErr) {
		level := slog.LevelWarn
		if appErr.Code >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(r.Context(), level, "request failed",
			"path", r.URL.Path, "status", appErr.Code, "message", appErr.Message, "error", appErr.Err)
		WriteJSON(w, appErr.Code, map[string]string{"error": appErr.Message})
		return
	}
	logger.Error("unhandled error", "path", r.URL.Path, "error", err)
	WriteJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
}
