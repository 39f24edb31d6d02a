package response

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Response is the envelope every endpoint writes.
type Response struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    any          `json:"data,omitempty"`
	Error   *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

var errorCodes = map[int]string{
	http.StatusBadRequest:          "BAD_REQUEST",
	http.StatusUnauthorized:        "UNAUTHORIZED",
	http.StatusForbidden:           "FORBIDDEN",
	http.StatusNotFound:            "NOT_FOUND",
	http.StatusConflict:            "CONFLICT",
	http.StatusUnprocessableEntity: "VALIDATION_ERROR",
	http.StatusInternalServerError: "INTERNAL_SERVER_ERROR",
	http.StatusServiceUnavailable:  "SERVICE_UNAVAILABLE",
}

// writeJSON encodes before writing the status so an unencodable payload
// becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, status int, payload Response) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "status", status, "error", err)
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(Response{
			Error: &ErrorDetail{
				Code:    errorCodes[status],
				Message: "Failed to encode response",
			},
		})
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func ok(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, Response{Success: true, Message: message, Data: data})
}

func fail(w http.ResponseWriter, status int, message string, details map[string]string) {
	writeJSON(w, status, Response{
		Error: &ErrorDetail{
			Code:    errorCodes[status],
			Message: message,
			Details: details,
		},
	})
}

func Success(w http.ResponseWriter, data any) {
	ok(w, http.StatusOK, "", data)
}

func SuccessWithMessage(w http.ResponseWriter, message string, data any) {
	ok(w, http.StatusOK, message, data)
}

func Created(w http.ResponseWriter, message string, data any) {
	ok(w, http.StatusCreated, message, data)
}

func BadRequest(w http.ResponseWriter, message string, details map[string]string) {
	fail(w, http.StatusBadRequest, message, details)
}

// ValidationError reports field-level DTO failures as 422.
func ValidationError(w http.ResponseWriter, details map[string]string) {
	fail(w, http.StatusUnprocessableEntity, "Validation failed", details)
}

func Unauthorized(w http.ResponseWriter, message string) {
	fail(w, http.StatusUnauthorized, message, nil)
}

func Forbidden(w http.ResponseWriter, message string) {
	fail(w, http.StatusForbidden, message, nil)
}

func NotFound(w http.ResponseWriter, message string) {
	fail(w, http.StatusNotFound, message, nil)
}

func Conflict(w http.ResponseWriter, message string) {
	fail(w, http.StatusConflict, message, nil)
}

func InternalServerError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, message, nil)
}

func ServiceUnavailable(w http.ResponseWriter, message string) {
	fail(w, http.StatusServiceUnavailable, message, nil)
}
