package pkg

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, message []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)
	if _, err := w.Write(message); err != nil {
		log.Errorf("failed to write response [%s]: %s", message, err)
	}
}

func WriteResponseBytesOK(w http.ResponseWriter, contentType string, message []byte) {
	WriteResponseBytes(w, contentType, message, http.StatusOK)
}

func WriteJSONResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.JSON, message, http.StatusOK)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.Text, message, http.StatusOK)
}

// WriteJSON marshals v and writes it with the given status code.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	respJson, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		WriteErrorResponse(w, http.StatusInternalServerError, "internal server error", NoTraceIDDetails)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, respJson, statusCode)
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message, details string) {
	errJson, err := json.Marshal(ErrorResponse{
		Error:   message,
		Details: details,
	})
	if err != nil {
		// cannot really happen with two strings
		http.Error(w, message, statusCode)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, errJson, statusCode)
}

// NoTraceIDDetails is the details text of internal errors when no trace is recorded.
const NoTraceIDDetails = "internal error, see server logs"

// InternalErrorDetails is the details text of a 500 response: the trace ID when
// there is one, never the error itself.
func InternalErrorDetails(traceID string) string {
	if traceID == "" {
		return NoTraceIDDetails
	}
	return "trace_id: " + traceID
}

// WriteError maps the error taxonomy to a response and returns the status code.
// Internal errors are answered with internalMsg and never expose their text;
// details carry the trace ID instead.
func WriteError(w http.ResponseWriter, err error, internalMsg, traceID string) int {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		WriteErrorResponse(w, http.StatusBadRequest, validationErr.Message, "")
		return http.StatusBadRequest
	case errors.Is(err, ErrValidation):
		WriteErrorResponse(w, http.StatusBadRequest, "invalid request", "")
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		WriteErrorResponse(w, http.StatusNotFound, "not found", "")
		return http.StatusNotFound
	default:
		WriteErrorResponse(w, http.StatusInternalServerError, internalMsg, InternalErrorDetails(traceID))
		return http.StatusInternalServerError
	}
}
