package response

import (
	"encoding/json"
	"net/http"
	"time"
)

// DataEnvelope wraps every successful payload.
type DataEnvelope struct {
	Data interface{} `json:"data"`
}

// ErrorEnvelope wraps every failure payload.
type ErrorEnvelope struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Message   string `json:"message"`
	Status    int    `json:"status"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorEnvelope{Error: ErrorBody{
			Message:   "Failed to encode response",
			Status:    http.StatusInternalServerError,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		}})
	}
}

func Success(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, DataEnvelope{Data: data})
}

func Created(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusCreated, DataEnvelope{Data: data})
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorEnvelope{Error: ErrorBody{
		Message:   message,
		Status:    statusCode,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}
