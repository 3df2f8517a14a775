package config

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		Logger.WithError(err).Error("Failed to encode JSON response")
	}
}

// Error writes a {message, error} body. The error detail is only exposed
// outside production.
func Error(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Message: message}
	if err != nil && !IsProduction() {
		resp.Error = err.Error()
	}
	JSON(w, status, resp)
}
