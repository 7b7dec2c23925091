package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/users"
)

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

// WriteError writes a standardized JSON error response
func WriteError(w http.ResponseWriter, statusCode int, errorType, message string) {
	WriteJSON(w, statusCode, map[string]interface{}{
		"error":   errorType,
		"message": message,
	})
}

// WriteFieldErrors writes per-field validation errors in the shape the
// frontend maps onto form inputs: {"errors": [{"field", "message"}]}
func WriteFieldErrors(w http.ResponseWriter, fields []users.FieldError) {
	WriteJSON(w, http.StatusBadRequest, map[string]interface{}{
		"errors": fields,
	})
}
