package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse writes a JSON error body and returns any encoding error.
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// ErrorResponseDetails writes a JSON error body carrying the underlying
// cause for diagnostics.
func ErrorResponseDetails(w http.ResponseWriter, statusCode int, message, details string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(map[string]string{
		"error":   message,
		"details": details,
	})
}

// WriteJSON writes a JSON response and returns any encoding error.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	return json.NewEncoder(w).Encode(data)
}

// WriteRawJSON writes an already-encoded JSON body verbatim.
func WriteRawJSON(w http.ResponseWriter, statusCode int, raw json.RawMessage) error {
	w.Header().Set("Content-Type", "application/json")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}
	_, err := w.Write(raw)
	return err
}
