package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// respondWithError writes a JSON error body of the form {"detail": ...},
// logging the underlying error when there is one
func respondWithError(w http.ResponseWriter, status int, detail string, err error) {
	if err != nil {
		slog.Error(detail, "status", status, "error", err)
	}
	respondWithJSON(w, status, map[string]string{"detail": detail})
}

// respondWithJSON writes a JSON response with the given status
func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
