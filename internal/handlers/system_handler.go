package handlers

import (
	"net/http"

	"littleyears/internal/database"
)

// SystemHandler serves liveness and connectivity diagnostics
type SystemHandler struct {
	db *database.DB
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(db *database.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// Healthcheck handles GET /
func (h *SystemHandler) Healthcheck(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// TestDatabase handles GET /test, a quick database connectivity check
func (h *SystemHandler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":  "running",
		"database": "not available",
	}

	tables, err := h.db.ListTables()
	if err != nil {
		response["database"] = "error: " + err.Error()
		respondWithJSON(w, http.StatusOK, response)
		return
	}

	response["database"] = "connected"
	response["tables"] = tables
	respondWithJSON(w, http.StatusOK, response)
}

// Hello handles GET /api/hello
func (h *SystemHandler) Hello(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}
