package handlers

import (
	"net/http"

	"littleyears/internal/service"
)

// SeedHandler serves the demo-data seeding endpoint
type SeedHandler struct {
	seedService *service.SeedService
}

// NewSeedHandler creates a new seed handler
func NewSeedHandler(seedService *service.SeedService) *SeedHandler {
	return &SeedHandler{seedService: seedService}
}

// Seed handles POST /api/seed
func (h *SeedHandler) Seed(w http.ResponseWriter, r *http.Request) {
	inserted, err := h.seedService.Seed()
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to seed demo data", err)
		return
	}

	respondWithJSON(w, http.StatusOK, SeedResponse{Inserted: inserted})
}
