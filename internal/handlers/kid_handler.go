package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"littleyears/internal/service"
)

// KidHandler serves the kid listing, timeline, and access-grant endpoints
type KidHandler struct {
	kidService      *service.KidService
	timelineService *service.TimelineService
}

// NewKidHandler creates a new kid handler
func NewKidHandler(kidService *service.KidService, timelineService *service.TimelineService) *KidHandler {
	return &KidHandler{
		kidService:      kidService,
		timelineService: timelineService,
	}
}

// ListKids handles GET /api/kids?grandparent=<email>. Without the query
// parameter every kid is returned.
func (h *KidHandler) ListKids(w http.ResponseWriter, r *http.Request) {
	grandparent := r.URL.Query().Get("grandparent")

	kids, err := h.kidService.ListKids(grandparent)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to list kids", err)
		return
	}

	response := make([]KidResponse, 0, len(kids))
	for _, kid := range kids {
		response = append(response, newKidResponse(kid))
	}
	respondWithJSON(w, http.StatusOK, response)
}

// Timeline handles GET /api/kids/{kidID}/timeline?include_private=&grandparent=
func (h *KidHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	kidID := r.PathValue("kidID")
	grandparent := r.URL.Query().Get("grandparent")

	// Anything unparsable counts as false, like an absent parameter
	includePrivate, _ := strconv.ParseBool(r.URL.Query().Get("include_private"))

	timeline, err := h.timelineService.GetTimeline(kidID, includePrivate, grandparent)
	switch {
	case errors.Is(err, service.ErrInvalidKidID):
		respondWithError(w, http.StatusBadRequest, "Invalid kid id", nil)
		return
	case errors.Is(err, service.ErrKidNotFound):
		respondWithError(w, http.StatusNotFound, "Kid not found", nil)
		return
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, "Failed to load timeline", err)
		return
	}

	respondWithJSON(w, http.StatusOK, newTimelineResponse(timeline))
}

// GrantGrandparent handles POST /api/kids/{kidID}/grandparents with body
// {"email": ...}
func (h *KidHandler) GrantGrandparent(w http.ResponseWriter, r *http.Request) {
	kidID := r.PathValue("kidID")

	var req GrantAccessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	kid, err := h.kidService.GrantGrandparentAccess(r.Context(), kidID, req.Email)
	switch {
	case errors.Is(err, service.ErrEmailRequired):
		respondWithError(w, http.StatusBadRequest, "Grandparent email is required", nil)
		return
	case errors.Is(err, service.ErrInvalidKidID):
		respondWithError(w, http.StatusBadRequest, "Invalid kid id", nil)
		return
	case errors.Is(err, service.ErrKidNotFound):
		respondWithError(w, http.StatusNotFound, "Kid not found", nil)
		return
	case err != nil:
		respondWithError(w, http.StatusInternalServerError, "Failed to grant access", err)
		return
	}

	respondWithJSON(w, http.StatusOK, newKidResponse(*kid))
}
