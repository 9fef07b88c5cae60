package handlers

import (
	"time"

	"littleyears/internal/models"
	"littleyears/internal/service"
)

// Wire shapes use snake_case field names; storage identifiers always cross
// the boundary as a plain "id" string.

// KidResponse is the public representation of a kid
type KidResponse struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Nickname            string    `json:"nickname,omitempty"`
	Birthdate           string    `json:"birthdate,omitempty"`
	AvatarURL           string    `json:"avatar_url,omitempty"`
	ParentEmail         string    `json:"parent_email"`
	AllowedGrandparents []string  `json:"allowed_grandparents"`
	CreatedAt           time.Time `json:"created_at"`
}

// MomentResponse is the public representation of a moment
type MomentResponse struct {
	ID           string     `json:"id"`
	KidID        string     `json:"kid_id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	MediaURL     string     `json:"media_url,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Visibility   string     `json:"visibility"`
	Tags         []string   `json:"tags"`
	CreatedAt    *time.Time `json:"created_at,omitempty"`
}

// TimelineResponse is the timeline endpoint payload
type TimelineResponse struct {
	Kid             KidResponse      `json:"kid"`
	Moments         []MomentResponse `json:"moments"`
	IncludesPrivate bool             `json:"includes_private"`
}

// SeedResponse reports the ids inserted by the demo seeder
type SeedResponse struct {
	Inserted []string `json:"inserted"`
}

// GrantAccessRequest is the body for granting a grandparent access
type GrantAccessRequest struct {
	Email string `json:"email"`
}

func newKidResponse(kid models.Kid) KidResponse {
	allowed := kid.AllowedGrandparents
	if allowed == nil {
		allowed = []string{}
	}
	return KidResponse{
		ID:                  kid.ID,
		Name:                kid.Name,
		Nickname:            kid.Nickname,
		Birthdate:           kid.Birthdate,
		AvatarURL:           kid.AvatarURL,
		ParentEmail:         kid.ParentEmail,
		AllowedGrandparents: allowed,
		CreatedAt:           kid.CreatedAt,
	}
}

func newMomentResponse(moment models.Moment) MomentResponse {
	tags := moment.Tags
	if tags == nil {
		tags = []string{}
	}
	return MomentResponse{
		ID:           moment.ID,
		KidID:        moment.KidID,
		Type:         moment.Type,
		Title:        moment.Title,
		Description:  moment.Description,
		MediaURL:     moment.MediaURL,
		ThumbnailURL: moment.ThumbnailURL,
		Visibility:   moment.Visibility,
		Tags:         tags,
		CreatedAt:    moment.CreatedAt,
	}
}

func newTimelineResponse(timeline *service.Timeline) TimelineResponse {
	moments := make([]MomentResponse, 0, len(timeline.Moments))
	for _, m := range timeline.Moments {
		moments = append(moments, newMomentResponse(m))
	}
	return TimelineResponse{
		Kid:             newKidResponse(timeline.Kid),
		Moments:         moments,
		IncludesPrivate: timeline.IncludesPrivate,
	}
}
