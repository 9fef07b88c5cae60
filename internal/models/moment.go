package models

import (
	"fmt"
	"time"
)

// Moment types
const (
	MomentTypePhoto = "photo"
	MomentTypeArt   = "art"
	MomentTypeAudio = "audio"
	MomentTypeVideo = "video"
	MomentTypeNote  = "note"
)

// Visibility values
const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

// Moment represents a single shareable record (photo/art/audio/video/note)
// belonging to one kid
type Moment struct {
	ID           string
	KidID        string
	Type         string
	Title        string
	Description  string
	MediaURL     string
	ThumbnailURL string
	Visibility   string
	Tags         []string
	// Assigned at insert time; may be nil for records created outside the
	// normal path, which the timeline must tolerate
	CreatedAt *time.Time
}

// ApplyDefaults fills the type and visibility when unset
func (m *Moment) ApplyDefaults() {
	if m.Type == "" {
		m.Type = MomentTypePhoto
	}
	if m.Visibility == "" {
		m.Visibility = VisibilityPublic
	}
}

// Validate checks the required moment fields and enumerations
func (m *Moment) Validate() error {
	if m.KidID == "" {
		return fmt.Errorf("moment kid_id is required")
	}
	if m.Title == "" {
		return fmt.Errorf("moment title is required")
	}
	switch m.Type {
	case MomentTypePhoto, MomentTypeArt, MomentTypeAudio, MomentTypeVideo, MomentTypeNote:
	default:
		return fmt.Errorf("invalid moment type: %s", m.Type)
	}
	switch m.Visibility {
	case VisibilityPublic, VisibilityPrivate:
	default:
		return fmt.Errorf("invalid moment visibility: %s", m.Visibility)
	}
	return nil
}
