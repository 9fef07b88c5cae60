package models

import (
	"errors"
	"time"
)

// Kid represents a child profile whose moments are shared with grandparents
type Kid struct {
	ID          string
	Name        string
	Nickname    string
	Birthdate   string // ISO date, optional
	AvatarURL   string
	ParentEmail string
	// Emails granted private-viewing access. May be empty; duplicates are
	// harmless and consumers must not assume uniqueness.
	AllowedGrandparents []string
	CreatedAt           time.Time
}

// Validate checks the required kid fields
func (k *Kid) Validate() error {
	if k.Name == "" {
		return errors.New("kid name is required")
	}
	if k.ParentEmail == "" {
		return errors.New("parent email is required")
	}
	return nil
}

// AllowsGrandparent reports whether email is on the allowed list.
// Matching is exact-string and case-sensitive; an empty email never matches.
func (k *Kid) AllowsGrandparent(email string) bool {
	if email == "" {
		return false
	}
	for _, allowed := range k.AllowedGrandparents {
		if allowed == email {
			return true
		}
	}
	return false
}
