package access

import (
	"testing"

	"littleyears/internal/models"
)

func TestDecide(t *testing.T) {
	kid := &models.Kid{
		ID:                  "kid-1",
		Name:                "Ava",
		AllowedGrandparents: []string{"grandma@family.demo", "gramps@family.demo"},
	}

	tests := []struct {
		name             string
		kid              *models.Kid
		includePrivate   bool
		grandparentEmail string
		wantPublicOnly   bool
		wantDisclosed    bool
	}{
		{
			name:             "public only by default",
			kid:              kid,
			includePrivate:   false,
			grandparentEmail: "",
			wantPublicOnly:   true,
			wantDisclosed:    false,
		},
		{
			name:             "public only even for allowed grandparent",
			kid:              kid,
			includePrivate:   false,
			grandparentEmail: "grandma@family.demo",
			wantPublicOnly:   true,
			wantDisclosed:    false,
		},
		{
			name:             "allowed grandparent sees private",
			kid:              kid,
			includePrivate:   true,
			grandparentEmail: "grandma@family.demo",
			wantPublicOnly:   false,
			wantDisclosed:    true,
		},
		{
			name:             "second allowed grandparent sees private",
			kid:              kid,
			includePrivate:   true,
			grandparentEmail: "gramps@family.demo",
			wantPublicOnly:   false,
			wantDisclosed:    true,
		},
		{
			name:             "stranger silently downgraded",
			kid:              kid,
			includePrivate:   true,
			grandparentEmail: "stranger@x.com",
			wantPublicOnly:   true,
			wantDisclosed:    false,
		},
		{
			name:             "empty email never authorizes",
			kid:              kid,
			includePrivate:   true,
			grandparentEmail: "",
			wantPublicOnly:   true,
			wantDisclosed:    false,
		},
		{
			name:             "matching is case-sensitive",
			kid:              kid,
			includePrivate:   true,
			grandparentEmail: "Grandma@family.demo",
			wantPublicOnly:   true,
			wantDisclosed:    false,
		},
		{
			name:             "empty allowed list never authorizes",
			kid:              &models.Kid{ID: "kid-2", Name: "Ben"},
			includePrivate:   true,
			grandparentEmail: "grandma@family.demo",
			wantPublicOnly:   true,
			wantDisclosed:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, disclosed := Decide(tt.kid, tt.includePrivate, tt.grandparentEmail)
			if query.KidID != tt.kid.ID {
				t.Errorf("Decide() query.KidID = %v, want %v", query.KidID, tt.kid.ID)
			}
			if query.PublicOnly != tt.wantPublicOnly {
				t.Errorf("Decide() query.PublicOnly = %v, want %v", query.PublicOnly, tt.wantPublicOnly)
			}
			if disclosed != tt.wantDisclosed {
				t.Errorf("Decide() disclosed = %v, want %v", disclosed, tt.wantDisclosed)
			}
		})
	}
}

func TestDecideIsScopedToKid(t *testing.T) {
	kid := &models.Kid{ID: "kid-9", Name: "Mia", AllowedGrandparents: []string{"g@x"}}

	query, _ := Decide(kid, true, "g@x")
	if query.KidID != "kid-9" {
		t.Errorf("query must stay scoped to the requested kid, got %q", query.KidID)
	}
}
