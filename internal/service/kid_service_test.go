package service

import (
	"context"
	"errors"
	"testing"
)

// disabledEmailService returns an email service that skips every send
func disabledEmailService(t *testing.T) *EmailService {
	t.Helper()
	svc, err := NewEmailService("", "", "", "")
	if err != nil {
		t.Fatalf("failed to create disabled email service: %v", err)
	}
	if svc.IsEnabled() {
		t.Fatal("email service without a from address must be disabled")
	}
	return svc
}

func TestListKids(t *testing.T) {
	_, kidRepo, momentRepo := setupTestDB(t)
	seedDemo(t, kidRepo, momentRepo)
	svc := NewKidService(kidRepo, disabledEmailService(t))

	t.Run("no filter returns all kids", func(t *testing.T) {
		kids, err := svc.ListKids("")
		if err != nil {
			t.Fatalf("ListKids() error = %v", err)
		}
		if len(kids) != 1 || kids[0].Name != "Ava" {
			t.Errorf("ListKids() = %v, want the demo kid", kids)
		}
	})

	t.Run("filter by allowed grandparent", func(t *testing.T) {
		kids, err := svc.ListKids("grandma@family.demo")
		if err != nil {
			t.Fatalf("ListKids() error = %v", err)
		}
		if len(kids) != 1 {
			t.Errorf("got %d kids, want 1", len(kids))
		}
	})

	t.Run("filter by unknown grandparent", func(t *testing.T) {
		kids, err := svc.ListKids("stranger@x.com")
		if err != nil {
			t.Fatalf("ListKids() error = %v", err)
		}
		if len(kids) != 0 {
			t.Errorf("got %d kids, want 0", len(kids))
		}
	})
}

func TestGrantGrandparentAccess(t *testing.T) {
	_, kidRepo, momentRepo := setupTestDB(t)
	kidID := seedDemo(t, kidRepo, momentRepo)
	svc := NewKidService(kidRepo, disabledEmailService(t))
	ctx := context.Background()

	t.Run("grant enables private viewing", func(t *testing.T) {
		kid, err := svc.GrantGrandparentAccess(ctx, kidID, "gramps@family.demo")
		if err != nil {
			t.Fatalf("GrantGrandparentAccess() error = %v", err)
		}
		if !kid.AllowsGrandparent("gramps@family.demo") {
			t.Errorf("allowed list %v missing new grandparent", kid.AllowedGrandparents)
		}

		timeline, err := NewTimelineService(kidRepo, momentRepo).GetTimeline(kidID, true, "gramps@family.demo")
		if err != nil {
			t.Fatalf("GetTimeline() error = %v", err)
		}
		if !timeline.IncludesPrivate || len(timeline.Moments) != 3 {
			t.Errorf("granted grandparent got %d moments, includes_private=%v; want 3, true",
				len(timeline.Moments), timeline.IncludesPrivate)
		}
	})

	t.Run("repeated grant is a no-op", func(t *testing.T) {
		if _, err := svc.GrantGrandparentAccess(ctx, kidID, "gramps@family.demo"); err != nil {
			t.Fatalf("GrantGrandparentAccess() error = %v", err)
		}
		kid, err := kidRepo.GetKidByID(kidID)
		if err != nil {
			t.Fatalf("failed to reload kid: %v", err)
		}
		count := 0
		for _, email := range kid.AllowedGrandparents {
			if email == "gramps@family.demo" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("grandparent stored %d times, want 1", count)
		}
	})

	t.Run("empty email rejected", func(t *testing.T) {
		_, err := svc.GrantGrandparentAccess(ctx, kidID, "")
		if !errors.Is(err, ErrEmailRequired) {
			t.Errorf("error = %v, want ErrEmailRequired", err)
		}
	})

	t.Run("malformed kid id rejected", func(t *testing.T) {
		_, err := svc.GrantGrandparentAccess(ctx, "nope", "g@x")
		if !errors.Is(err, ErrInvalidKidID) {
			t.Errorf("error = %v, want ErrInvalidKidID", err)
		}
	})

	t.Run("absent kid rejected", func(t *testing.T) {
		_, err := svc.GrantGrandparentAccess(ctx, "2f4cebc2-9adf-4f1a-9a5d-2e5d41d7f000", "g@x")
		if !errors.Is(err, ErrKidNotFound) {
			t.Errorf("error = %v, want ErrKidNotFound", err)
		}
	})
}
