package service

import (
	"testing"
)

func TestSeedIsIdempotent(t *testing.T) {
	db, kidRepo, momentRepo := setupTestDB(t)
	svc := NewSeedService(kidRepo, momentRepo)

	first, err := svc.Seed()
	if err != nil {
		t.Fatalf("first Seed() error = %v", err)
	}
	second, err := svc.Seed()
	if err != nil {
		t.Fatalf("second Seed() error = %v", err)
	}
	if len(first) != 4 || len(second) != 4 {
		t.Fatalf("Seed() inserted %d then %d ids, want 4 and 4", len(first), len(second))
	}

	var kidCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM kids WHERE name = ?", "Ava").Scan(&kidCount); err != nil {
		t.Fatalf("failed to count kids: %v", err)
	}
	if kidCount != 1 {
		t.Errorf("kid count = %d, want exactly 1", kidCount)
	}

	var momentCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM moments WHERE kid_id = ?", second[0]).Scan(&momentCount); err != nil {
		t.Fatalf("failed to count moments: %v", err)
	}
	if momentCount != 3 {
		t.Errorf("moment count = %d, want exactly 3", momentCount)
	}

	// Moments of the first seeding round must be gone entirely
	var stale int
	if err := db.QueryRow("SELECT COUNT(*) FROM moments WHERE kid_id = ?", first[0]).Scan(&stale); err != nil {
		t.Fatalf("failed to count stale moments: %v", err)
	}
	if stale != 0 {
		t.Errorf("stale moment count = %d, want 0", stale)
	}
}

func TestSeedFixtureShape(t *testing.T) {
	_, kidRepo, momentRepo := setupTestDB(t)
	kidID := seedDemo(t, kidRepo, momentRepo)

	kid, err := kidRepo.GetKidByID(kidID)
	if err != nil {
		t.Fatalf("failed to load kid: %v", err)
	}
	if kid == nil {
		t.Fatal("seeded kid not found")
	}
	if kid.Name != "Ava" {
		t.Errorf("kid name = %q, want Ava", kid.Name)
	}
	if !kid.AllowsGrandparent("grandma@family.demo") {
		t.Errorf("allowed grandparents = %v, want grandma@family.demo", kid.AllowedGrandparents)
	}

	svc := NewTimelineService(kidRepo, momentRepo)
	timeline, err := svc.GetTimeline(kidID, true, "grandma@family.demo")
	if err != nil {
		t.Fatalf("GetTimeline() error = %v", err)
	}

	byType := make(map[string]string)
	for _, m := range timeline.Moments {
		byType[m.Type] = m.Visibility
	}
	if byType["photo"] != "public" {
		t.Errorf("photo visibility = %q, want public", byType["photo"])
	}
	if byType["art"] != "private" {
		t.Errorf("art visibility = %q, want private", byType["art"])
	}
	if byType["audio"] != "public" {
		t.Errorf("audio visibility = %q, want public", byType["audio"])
	}
}
