package service

import (
	"fmt"
	"log/slog"

	"littleyears/internal/models"
	"littleyears/internal/repository"
)

// demoKidName identifies the demo records; re-seeding removes them first
const demoKidName = "Ava"

// SeedService loads the demo fixture: one kid with one allowed grandparent
// and three moments (public photo, private art, public audio)
type SeedService struct {
	kidRepo    *repository.KidRepository
	momentRepo *repository.MomentRepository
}

// NewSeedService creates a new seed service
func NewSeedService(kidRepo *repository.KidRepository, momentRepo *repository.MomentRepository) *SeedService {
	return &SeedService{
		kidRepo:    kidRepo,
		momentRepo: momentRepo,
	}
}

// Seed inserts the demo data and returns the inserted ids, kid first.
// Idempotent: prior demo records are deleted, so calling twice leaves
// exactly one demo kid and exactly three of her moments. Not safe to run
// concurrently with itself.
func (s *SeedService) Seed() ([]string, error) {
	oldKidIDs, err := s.kidRepo.DeleteKidsByName(demoKidName)
	if err != nil {
		return nil, fmt.Errorf("failed to clear demo kids: %w", err)
	}
	if err := s.momentRepo.DeleteMomentsByKidIDs(oldKidIDs); err != nil {
		return nil, fmt.Errorf("failed to clear demo moments: %w", err)
	}

	kid := &models.Kid{
		Name:                demoKidName,
		Nickname:            "Aves",
		AvatarURL:           "https://images.unsplash.com/photo-1503454537195-1dcabb73ffb9?w=640",
		ParentEmail:         "parent@littleyears.demo",
		AllowedGrandparents: []string{"grandma@family.demo"},
	}
	if err := s.kidRepo.CreateKid(kid); err != nil {
		return nil, err
	}
	inserted := []string{kid.ID}

	moments := []*models.Moment{
		{
			KidID:        kid.ID,
			Type:         models.MomentTypePhoto,
			Title:        "First bike ride!",
			Description:  "Sunset cruise in the park",
			MediaURL:     "https://images.unsplash.com/photo-1492724441997-5dc865305da7?w=1200",
			ThumbnailURL: "https://images.unsplash.com/photo-1492724441997-5dc865305da7?w=400",
			Visibility:   models.VisibilityPublic,
			Tags:         []string{"milestone", "outdoors"},
		},
		{
			KidID:        kid.ID,
			Type:         models.MomentTypeArt,
			Title:        "Finger painting",
			Description:  "Blue and yellow masterpiece",
			MediaURL:     "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=1200",
			ThumbnailURL: "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=400",
			Visibility:   models.VisibilityPrivate,
			Tags:         []string{"art", "home"},
		},
		{
			KidID:       kid.ID,
			Type:        models.MomentTypeAudio,
			Title:       "Goodnight message",
			Description: "Ava says goodnight to Grandma",
			MediaURL:    "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
			Visibility:  models.VisibilityPublic,
			Tags:        []string{"voice"},
		},
	}

	for _, moment := range moments {
		moment.ApplyDefaults()
		if err := moment.Validate(); err != nil {
			return nil, fmt.Errorf("invalid demo moment: %w", err)
		}
		if err := s.momentRepo.CreateMoment(moment); err != nil {
			return nil, err
		}
		inserted = append(inserted, moment.ID)
	}

	slog.Info("Demo data seeded", "kid", kid.ID, "moments", len(moments))
	return inserted, nil
}
