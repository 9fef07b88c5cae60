package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"littleyears/internal/models"
	"littleyears/internal/repository"
)

var ErrEmailRequired = errors.New("grandparent email is required")

// KidService handles kid listing and grandparent access grants
type KidService struct {
	kidRepo      *repository.KidRepository
	emailService *EmailService
}

// NewKidService creates a new kid service
func NewKidService(kidRepo *repository.KidRepository, emailService *EmailService) *KidService {
	return &KidService{
		kidRepo:      kidRepo,
		emailService: emailService,
	}
}

// ListKids returns all kids, or only the kids whose allowed list contains
// grandparentEmail when it is non-empty
func (s *KidService) ListKids(grandparentEmail string) ([]models.Kid, error) {
	if grandparentEmail != "" {
		kids, err := s.kidRepo.GetKidsByGrandparent(grandparentEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to list kids for grandparent: %w", err)
		}
		return kids, nil
	}

	kids, err := s.kidRepo.GetAllKids()
	if err != nil {
		return nil, fmt.Errorf("failed to list kids: %w", err)
	}
	return kids, nil
}

// GrantGrandparentAccess puts an email on a kid's allowed list and sends a
// best-effort invitation email. A failed or disabled email send never fails
// the grant.
func (s *KidService) GrantGrandparentAccess(ctx context.Context, kidID, email string) (*models.Kid, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if _, err := uuid.Parse(kidID); err != nil {
		return nil, ErrInvalidKidID
	}

	kid, err := s.kidRepo.GetKidByID(kidID)
	if err != nil {
		return nil, fmt.Errorf("failed to load kid: %w", err)
	}
	if kid == nil {
		return nil, ErrKidNotFound
	}

	if err := s.kidRepo.AddGrandparent(kid.ID, email); err != nil {
		return nil, err
	}

	if !kid.AllowsGrandparent(email) {
		kid.AllowedGrandparents = append(kid.AllowedGrandparents, email)
	}

	if err := s.emailService.SendGrandparentInvite(ctx, email, kid.Name); err != nil {
		slog.Warn("Failed to send grandparent invitation", "kid", kid.ID, "email", email, "error", err)
	}

	return kid, nil
}
