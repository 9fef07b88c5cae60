package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"littleyears/internal/access"
	"littleyears/internal/models"
	"littleyears/internal/repository"
)

var (
	ErrKidNotFound  = errors.New("kid not found")
	ErrInvalidKidID = errors.New("invalid kid id")
)

// Timeline is the assembled result of a timeline request. IncludesPrivate
// reports whether private moments were actually included, not whether they
// were requested.
type Timeline struct {
	Kid             models.Kid
	Moments         []models.Moment
	IncludesPrivate bool
}

// TimelineService assembles per-kid moment timelines under the access policy
type TimelineService struct {
	kidRepo    *repository.KidRepository
	momentRepo *repository.MomentRepository
}

// NewTimelineService creates a new timeline service
func NewTimelineService(kidRepo *repository.KidRepository, momentRepo *repository.MomentRepository) *TimelineService {
	return &TimelineService{
		kidRepo:    kidRepo,
		momentRepo: momentRepo,
	}
}

// GetTimeline loads a kid and the moments the caller may see, newest first.
// Returns ErrInvalidKidID for a malformed id and ErrKidNotFound when the kid
// does not exist.
func (s *TimelineService) GetTimeline(kidID string, includePrivate bool, grandparentEmail string) (*Timeline, error) {
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

	query, includesPrivate := access.Decide(kid, includePrivate, grandparentEmail)

	moments, err := s.momentRepo.GetMoments(query)
	if err != nil {
		return nil, fmt.Errorf("failed to load moments: %w", err)
	}

	sortMomentsNewestFirst(moments)

	return &Timeline{
		Kid:             *kid,
		Moments:         moments,
		IncludesPrivate: includesPrivate,
	}, nil
}

// sortMomentsNewestFirst orders by created_at descending. Moments without a
// created_at sort as older than any timestamped moment; the sort is stable
// so repeated calls on unchanged data return the same order.
func sortMomentsNewestFirst(moments []models.Moment) {
	sort.SliceStable(moments, func(i, j int) bool {
		a, b := moments[i].CreatedAt, moments[j].CreatedAt
		if a == nil {
			return false
		}
		if b == nil {
			return true
		}
		return a.After(*b)
	})
}
