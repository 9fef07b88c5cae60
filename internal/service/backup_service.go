package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"littleyears/internal/access"
	"littleyears/internal/database"
	"littleyears/internal/models"
	"littleyears/internal/repository"
)

// BackupData represents the complete database backup structure
type BackupData struct {
	Version    string         `json:"version"`
	ExportedAt time.Time      `json:"exported_at"`
	Kids       []KidBackup    `json:"kids"`
	Moments    []MomentBackup `json:"moments"`
}

// KidBackup represents a kid record for backup
type KidBackup struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Nickname            string    `json:"nickname,omitempty"`
	Birthdate           string    `json:"birthdate,omitempty"`
	AvatarURL           string    `json:"avatar_url,omitempty"`
	ParentEmail         string    `json:"parent_email"`
	AllowedGrandparents []string  `json:"allowed_grandparents"`
	CreatedAt           time.Time `json:"created_at"`
}

// MomentBackup represents a moment record for backup
type MomentBackup struct {
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

// BackupService exports and imports the full data set as JSON
type BackupService struct {
	db         *database.DB
	kidRepo    *repository.KidRepository
	momentRepo *repository.MomentRepository
}

// NewBackupService creates a new backup service
func NewBackupService(db *database.DB, kidRepo *repository.KidRepository, momentRepo *repository.MomentRepository) *BackupService {
	return &BackupService{
		db:         db,
		kidRepo:    kidRepo,
		momentRepo: momentRepo,
	}
}

// Export collects every kid and their moments into a backup structure.
// Moments with a dangling kid reference are not exported.
func (s *BackupService) Export() (*BackupData, error) {
	kids, err := s.kidRepo.GetAllKids()
	if err != nil {
		return nil, fmt.Errorf("failed to export kids: %w", err)
	}

	backup := &BackupData{
		Version:    "1",
		ExportedAt: time.Now().UTC(),
	}

	for _, kid := range kids {
		backup.Kids = append(backup.Kids, KidBackup{
			ID:                  kid.ID,
			Name:                kid.Name,
			Nickname:            kid.Nickname,
			Birthdate:           kid.Birthdate,
			AvatarURL:           kid.AvatarURL,
			ParentEmail:         kid.ParentEmail,
			AllowedGrandparents: kid.AllowedGrandparents,
			CreatedAt:           kid.CreatedAt,
		})

		moments, err := s.momentRepo.GetMoments(access.Query{KidID: kid.ID})
		if err != nil {
			return nil, fmt.Errorf("failed to export moments for kid %s: %w", kid.ID, err)
		}
		for _, m := range moments {
			backup.Moments = append(backup.Moments, MomentBackup{
				ID:           m.ID,
				KidID:        m.KidID,
				Type:         m.Type,
				Title:        m.Title,
				Description:  m.Description,
				MediaURL:     m.MediaURL,
				ThumbnailURL: m.ThumbnailURL,
				Visibility:   m.Visibility,
				Tags:         m.Tags,
				CreatedAt:    m.CreatedAt,
			})
		}
	}

	return backup, nil
}

// ExportToFile writes the backup as indented JSON
func (s *BackupService) ExportToFile(path string) error {
	backup, err := s.Export()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal backup: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}

// ImportFromFile restores a backup, preserving record ids and timestamps.
// When clear is true all existing data is removed first.
func (s *BackupService) ImportFromFile(path string, clear bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read backup file: %w", err)
	}

	var backup BackupData
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("failed to parse backup file: %w", err)
	}

	if clear {
		if err := s.clearAll(); err != nil {
			return err
		}
	}

	for _, kb := range backup.Kids {
		kid := &models.Kid{
			ID:                  kb.ID,
			Name:                kb.Name,
			Nickname:            kb.Nickname,
			Birthdate:           kb.Birthdate,
			AvatarURL:           kb.AvatarURL,
			ParentEmail:         kb.ParentEmail,
			AllowedGrandparents: kb.AllowedGrandparents,
			CreatedAt:           kb.CreatedAt,
		}
		if err := kid.Validate(); err != nil {
			return fmt.Errorf("invalid kid in backup: %w", err)
		}
		if err := s.kidRepo.CreateKid(kid); err != nil {
			return err
		}
	}

	for _, mb := range backup.Moments {
		moment := &models.Moment{
			ID:           mb.ID,
			KidID:        mb.KidID,
			Type:         mb.Type,
			Title:        mb.Title,
			Description:  mb.Description,
			MediaURL:     mb.MediaURL,
			ThumbnailURL: mb.ThumbnailURL,
			Visibility:   mb.Visibility,
			Tags:         mb.Tags,
			CreatedAt:    mb.CreatedAt,
		}
		moment.ApplyDefaults()
		if err := moment.Validate(); err != nil {
			return fmt.Errorf("invalid moment in backup: %w", err)
		}
		if err := s.momentRepo.CreateMoment(moment); err != nil {
			return err
		}
	}

	return nil
}

// clearAll deletes every record, children first so the cascades never fire
// against live rows
func (s *BackupService) clearAll() error {
	for _, table := range []string{"moment_tags", "moments", "kid_grandparents", "kids"} {
		if _, err := s.db.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}
