package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"littleyears/internal/access"
	"littleyears/internal/database"
	"littleyears/internal/models"
)

// MomentRepository handles database operations for moments
type MomentRepository struct {
	db *database.DB
}

// NewMomentRepository creates a new moment repository
func NewMomentRepository(db *database.DB) *MomentRepository {
	return &MomentRepository{db: db}
}

// CreateMoment persists a new moment and its tags. The moment's ID is
// assigned here, and CreatedAt is stamped with the insertion time unless
// the caller already set one.
func (r *MomentRepository) CreateMoment(moment *models.Moment) error {
	if moment.ID == "" {
		moment.ID = uuid.New().String()
	}
	if moment.CreatedAt == nil {
		now := time.Now().UTC()
		moment.CreatedAt = &now
	}

	query := `
		INSERT INTO moments (id, kid_id, type, title, description, media_url, thumbnail_url, visibility, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		moment.ID, moment.KidID, moment.Type, moment.Title, moment.Description,
		moment.MediaURL, moment.ThumbnailURL, moment.Visibility, *moment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create moment: %w", err)
	}

	for _, tag := range moment.Tags {
		if _, err := r.db.Exec("INSERT INTO moment_tags (moment_id, tag) VALUES (?, ?)", moment.ID, tag); err != nil {
			return fmt.Errorf("failed to tag moment: %w", err)
		}
	}

	return nil
}

// GetMoments retrieves the moments selected by an access query, with tags
// attached. Rows come back in insertion-id order; callers needing timeline
// order sort on created_at themselves.
func (r *MomentRepository) GetMoments(q access.Query) ([]models.Moment, error) {
	query := `
		SELECT id, kid_id, type, title, description, media_url, thumbnail_url, visibility, created_at
		FROM moments
		WHERE kid_id = ?
	`
	args := []interface{}{q.KidID}
	if q.PublicOnly {
		query += " AND visibility = ?"
		args = append(args, models.VisibilityPublic)
	}
	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query moments: %w", err)
	}
	defer rows.Close()

	var moments []models.Moment
	for rows.Next() {
		var m models.Moment
		var description, mediaURL, thumbnailURL sql.NullString
		var createdAt sql.NullTime
		if err := rows.Scan(&m.ID, &m.KidID, &m.Type, &m.Title, &description,
			&mediaURL, &thumbnailURL, &m.Visibility, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan moment: %w", err)
		}
		m.Description = description.String
		m.MediaURL = mediaURL.String
		m.ThumbnailURL = thumbnailURL.String
		if createdAt.Valid {
			t := createdAt.Time
			m.CreatedAt = &t
		}
		moments = append(moments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate moments: %w", err)
	}

	if err := r.attachTags(q.KidID, moments); err != nil {
		return nil, err
	}
	return moments, nil
}

// DeleteMomentsByKidIDs removes all moments (and, by cascade, their tags)
// belonging to the given kids
func (r *MomentRepository) DeleteMomentsByKidIDs(kidIDs []string) error {
	for _, kidID := range kidIDs {
		if _, err := r.db.Exec("DELETE FROM moments WHERE kid_id = ?", kidID); err != nil {
			return fmt.Errorf("failed to delete moments for kid %s: %w", kidID, err)
		}
	}
	return nil
}

// attachTags loads every tag for the kid's moments in one query and
// distributes them onto the fetched records
func (r *MomentRepository) attachTags(kidID string, moments []models.Moment) error {
	if len(moments) == 0 {
		return nil
	}

	query := `
		SELECT moment_id, tag FROM moment_tags
		WHERE moment_id IN (SELECT id FROM moments WHERE kid_id = ?)
		ORDER BY moment_id, tag
	`
	rows, err := r.db.Query(query, kidID)
	if err != nil {
		return fmt.Errorf("failed to query moment tags: %w", err)
	}
	defer rows.Close()

	tagsByMoment := make(map[string][]string)
	for rows.Next() {
		var momentID, tag string
		if err := rows.Scan(&momentID, &tag); err != nil {
			return fmt.Errorf("failed to scan moment tag: %w", err)
		}
		tagsByMoment[momentID] = append(tagsByMoment[momentID], tag)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate moment tags: %w", err)
	}

	for i := range moments {
		moments[i].Tags = tagsByMoment[moments[i].ID]
	}
	return nil
}
