package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"littleyears/internal/database"
	"littleyears/internal/models"
)

// KidRepository handles database operations for kids and their
// allowed-grandparent lists
type KidRepository struct {
	db *database.DB
}

// NewKidRepository creates a new kid repository
func NewKidRepository(db *database.DB) *KidRepository {
	return &KidRepository{db: db}
}

// CreateKid persists a new kid and its allowed-grandparent list. The kid's
// ID and CreatedAt are assigned here.
func (r *KidRepository) CreateKid(kid *models.Kid) error {
	if kid.ID == "" {
		kid.ID = uuid.New().String()
	}
	if kid.CreatedAt.IsZero() {
		kid.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO kids (id, name, nickname, birthdate, avatar_url, parent_email, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		kid.ID, kid.Name, kid.Nickname, kid.Birthdate, kid.AvatarURL, kid.ParentEmail, kid.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create kid: %w", err)
	}

	for _, email := range kid.AllowedGrandparents {
		if err := r.insertGrandparent(kid.ID, email); err != nil {
			return err
		}
	}

	return nil
}

// GetKidByID retrieves a kid by ID, with its allowed-grandparent list.
// Returns (nil, nil) when the kid does not exist.
func (r *KidRepository) GetKidByID(kidID string) (*models.Kid, error) {
	query := "SELECT id, name, nickname, birthdate, avatar_url, parent_email, created_at FROM kids WHERE id = ?"
	kid, err := scanKid(r.db.QueryRow(query, kidID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kid: %w", err)
	}

	kid.AllowedGrandparents, err = r.getGrandparents(kid.ID)
	if err != nil {
		return nil, err
	}
	return kid, nil
}

// GetAllKids retrieves every kid
func (r *KidRepository) GetAllKids() ([]models.Kid, error) {
	query := `
		SELECT id, name, nickname, birthdate, avatar_url, parent_email, created_at
		FROM kids
		ORDER BY name, id
	`
	return r.queryKids(query)
}

// GetKidsByGrandparent retrieves the kids whose allowed list contains the
// given email (exact match)
func (r *KidRepository) GetKidsByGrandparent(email string) ([]models.Kid, error) {
	query := `
		SELECT DISTINCT k.id, k.name, k.nickname, k.birthdate, k.avatar_url, k.parent_email, k.created_at
		FROM kids k
		JOIN kid_grandparents g ON g.kid_id = k.id
		WHERE g.email = ?
		ORDER BY k.name, k.id
	`
	return r.queryKids(query, email)
}

// AddGrandparent grants an email private-viewing access to a kid. Granting
// an email that is already on the list is a no-op.
func (r *KidRepository) AddGrandparent(kidID, email string) error {
	var count int
	query := "SELECT COUNT(*) FROM kid_grandparents WHERE kid_id = ? AND email = ?"
	if err := r.db.QueryRow(query, kidID, email).Scan(&count); err != nil {
		return fmt.Errorf("failed to check grandparent access: %w", err)
	}
	if count > 0 {
		return nil
	}
	return r.insertGrandparent(kidID, email)
}

// DeleteKidsByName removes every kid with the given name and returns their
// ids. Grandparent links are removed by cascade; the caller is responsible
// for the kids' moments.
func (r *KidRepository) DeleteKidsByName(name string) ([]string, error) {
	rows, err := r.db.Query("SELECT id FROM kids WHERE name = ?", name)
	if err != nil {
		return nil, fmt.Errorf("failed to find kids by name: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan kid id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kids: %w", err)
	}

	if _, err := r.db.Exec("DELETE FROM kids WHERE name = ?", name); err != nil {
		return nil, fmt.Errorf("failed to delete kids: %w", err)
	}
	return ids, nil
}

func (r *KidRepository) insertGrandparent(kidID, email string) error {
	query := "INSERT INTO kid_grandparents (kid_id, email) VALUES (?, ?)"
	if _, err := r.db.Exec(query, kidID, email); err != nil {
		return fmt.Errorf("failed to add grandparent access: %w", err)
	}
	return nil
}

func (r *KidRepository) getGrandparents(kidID string) ([]string, error) {
	rows, err := r.db.Query("SELECT email FROM kid_grandparents WHERE kid_id = ?", kidID)
	if err != nil {
		return nil, fmt.Errorf("failed to query grandparents: %w", err)
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan grandparent email: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (r *KidRepository) queryKids(query string, args ...interface{}) ([]models.Kid, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query kids: %w", err)
	}
	defer rows.Close()

	var kids []models.Kid
	for rows.Next() {
		kid, err := scanKid(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan kid: %w", err)
		}
		kids = append(kids, *kid)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kids: %w", err)
	}

	for i := range kids {
		kids[i].AllowedGrandparents, err = r.getGrandparents(kids[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return kids, nil
}

// scanner covers both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanKid(s scanner) (*models.Kid, error) {
	var kid models.Kid
	var nickname, birthdate, avatarURL sql.NullString
	var createdAt sql.NullTime
	if err := s.Scan(&kid.ID, &kid.Name, &nickname, &birthdate, &avatarURL, &kid.ParentEmail, &createdAt); err != nil {
		return nil, err
	}
	kid.Nickname = nickname.String
	kid.Birthdate = birthdate.String
	kid.AvatarURL = avatarURL.String
	if createdAt.Valid {
		kid.CreatedAt = createdAt.Time
	}
	return &kid, nil
}
