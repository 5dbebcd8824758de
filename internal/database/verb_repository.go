package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Adefebrian/vocab/pkg/models"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("database: not found")

// VerbRepository handles database operations for verb cards.
type VerbRepository struct {
	db *sqlx.DB
}

// NewVerbRepository creates a new repository instance.
func NewVerbRepository(db *sqlx.DB) *VerbRepository {
	return &VerbRepository{db: db}
}

// GetAll returns all verbs ordered by base form.
func (r *VerbRepository) GetAll() ([]models.VerbEntry, error) {
	var verbs []models.VerbEntry
	err := r.db.Select(&verbs, "SELECT * FROM verbs ORDER BY base")
	if err != nil {
		return nil, fmt.Errorf("failed to get verbs: %w", err)
	}
	return verbs, nil
}

// GetByID returns a verb by ID.
func (r *VerbRepository) GetByID(id int64) (*models.VerbEntry, error) {
	var verb models.VerbEntry
	err := r.db.Get(&verb, r.db.Rebind("SELECT * FROM verbs WHERE id = ?"), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verb by ID: %w", err)
	}
	return &verb, nil
}

// GetByBase returns a verb by its base form. The lookup is
// case-insensitive because bases are stored lower-cased.
func (r *VerbRepository) GetByBase(base string) (*models.VerbEntry, error) {
	var verb models.VerbEntry
	err := r.db.Get(&verb, r.db.Rebind("SELECT * FROM verbs WHERE base = ?"), strings.ToLower(strings.TrimSpace(base)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get verb by base: %w", err)
	}
	return &verb, nil
}

// GetByLevel returns verbs of one difficulty level ordered by base form.
func (r *VerbRepository) GetByLevel(level models.Level) ([]models.VerbEntry, error) {
	var verbs []models.VerbEntry
	err := r.db.Select(&verbs, r.db.Rebind("SELECT * FROM verbs WHERE level = ? ORDER BY base"), level)
	if err != nil {
		return nil, fmt.Errorf("failed to get verbs by level: %w", err)
	}
	return verbs, nil
}

// GetByCategory returns verbs in a category ordered by base form.
func (r *VerbRepository) GetByCategory(category string) ([]models.VerbEntry, error) {
	var verbs []models.VerbEntry
	err := r.db.Select(&verbs, r.db.Rebind("SELECT * FROM verbs WHERE category = ? ORDER BY base"), category)
	if err != nil {
		return nil, fmt.Errorf("failed to get verbs by category: %w", err)
	}
	return verbs, nil
}

// Search returns verbs whose base or meaning contains the pattern.
func (r *VerbRepository) Search(pattern string) ([]models.VerbEntry, error) {
	var verbs []models.VerbEntry
	like := "%" + strings.ToLower(strings.TrimSpace(pattern)) + "%"

	var err error
	if r.db.DriverName() == "postgres" {
		query := `
			SELECT * FROM verbs
			WHERE base ILIKE $1 OR meaning ILIKE $1
			ORDER BY base
		`
		err = r.db.Select(&verbs, query, like)
	} else {
		query := `
			SELECT * FROM verbs
			WHERE LOWER(base) LIKE ? OR LOWER(meaning) LIKE ?
			ORDER BY base
		`
		err = r.db.Select(&verbs, query, like, like)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to search verbs: %w", err)
	}
	return verbs, nil
}

// Create inserts a new verb and fills in its generated fields.
func (r *VerbRepository) Create(verb *models.VerbEntry) error {
	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO verbs (base, past, participle, conjugation_type, level, category, meaning, example)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, updated_at
		`
		return r.db.QueryRow(
			query,
			verb.Base,
			verb.Past,
			verb.Participle,
			verb.Type,
			verb.Level,
			verb.Category,
			verb.Meaning,
			verb.Example,
		).Scan(&verb.ID, &verb.CreatedAt, &verb.UpdatedAt)
	}

	query := `
		INSERT INTO verbs (base, past, participle, conjugation_type, level, category, meaning, example, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`
	result, err := r.db.Exec(
		query,
		verb.Base,
		verb.Past,
		verb.Participle,
		verb.Type,
		verb.Level,
		verb.Category,
		verb.Meaning,
		verb.Example,
	)
	if err != nil {
		return fmt.Errorf("failed to create verb: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	verb.ID = id

	return r.db.QueryRow("SELECT created_at, updated_at FROM verbs WHERE id = ?", verb.ID).
		Scan(&verb.CreatedAt, &verb.UpdatedAt)
}

// Update modifies an existing verb.
func (r *VerbRepository) Update(verb *models.VerbEntry) error {
	if r.db.DriverName() == "postgres" {
		query := `
			UPDATE verbs SET
				base = $1,
				past = $2,
				participle = $3,
				conjugation_type = $4,
				level = $5,
				category = $6,
				meaning = $7,
				example = $8,
				updated_at = NOW()
			WHERE id = $9
			RETURNING updated_at
		`
		return r.db.QueryRow(
			query,
			verb.Base,
			verb.Past,
			verb.Participle,
			verb.Type,
			verb.Level,
			verb.Category,
			verb.Meaning,
			verb.Example,
			verb.ID,
		).Scan(&verb.UpdatedAt)
	}

	query := `
		UPDATE verbs SET
			base = ?,
			past = ?,
			participle = ?,
			conjugation_type = ?,
			level = ?,
			category = ?,
			meaning = ?,
			example = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`
	_, err := r.db.Exec(
		query,
		verb.Base,
		verb.Past,
		verb.Participle,
		verb.Type,
		verb.Level,
		verb.Category,
		verb.Meaning,
		verb.Example,
		verb.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update verb: %w", err)
	}
	return r.db.QueryRow("SELECT updated_at FROM verbs WHERE id = ?", verb.ID).Scan(&verb.UpdatedAt)
}

// Delete removes a verb. Its review state goes with it via the
// foreign-key cascade.
func (r *VerbRepository) Delete(id int64) error {
	_, err := r.db.Exec(r.db.Rebind("DELETE FROM verbs WHERE id = ?"), id)
	if err != nil {
		return fmt.Errorf("failed to delete verb: %w", err)
	}
	return nil
}

// GetRandomExcept returns up to count random verbs excluding the given ID.
// Used to draw quiz distractors.
func (r *VerbRepository) GetRandomExcept(id int64, count int) ([]models.VerbEntry, error) {
	var verbs []models.VerbEntry
	err := r.db.Select(&verbs, r.db.Rebind(`
		SELECT * FROM verbs
		WHERE id != ?
		ORDER BY RANDOM()
		LIMIT ?
	`), id, count)
	if err != nil {
		return nil, fmt.Errorf("failed to get random verbs: %w", err)
	}
	return verbs, nil
}

// Count returns the number of stored verbs.
func (r *VerbRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM verbs"); err != nil {
		return 0, fmt.Errorf("failed to count verbs: %w", err)
	}
	return count, nil
}
