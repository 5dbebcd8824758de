package database

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Adefebrian/vocab/pkg/models"
)

// ReviewStateRepository handles database operations for review tracking.
type ReviewStateRepository struct {
	db *sqlx.DB
}

// NewReviewStateRepository creates a new repository instance.
func NewReviewStateRepository(db *sqlx.DB) *ReviewStateRepository {
	return &ReviewStateRepository{db: db}
}

// Get returns the review state for one item.
func (r *ReviewStateRepository) Get(itemID int64) (*models.ReviewState, error) {
	var state models.ReviewState
	err := r.db.Get(&state, r.db.Rebind("SELECT * FROM review_states WHERE item_id = ?"), itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review state: %w", err)
	}
	return &state, nil
}

// GetAll returns every stored review state.
func (r *ReviewStateRepository) GetAll() ([]models.ReviewState, error) {
	var states []models.ReviewState
	err := r.db.Select(&states, "SELECT * FROM review_states ORDER BY item_id")
	if err != nil {
		return nil, fmt.Errorf("failed to get review states: %w", err)
	}
	return states, nil
}

// Upsert stores the state, inserting or replacing the row for its item.
func (r *ReviewStateRepository) Upsert(state *models.ReviewState) error {
	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO review_states (item_id, correct_count, incorrect_count, ease, last_reviewed_at, next_due_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (item_id) DO UPDATE SET
				correct_count = EXCLUDED.correct_count,
				incorrect_count = EXCLUDED.incorrect_count,
				ease = EXCLUDED.ease,
				last_reviewed_at = EXCLUDED.last_reviewed_at,
				next_due_at = EXCLUDED.next_due_at
		`
		_, err := r.db.Exec(
			query,
			state.ItemID,
			state.CorrectCount,
			state.IncorrectCount,
			state.Ease,
			state.LastReviewedAt,
			state.NextDueAt,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert review state: %w", err)
		}
		return nil
	}

	query := `
		INSERT INTO review_states (item_id, correct_count, incorrect_count, ease, last_reviewed_at, next_due_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (item_id) DO UPDATE SET
			correct_count = excluded.correct_count,
			incorrect_count = excluded.incorrect_count,
			ease = excluded.ease,
			last_reviewed_at = excluded.last_reviewed_at,
			next_due_at = excluded.next_due_at
	`
	_, err := r.db.Exec(
		query,
		state.ItemID,
		state.CorrectCount,
		state.IncorrectCount,
		state.Ease,
		state.LastReviewedAt,
		state.NextDueAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert review state: %w", err)
	}
	return nil
}

// Due returns the states that are due at the given time. Items that have
// never been reviewed count as due no matter what their next_due_at says.
func (r *ReviewStateRepository) Due(now time.Time) ([]models.ReviewState, error) {
	var states []models.ReviewState
	err := r.db.Select(&states, r.db.Rebind(`
		SELECT * FROM review_states
		WHERE last_reviewed_at IS NULL OR next_due_at <= ?
		ORDER BY item_id
	`), now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due review states: %w", err)
	}
	return states, nil
}

// DueCount returns how many items are due at the given time.
func (r *ReviewStateRepository) DueCount(now time.Time) (int, error) {
	var count int
	err := r.db.Get(&count, r.db.Rebind(`
		SELECT COUNT(*) FROM review_states
		WHERE last_reviewed_at IS NULL OR next_due_at <= ?
	`), now)
	if err != nil {
		return 0, fmt.Errorf("failed to count due review states: %w", err)
	}
	return count, nil
}

// Delete removes the state for one item.
func (r *ReviewStateRepository) Delete(itemID int64) error {
	_, err := r.db.Exec(r.db.Rebind("DELETE FROM review_states WHERE item_id = ?"), itemID)
	if err != nil {
		return fmt.Errorf("failed to delete review state: %w", err)
	}
	return nil
}
