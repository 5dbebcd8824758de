package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Adefebrian/vocab/pkg/models"
)

// QuizResultRepository handles database operations for quiz sessions.
type QuizResultRepository struct {
	db *sqlx.DB
}

// NewQuizResultRepository creates a new repository instance.
func NewQuizResultRepository(db *sqlx.DB) *QuizResultRepository {
	return &QuizResultRepository{db: db}
}

// Create records a finished quiz session.
func (r *QuizResultRepository) Create(result *models.QuizResult) error {
	if r.db.DriverName() == "postgres" {
		query := `
			INSERT INTO quiz_results (kind, total_items, correct_items, duration, taken_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`
		return r.db.QueryRow(
			query,
			result.Kind,
			result.TotalItems,
			result.CorrectItems,
			result.Duration,
			result.TakenAt,
		).Scan(&result.ID)
	}

	query := `
		INSERT INTO quiz_results (kind, total_items, correct_items, duration, taken_at)
		VALUES (?, ?, ?, ?, ?)
	`
	res, err := r.db.Exec(
		query,
		result.Kind,
		result.TotalItems,
		result.CorrectItems,
		result.Duration,
		result.TakenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz result: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	result.ID = id
	return nil
}

// GetRecent returns the latest quiz sessions, newest first.
func (r *QuizResultRepository) GetRecent(limit int) ([]models.QuizResult, error) {
	var results []models.QuizResult
	err := r.db.Select(&results, r.db.Rebind(`
		SELECT * FROM quiz_results
		ORDER BY taken_at DESC, id DESC
		LIMIT ?
	`), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz results: %w", err)
	}
	return results, nil
}

// Count returns the number of recorded quiz sessions.
func (r *QuizResultRepository) Count() (int, error) {
	var count int
	if err := r.db.Get(&count, "SELECT COUNT(*) FROM quiz_results"); err != nil {
		return 0, fmt.Errorf("failed to count quiz results: %w", err)
	}
	return count, nil
}
