package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Adefebrian/vocab/pkg/models"
)

// StatisticsRepository computes summary numbers over the whole collection.
type StatisticsRepository struct {
	db *sqlx.DB
}

// NewStatisticsRepository creates a new repository instance.
func NewStatisticsRepository(db *sqlx.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

// Collect gathers collection and review statistics as of now.
func (r *StatisticsRepository) Collect(ctx context.Context, now time.Time) (*models.Statistics, error) {
	stats := &models.Statistics{}

	err := r.db.GetContext(ctx, &stats.TotalVerbs, "SELECT COUNT(*) FROM verbs")
	if err != nil {
		return nil, fmt.Errorf("failed to count verbs: %w", err)
	}

	err = r.db.GetContext(ctx, &stats.IrregularVerbs,
		r.db.Rebind("SELECT COUNT(*) FROM verbs WHERE conjugation_type = ?"), models.Irregular)
	if err != nil {
		return nil, fmt.Errorf("failed to count irregular verbs: %w", err)
	}
	stats.RegularVerbs = stats.TotalVerbs - stats.IrregularVerbs

	err = r.db.SelectContext(ctx, &stats.ByLevel, `
		SELECT level, COUNT(*) AS count
		FROM verbs
		GROUP BY level
		ORDER BY level
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to count verbs by level: %w", err)
	}

	err = r.db.GetContext(ctx, &stats.ReviewedVerbs,
		"SELECT COUNT(*) FROM review_states WHERE last_reviewed_at IS NOT NULL")
	if err != nil {
		return nil, fmt.Errorf("failed to count reviewed verbs: %w", err)
	}

	err = r.db.GetContext(ctx, &stats.DueVerbs, r.db.Rebind(`
		SELECT COUNT(*) FROM review_states
		WHERE last_reviewed_at IS NULL OR next_due_at <= ?
	`), now)
	if err != nil {
		return nil, fmt.Errorf("failed to count due verbs: %w", err)
	}

	err = r.db.GetContext(ctx, &stats.TotalCorrect,
		"SELECT COALESCE(SUM(correct_count), 0) FROM review_states")
	if err != nil {
		return nil, fmt.Errorf("failed to sum correct answers: %w", err)
	}

	err = r.db.GetContext(ctx, &stats.TotalIncorrect,
		"SELECT COALESCE(SUM(incorrect_count), 0) FROM review_states")
	if err != nil {
		return nil, fmt.Errorf("failed to sum incorrect answers: %w", err)
	}

	err = r.db.GetContext(ctx, &stats.QuizzesTaken, "SELECT COUNT(*) FROM quiz_results")
	if err != nil {
		return nil, fmt.Errorf("failed to count quizzes: %w", err)
	}

	return stats, nil
}
