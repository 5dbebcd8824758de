package models

import "time"

// ReviewState tracks one verb's spaced-repetition history.
// Ease stays within [1.3, 2.5]; NextDueAt is derived from Ease after
// every recorded answer. A state with LastReviewedAt == nil has never
// been reviewed and is always considered due.
type ReviewState struct {
	ItemID         int64      `json:"item_id" db:"item_id"`
	CorrectCount   int        `json:"correct_count" db:"correct_count"`
	IncorrectCount int        `json:"incorrect_count" db:"incorrect_count"`
	Ease           float64    `json:"ease" db:"ease"`
	LastReviewedAt *time.Time `json:"last_reviewed_at" db:"last_reviewed_at"`
	NextDueAt      time.Time  `json:"next_due_at" db:"next_due_at"`
}

// Reviewed reports whether the item has been answered at least once.
func (s ReviewState) Reviewed() bool {
	return s.LastReviewedAt != nil
}

// TotalReviews is the number of answers recorded for the item.
func (s ReviewState) TotalReviews() int {
	return s.CorrectCount + s.IncorrectCount
}

// Accuracy returns the share of correct answers, or 0 for an unreviewed item.
func (s ReviewState) Accuracy() float64 {
	total := s.TotalReviews()
	if total == 0 {
		return 0
	}
	return float64(s.CorrectCount) / float64(total)
}
