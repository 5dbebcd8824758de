package spaced_repetition

import (
	"math"
	"sort"
	"time"

	"github.com/Adefebrian/vocab/pkg/models"
)

const (
	// DefaultEase is the ease factor assigned to a freshly tracked item.
	DefaultEase = 2.5
	// MinEase is the floor the ease factor never drops below.
	MinEase = 1.3
	// MaxEase is the ceiling the ease factor never rises above.
	MaxEase = 2.5

	// Reward and penalty applied to the ease factor per answer.
	easeReward  = 0.1
	easePenalty = 0.2
)

// NewState returns the tracking record for a newly added item.
// The item starts at the default ease and is immediately due.
func NewState(itemID int64, now time.Time) models.ReviewState {
	return models.ReviewState{
		ItemID:    itemID,
		Ease:      DefaultEase,
		NextDueAt: now,
	}
}

// RecordOutcome folds one quiz answer into the state and returns the
// updated copy; the input is left untouched. A correct answer raises the
// ease by 0.1, an incorrect one lowers it by 0.2, and the result is
// clamped to [MinEase, MaxEase] on every call so an out-of-range stored
// value heals itself on the next update.
func RecordOutcome(state models.ReviewState, correct bool, now time.Time) models.ReviewState {
	if correct {
		state.CorrectCount++
		state.Ease += easeReward
	} else {
		state.IncorrectCount++
		state.Ease -= easePenalty
	}
	state.Ease = clampEase(state.Ease)

	reviewedAt := now
	state.LastReviewedAt = &reviewedAt
	state.NextDueAt = now.AddDate(0, 0, IntervalDays(state.Ease))
	return state
}

// IntervalDays converts an ease factor into the whole number of days
// until the next review. With ease confined to [1.3, 2.5] the result is
// always 2 or 3.
func IntervalDays(ease float64) int {
	return int(math.Ceil(clampEase(ease)))
}

// Due reports whether the item should be reviewed at the given time.
// An item that has never been reviewed is always due.
func Due(state models.ReviewState, now time.Time) bool {
	if !state.Reviewed() {
		return true
	}
	return !state.NextDueAt.After(now)
}

// DueItems filters states down to the ones due at now and orders them for
// review: never-reviewed items first, then the hardest (lowest ease), then
// the longest overdue. Item ID breaks any remaining ties so the order is
// stable across runs.
func DueItems(states []models.ReviewState, now time.Time) []models.ReviewState {
	var due []models.ReviewState
	for _, s := range states {
		if Due(s, now) {
			due = append(due, s)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		a, b := due[i], due[j]
		if a.Reviewed() != b.Reviewed() {
			return !a.Reviewed()
		}
		if a.Ease != b.Ease {
			return a.Ease < b.Ease
		}
		if !a.NextDueAt.Equal(b.NextDueAt) {
			return a.NextDueAt.Before(b.NextDueAt)
		}
		return a.ItemID < b.ItemID
	})

	return due
}

func clampEase(ease float64) float64 {
	if ease < MinEase {
		return MinEase
	}
	if ease > MaxEase {
		return MaxEase
	}
	return ease
}
