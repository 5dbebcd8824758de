package models

import "time"

// QuizKind selects which conjugated form a question asks for.
type QuizKind string

const (
	AskPast       QuizKind = "past"
	AskParticiple QuizKind = "participle"
	// Mixed marks a session whose questions alternate between forms.
	Mixed QuizKind = "mixed"
)

// QuizItem is a single multiple-choice question built from a verb card.
// Options always contains the correct form at CorrectIndex; the rest are
// distractors drawn from other verbs in the collection.
type QuizItem struct {
	ID           string   `json:"id" db:"id"`
	VerbID       int64    `json:"verb_id" db:"verb_id"`
	VerbBase     string   `json:"verb_base" db:"verb_base"`
	Kind         QuizKind `json:"kind" db:"kind"`
	Question     string   `json:"question" db:"question"`
	Options      []string `json:"options" db:"-"`
	CorrectIndex int      `json:"correct_index" db:"correct_index"`
}

// Answer returns the correct option text.
func (q QuizItem) Answer() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ""
	}
	return q.Options[q.CorrectIndex]
}

// QuizResult records one finished quiz session.
type QuizResult struct {
	ID           int64     `json:"id" db:"id"`
	Kind         QuizKind  `json:"kind" db:"kind"`
	TotalItems   int       `json:"total_items" db:"total_items"`
	CorrectItems int       `json:"correct_items" db:"correct_items"`
	Duration     int       `json:"duration" db:"duration"` // Duration in seconds
	TakenAt      time.Time `json:"taken_at" db:"taken_at"`
}
