package models

import (
	"fmt"
	"time"
)

// ConjugationType tells how a verb's past forms were obtained.
type ConjugationType string

const (
	// Irregular verbs take their past forms from the lookup table.
	Irregular ConjugationType = "irregular"
	// Regular verbs derive both past forms from the base by suffix rules.
	Regular ConjugationType = "regular"
)

// Valid reports whether t is a known conjugation type.
func (t ConjugationType) Valid() bool {
	return t == Irregular || t == Regular
}

// Level is the difficulty tier assigned to a verb.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	return l == Beginner || l == Intermediate || l == Advanced
}

// ParseLevel converts a stored or user-supplied string into a Level.
func ParseLevel(s string) (Level, error) {
	l := Level(s)
	if !l.Valid() {
		return "", fmt.Errorf("unknown level %q", s)
	}
	return l, nil
}

// VerbForms is the result of conjugating a single base verb.
type VerbForms struct {
	Base       string          `json:"base"`
	Past       string          `json:"past"`
	Participle string          `json:"participle"`
	Type       ConjugationType `json:"type"`
}

// VerbEntry is a stored verb card: the three forms plus learning metadata.
// Base is the lowercase infinitive and is unique within the collection.
// For regular verbs Past and Participle are always identical.
type VerbEntry struct {
	ID         int64           `json:"id" db:"id"`
	Base       string          `json:"base" db:"base"`
	Past       string          `json:"past" db:"past"`
	Participle string          `json:"participle" db:"participle"`
	Type       ConjugationType `json:"type" db:"conjugation_type"`
	Level      Level           `json:"level" db:"level"`
	Category   string          `json:"category" db:"category"`
	Meaning    string          `json:"meaning" db:"meaning"` // Indonesian meaning
	Example    string          `json:"example" db:"example"` // Example sentence
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}

// Forms returns the conjugation record embedded in the entry.
func (v VerbEntry) Forms() VerbForms {
	return VerbForms{
		Base:       v.Base,
		Past:       v.Past,
		Participle: v.Participle,
		Type:       v.Type,
	}
}
