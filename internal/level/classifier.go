package level

import (
	"sort"
	"strings"

	"github.com/Adefebrian/vocab/pkg/models"
)

// Score thresholds for the frequency table. Scores at or above
// beginnerScore are everyday words; below intermediateScore they are rare
// enough to count as advanced.
const (
	beginnerScore     = 50
	intermediateScore = 20
)

// longWordLen is the length above which the -ize/-ify/-ate suffixes mark
// a word as advanced.
const longWordLen = 12

// rule is one step of the classification chain. It returns the level and
// true when it can decide, or passes the word on with false.
type rule func(word string) (models.Level, bool)

// Config carries the static data a Classifier is built from.
type Config struct {
	// Frequency maps words to commonness scores, higher meaning more
	// common. Nil selects the built-in table.
	Frequency map[string]int
}

// Classifier assigns a difficulty level to a verb.
//
// The rules run in a fixed order and the first one that decides wins:
// frequency-table lookup, then root matching against the per-level word
// lists, then morphology, then string length. The later rules only ever
// see words the earlier rules passed on.
type Classifier struct {
	frequency map[string]int
	lists     []scoredList
	rules     []rule
}

// scoredList is one frequency bracket's word list, derived at construction.
type scoredList struct {
	level models.Level
	words []string
}

// NewClassifier builds a classifier from the given configuration, copying
// the frequency table and deriving the per-level word lists from it.
func NewClassifier(cfg Config) *Classifier {
	if cfg.Frequency == nil {
		cfg.Frequency = DefaultFrequency
	}
	frequency := make(map[string]int, len(cfg.Frequency))
	for word, score := range cfg.Frequency {
		frequency[word] = score
	}
	c := &Classifier{
		frequency: frequency,
		lists:     deriveLists(frequency),
	}
	c.rules = []rule{
		c.byFrequency,
		c.byWordList,
		byMorphology,
	}
	return c
}

// Classify returns the difficulty level for a base verb. The input is
// trimmed and lower-cased first. The function is total: a word no rule
// recognizes falls back to classification by length.
func (c *Classifier) Classify(base string) models.Level {
	word := strings.ToLower(strings.TrimSpace(base))
	for _, apply := range c.rules {
		if lvl, ok := apply(word); ok {
			return lvl
		}
	}
	return byLength(word)
}

// byFrequency looks the word up in the frequency table.
func (c *Classifier) byFrequency(word string) (models.Level, bool) {
	score, ok := c.frequency[word]
	if !ok {
		return "", false
	}
	return scoreLevel(score), true
}

// byWordList matches the word against the derived per-level lists,
// beginner first. A list entry matches when it occurs anywhere inside the
// word, which catches inflected and compound forms of a known root
// ("worked" matches "work"). Words present in the frequency table never
// reach this rule, so only derivative forms are decided here.
func (c *Classifier) byWordList(word string) (models.Level, bool) {
	if word == "" {
		return "", false
	}
	for _, list := range c.lists {
		for _, entry := range list.words {
			if strings.Contains(word, entry) {
				return list.level, true
			}
		}
	}
	return "", false
}

// byMorphology marks words with scholarly prefixes, or long words with
// verb-forming suffixes, as advanced.
func byMorphology(word string) (models.Level, bool) {
	for _, prefix := range complexPrefixes {
		if strings.HasPrefix(word, prefix) {
			return models.Advanced, true
		}
	}
	if len(word) > longWordLen {
		for _, suffix := range complexSuffixes {
			if strings.HasSuffix(word, suffix) {
				return models.Advanced, true
			}
		}
	}
	return "", false
}

// byLength is the final fallback: short words are assumed common.
func byLength(word string) models.Level {
	switch n := len(word); {
	case n <= 4:
		return models.Beginner
	case n <= 8:
		return models.Intermediate
	default:
		return models.Advanced
	}
}

func scoreLevel(score int) models.Level {
	switch {
	case score >= beginnerScore:
		return models.Beginner
	case score >= intermediateScore:
		return models.Intermediate
	default:
		return models.Advanced
	}
}

// deriveLists splits the frequency table into one sorted word list per
// score bracket, ordered beginner, intermediate, advanced.
func deriveLists(frequency map[string]int) []scoredList {
	byLevel := map[models.Level][]string{}
	for word, score := range frequency {
		lvl := scoreLevel(score)
		byLevel[lvl] = append(byLevel[lvl], word)
	}
	lists := make([]scoredList, 0, 3)
	for _, lvl := range []models.Level{models.Beginner, models.Intermediate, models.Advanced} {
		words := byLevel[lvl]
		sort.Strings(words)
		lists = append(lists, scoredList{level: lvl, words: words})
	}
	return lists
}
