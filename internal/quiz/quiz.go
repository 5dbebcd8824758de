package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/Adefebrian/vocab/internal/database"
	"github.com/Adefebrian/vocab/pkg/models"
)

// DefaultOptions is the number of choices per question.
const DefaultOptions = 4

// Builder assembles multiple-choice questions from the verb collection.
type Builder struct {
	verbs   *database.VerbRepository
	results *database.QuizResultRepository
	rnd     *rand.Rand
	options int
}

// NewBuilder creates a quiz builder. A nil rnd seeds one from the clock;
// optionCount below two selects the default of four choices.
func NewBuilder(verbs *database.VerbRepository, results *database.QuizResultRepository, rnd *rand.Rand, optionCount int) *Builder {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if optionCount < 2 {
		optionCount = DefaultOptions
	}
	return &Builder{
		verbs:   verbs,
		results: results,
		rnd:     rnd,
		options: optionCount,
	}
}

// Build generates up to count questions. An empty kind mixes past and
// participle questions; a concrete kind asks only for that form.
func (b *Builder) Build(count int, kind models.QuizKind) ([]models.QuizItem, error) {
	verbs, err := b.verbs.GetAll()
	if err != nil {
		return nil, err
	}
	if len(verbs) < 2 {
		return nil, fmt.Errorf("need at least two verbs to build a quiz, have %d", len(verbs))
	}

	b.rnd.Shuffle(len(verbs), func(i, j int) {
		verbs[i], verbs[j] = verbs[j], verbs[i]
	})
	if len(verbs) > count {
		verbs = verbs[:count]
	}

	items := make([]models.QuizItem, 0, len(verbs))
	for _, verb := range verbs {
		itemKind := kind
		if itemKind == "" {
			if b.rnd.Intn(2) == 0 {
				itemKind = models.AskPast
			} else {
				itemKind = models.AskParticiple
			}
		}

		item, err := b.buildItem(verb, itemKind)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// buildItem makes one question with distractors drawn from other verbs.
func (b *Builder) buildItem(verb models.VerbEntry, kind models.QuizKind) (models.QuizItem, error) {
	correct := formOf(verb, kind)

	distractors, err := b.collectDistractors(verb, kind, b.options-1)
	if err != nil {
		return models.QuizItem{}, err
	}

	// Append the correct answer and shuffle while tracking where it lands.
	options := append(distractors, correct)
	correctIndex := len(options) - 1
	b.rnd.Shuffle(len(options), func(i, j int) {
		if i == correctIndex {
			correctIndex = j
		} else if j == correctIndex {
			correctIndex = i
		}
		options[i], options[j] = options[j], options[i]
	})

	return models.QuizItem{
		ID:           uuid.NewString(),
		VerbID:       verb.ID,
		VerbBase:     verb.Base,
		Kind:         kind,
		Question:     questionFor(verb.Base, kind),
		Options:      options,
		CorrectIndex: correctIndex,
	}, nil
}

// collectDistractors gathers up to count wrong answers, preferring verbs
// from the same category before falling back to the whole collection.
func (b *Builder) collectDistractors(verb models.VerbEntry, kind models.QuizKind, count int) ([]string, error) {
	correct := formOf(verb, kind)
	seen := map[string]bool{correct: true}
	distractors := make([]string, 0, count)

	appendForms := func(candidates []models.VerbEntry) {
		for _, candidate := range candidates {
			if len(distractors) >= count {
				return
			}
			if candidate.ID == verb.ID {
				continue
			}
			form := formOf(candidate, kind)
			if seen[form] {
				continue
			}
			seen[form] = true
			distractors = append(distractors, form)
		}
	}

	sameCategory, err := b.verbs.GetByCategory(verb.Category)
	if err != nil {
		return nil, err
	}
	b.rnd.Shuffle(len(sameCategory), func(i, j int) {
		sameCategory[i], sameCategory[j] = sameCategory[j], sameCategory[i]
	})
	appendForms(sameCategory)

	if len(distractors) < count {
		others, err := b.verbs.GetRandomExcept(verb.ID, count*3)
		if err != nil {
			return nil, err
		}
		appendForms(others)
	}

	return distractors, nil
}

// Score returns how many answers match their question's correct option.
func Score(items []models.QuizItem, answers []int) (int, error) {
	if len(items) != len(answers) {
		return 0, fmt.Errorf("have %d answers for %d questions", len(answers), len(items))
	}
	correct := 0
	for i, item := range items {
		if answers[i] == item.CorrectIndex {
			correct++
		}
	}
	return correct, nil
}

// SaveResult records a finished quiz session.
func (b *Builder) SaveResult(kind models.QuizKind, total, correct, durationSec int, now time.Time) error {
	if kind == "" {
		kind = models.Mixed
	}
	return b.results.Create(&models.QuizResult{
		Kind:         kind,
		TotalItems:   total,
		CorrectItems: correct,
		Duration:     durationSec,
		TakenAt:      now,
	})
}

// formOf picks the form a question kind asks about.
func formOf(verb models.VerbEntry, kind models.QuizKind) string {
	if kind == models.AskParticiple {
		return verb.Participle
	}
	return verb.Past
}

// questionFor renders the question text.
func questionFor(base string, kind models.QuizKind) string {
	if kind == models.AskParticiple {
		return fmt.Sprintf("What is the past participle (V3) of '%s'?", base)
	}
	return fmt.Sprintf("What is the simple past (V2) of '%s'?", base)
}
