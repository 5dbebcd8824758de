package conjugation

import (
	"errors"
	"strings"

	"github.com/Adefebrian/vocab/pkg/models"
)

// ErrEmptyVerb is returned when the input contains no letters to conjugate.
var ErrEmptyVerb = errors.New("conjugation: empty verb")

// Engine derives the past and past-participle forms of English verbs.
// Verbs found in the irregular table take their forms from it; every
// other verb is conjugated by the regular suffix rules.
type Engine struct {
	irregular map[string]IrregularForms
}

// NewEngine creates an engine backed by a copy of the given irregular-verb
// table. Passing nil selects the built-in table.
func NewEngine(table map[string]IrregularForms) *Engine {
	if table == nil {
		table = DefaultIrregularVerbs
	}
	irregular := make(map[string]IrregularForms, len(table))
	for base, forms := range table {
		irregular[base] = forms
	}
	return &Engine{irregular: irregular}
}

// Conjugate returns the three forms and the conjugation type for a base verb.
// The input is trimmed and lower-cased before matching; an input with no
// letters left after trimming fails with ErrEmptyVerb.
func (e *Engine) Conjugate(base string) (models.VerbForms, error) {
	verb := strings.ToLower(strings.TrimSpace(base))
	if verb == "" {
		return models.VerbForms{}, ErrEmptyVerb
	}

	if forms, ok := e.irregular[verb]; ok {
		return models.VerbForms{
			Base:       verb,
			Past:       forms.Past,
			Participle: forms.Participle,
			Type:       models.Irregular,
		}, nil
	}

	// Regular verbs never distinguish past from participle.
	past := regularPast(verb)
	return models.VerbForms{
		Base:       verb,
		Past:       past,
		Participle: past,
		Type:       models.Regular,
	}, nil
}

// IsIrregular reports whether the verb has an entry in the irregular table.
func (e *Engine) IsIrregular(base string) bool {
	_, ok := e.irregular[strings.ToLower(strings.TrimSpace(base))]
	return ok
}

// regularPast derives the simple-past form of a regular verb.
// The rules are tried in a fixed order and the first one that applies wins:
//  1. ends in "e"            -> append "d"       (bake -> baked)
//  2. ends in consonant + y  -> drop y, add "ied" (try -> tried)
//  3. ends in CVC            -> double final consonant, add "ed" (chat -> chatted)
//  4. otherwise              -> append "ed"      (walk -> walked)
func regularPast(verb string) string {
	switch {
	case strings.HasSuffix(verb, "e"):
		return verb + "d"
	case endsConsonantY(verb):
		return verb[:len(verb)-1] + "ied"
	case endsCVC(verb):
		return verb + string(verb[len(verb)-1]) + "ed"
	default:
		return verb + "ed"
	}
}

// endsConsonantY matches a final y preceded by a consonant ("try", "carry").
// A vowel before the y ("play", "enjoy") falls through to the later rules.
func endsConsonantY(verb string) bool {
	n := len(verb)
	if n < 2 || verb[n-1] != 'y' {
		return false
	}
	return !isVowel(verb[n-2])
}

// endsCVC matches a final consonant-vowel-consonant cluster ("chat", "stop").
// The check is purely orthographic: y, w and x count as consonants here, so
// the doubling rule applies to them as well.
func endsCVC(verb string) bool {
	n := len(verb)
	if n < 3 {
		return false
	}
	return !isVowel(verb[n-3]) && isVowel(verb[n-2]) && !isVowel(verb[n-1])
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
