package conjugation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adefebrian/vocab/pkg/models"
)

func TestConjugateRegularRules(t *testing.T) {
	engine := NewEngine(nil)

	tests := []struct {
		name string
		base string
		past string
	}{
		{"silent e appends d", "bake", "baked"},
		{"consonant plus y becomes ied", "try", "tried"},
		{"consonant plus y longer verb", "carry", "carried"},
		{"cvc doubles final consonant", "chat", "chatted"},
		{"cvc doubles inside longer verb", "stop", "stopped"},
		{"default appends ed", "walk", "walked"},
		{"double vowel is not cvc", "cook", "cooked"},
		{"final consonant cluster is not cvc", "want", "wanted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forms, err := engine.Conjugate(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.base, forms.Base)
			assert.Equal(t, tt.past, forms.Past)
			assert.Equal(t, tt.past, forms.Participle)
			assert.Equal(t, models.Regular, forms.Type)
		})
	}
}

func TestConjugateOrthographicDoubling(t *testing.T) {
	engine := NewEngine(map[string]IrregularForms{})

	// y, w and x count as consonants in the CVC check, so the doubling
	// rule fires for them too.
	tests := []struct {
		base string
		past string
	}{
		{"fix", "fixxed"},
		{"snow", "snowwed"},
		{"play", "playyed"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			forms, err := engine.Conjugate(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.past, forms.Past)
		})
	}
}

func TestConjugateIrregularTable(t *testing.T) {
	engine := NewEngine(nil)

	// Every table entry must be returned verbatim, never derived.
	for base, want := range DefaultIrregularVerbs {
		forms, err := engine.Conjugate(base)
		require.NoError(t, err)
		assert.Equal(t, base, forms.Base)
		assert.Equal(t, want.Past, forms.Past)
		assert.Equal(t, want.Participle, forms.Participle)
		assert.Equal(t, models.Irregular, forms.Type)
	}
}

func TestConjugateNormalizesInput(t *testing.T) {
	engine := NewEngine(nil)

	forms, err := engine.Conjugate("  GO ")
	require.NoError(t, err)
	assert.Equal(t, "go", forms.Base)
	assert.Equal(t, "went", forms.Past)
	assert.Equal(t, "gone", forms.Participle)
	assert.Equal(t, models.Irregular, forms.Type)

	forms, err = engine.Conjugate("Bake")
	require.NoError(t, err)
	assert.Equal(t, "baked", forms.Past)
}

func TestConjugateEmptyInput(t *testing.T) {
	engine := NewEngine(nil)

	_, err := engine.Conjugate("")
	assert.ErrorIs(t, err, ErrEmptyVerb)

	_, err = engine.Conjugate("   ")
	assert.ErrorIs(t, err, ErrEmptyVerb)
}

func TestConjugateDeterministic(t *testing.T) {
	engine := NewEngine(nil)

	for _, base := range []string{"bake", "try", "chat", "walk", "go", "fix"} {
		first, err := engine.Conjugate(base)
		require.NoError(t, err)
		second, err := engine.Conjugate(base)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestConjugateCustomTable(t *testing.T) {
	table := map[string]IrregularForms{
		"frob": {"frobbed-up", "frobbed-over"},
	}
	engine := NewEngine(table)

	forms, err := engine.Conjugate("frob")
	require.NoError(t, err)
	assert.Equal(t, models.Irregular, forms.Type)
	assert.Equal(t, "frobbed-up", forms.Past)
	assert.Equal(t, "frobbed-over", forms.Participle)

	// A verb outside the custom table still follows the suffix rules.
	forms, err = engine.Conjugate("go")
	require.NoError(t, err)
	assert.Equal(t, models.Regular, forms.Type)
	assert.Equal(t, "goed", forms.Past)
}

func TestIsIrregular(t *testing.T) {
	engine := NewEngine(nil)

	assert.True(t, engine.IsIrregular("go"))
	assert.True(t, engine.IsIrregular(" Go "))
	assert.False(t, engine.IsIrregular("walk"))
	assert.False(t, engine.IsIrregular(""))
}
