package level

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Adefebrian/vocab/pkg/models"
)

func TestClassifyFrequencyBrackets(t *testing.T) {
	c := NewClassifier(Config{})

	assert.Equal(t, models.Beginner, c.Classify("go"))
	assert.Equal(t, models.Intermediate, c.Classify("begin"))
	assert.Equal(t, models.Advanced, c.Classify("articulate"))

	// Every table word must land in the bracket its score selects.
	for word, score := range DefaultFrequency {
		want := models.Advanced
		switch {
		case score >= 50:
			want = models.Beginner
		case score >= 20:
			want = models.Intermediate
		}
		assert.Equal(t, want, c.Classify(word), "word %q score %d", word, score)
	}
}

func TestClassifyDerivedWordLists(t *testing.T) {
	c := NewClassifier(Config{})

	// Inflected forms inherit the bracket of their root.
	assert.Equal(t, models.Beginner, c.Classify("worked"))
	assert.Equal(t, models.Beginner, c.Classify("working"))
	assert.Equal(t, models.Intermediate, c.Classify("helped"))
	assert.Equal(t, models.Advanced, c.Classify("achieved"))
}

func TestClassifyListOrderBeginnerFirst(t *testing.T) {
	c := NewClassifier(Config{})

	// "describes" contains both the advanced root "describe" and the
	// beginner word "be". The beginner list is checked first, so it wins.
	assert.Equal(t, models.Beginner, c.Classify("describes"))
}

func TestClassifyMorphology(t *testing.T) {
	c := NewClassifier(Config{})

	assert.Equal(t, models.Advanced, c.Classify("systematize"))
	assert.Equal(t, models.Advanced, c.Classify("institutionalize"))
	assert.Equal(t, models.Advanced, c.Classify("philosophize"))
	assert.Equal(t, models.Advanced, c.Classify("overcapitalize"))
}

func TestClassifyLengthFallback(t *testing.T) {
	c := NewClassifier(Config{})

	tests := []struct {
		word string
		want models.Level
	}{
		{"zag", models.Beginner},
		{"zagzig", models.Intermediate},
		{"zagzigzagzigzag", models.Advanced},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.word))
		})
	}
}

func TestClassifyNormalizesInput(t *testing.T) {
	c := NewClassifier(Config{})

	assert.Equal(t, models.Beginner, c.Classify(" GO "))
	assert.Equal(t, models.Advanced, c.Classify("Describe"))
}

func TestClassifyDeterministic(t *testing.T) {
	c := NewClassifier(Config{})

	words := []string{"go", "begin", "articulate", "worked", "zagzig", "systematize"}
	for _, w := range words {
		assert.Equal(t, c.Classify(w), c.Classify(w))
	}
}

func TestClassifyCustomFrequency(t *testing.T) {
	c := NewClassifier(Config{Frequency: map[string]int{
		"frob":  80,
		"zork":  30,
		"gnarl": 5,
	}})

	assert.Equal(t, models.Beginner, c.Classify("frob"))
	assert.Equal(t, models.Intermediate, c.Classify("zork"))
	assert.Equal(t, models.Advanced, c.Classify("gnarl"))

	// Derived lists come from the injected table as well.
	assert.Equal(t, models.Beginner, c.Classify("frobbing"))
}
