package quiz

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adefebrian/vocab/internal/database"
	"github.com/Adefebrian/vocab/pkg/models"
)

func testBuilder(t *testing.T, seed int64) (*Builder, *database.VerbRepository, *database.QuizResultRepository) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	verbs := database.NewVerbRepository(db)
	results := database.NewQuizResultRepository(db)
	builder := NewBuilder(verbs, results, rand.New(rand.NewSource(seed)), DefaultOptions)
	return builder, verbs, results
}

func seedVerbs(t *testing.T, verbs *database.VerbRepository) {
	t.Helper()
	entries := []models.VerbEntry{
		{Base: "go", Past: "went", Participle: "gone", Type: models.Irregular, Level: models.Beginner, Category: "movement"},
		{Base: "walk", Past: "walked", Participle: "walked", Type: models.Regular, Level: models.Beginner, Category: "movement"},
		{Base: "eat", Past: "ate", Participle: "eaten", Type: models.Irregular, Level: models.Beginner, Category: "daily"},
		{Base: "cook", Past: "cooked", Participle: "cooked", Type: models.Regular, Level: models.Beginner, Category: "daily"},
		{Base: "write", Past: "wrote", Participle: "written", Type: models.Irregular, Level: models.Intermediate, Category: "study"},
	}
	for i := range entries {
		require.NoError(t, verbs.Create(&entries[i]))
	}
}

func TestBuildPastQuiz(t *testing.T) {
	builder, verbs, _ := testBuilder(t, 42)
	seedVerbs(t, verbs)

	items, err := builder.Build(3, models.AskPast)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.Equal(t, models.AskPast, item.Kind)
		assert.Contains(t, item.Question, item.VerbBase)

		require.True(t, item.CorrectIndex >= 0 && item.CorrectIndex < len(item.Options))

		verb, err := verbs.GetByID(item.VerbID)
		require.NoError(t, err)
		assert.Equal(t, verb.Past, item.Answer())

		// Options never repeat.
		unique := map[string]bool{}
		for _, opt := range item.Options {
			assert.False(t, unique[opt], "duplicate option %q", opt)
			unique[opt] = true
		}
	}
}

func TestBuildParticipleQuiz(t *testing.T) {
	builder, verbs, _ := testBuilder(t, 7)
	seedVerbs(t, verbs)

	items, err := builder.Build(2, models.AskParticiple)
	require.NoError(t, err)
	require.Len(t, items, 2)

	for _, item := range items {
		verb, err := verbs.GetByID(item.VerbID)
		require.NoError(t, err)
		assert.Equal(t, verb.Participle, item.Answer())
		assert.Contains(t, item.Question, "participle")
	}
}

func TestBuildMixedQuiz(t *testing.T) {
	builder, verbs, _ := testBuilder(t, 3)
	seedVerbs(t, verbs)

	items, err := builder.Build(5, "")
	require.NoError(t, err)
	require.Len(t, items, 5)

	for _, item := range items {
		assert.Contains(t, []models.QuizKind{models.AskPast, models.AskParticiple}, item.Kind)
	}
}

func TestBuildLimitsToCollectionSize(t *testing.T) {
	builder, verbs, _ := testBuilder(t, 1)
	seedVerbs(t, verbs)

	items, err := builder.Build(50, models.AskPast)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestBuildNeedsTwoVerbs(t *testing.T) {
	builder, verbs, _ := testBuilder(t, 1)

	_, err := builder.Build(3, models.AskPast)
	assert.Error(t, err)

	v := models.VerbEntry{Base: "go", Past: "went", Participle: "gone", Type: models.Irregular, Level: models.Beginner}
	require.NoError(t, verbs.Create(&v))

	_, err = builder.Build(3, models.AskPast)
	assert.Error(t, err)
}

func TestScore(t *testing.T) {
	items := []models.QuizItem{
		{CorrectIndex: 0},
		{CorrectIndex: 2},
		{CorrectIndex: 1},
	}

	correct, err := Score(items, []int{0, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 2, correct)

	correct, err = Score(items, []int{0, 2, 1})
	require.NoError(t, err)
	assert.Equal(t, 3, correct)

	_, err = Score(items, []int{0})
	assert.Error(t, err)
}

func TestSaveResult(t *testing.T) {
	builder, verbs, results := testBuilder(t, 11)
	seedVerbs(t, verbs)

	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	require.NoError(t, builder.SaveResult(models.AskPast, 5, 4, 60, now))
	require.NoError(t, builder.SaveResult("", 3, 3, 30, now))

	count, err := results.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	recent, err := results.GetRecent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, models.Mixed, recent[0].Kind)
}