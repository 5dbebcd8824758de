package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adefebrian/vocab/internal/database"
	"github.com/Adefebrian/vocab/pkg/models"
)

type fakeNotifier struct {
	calls  int
	counts []int
}

func (f *fakeNotifier) SendReminder(count int) error {
	f.calls++
	f.counts = append(f.counts, count)
	return nil
}

func testStates(t *testing.T) (*database.ReviewStateRepository, *database.VerbRepository) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite3", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return database.NewReviewStateRepository(db), database.NewVerbRepository(db)
}

func seedVerb(t *testing.T, verbs *database.VerbRepository, base string) int64 {
	t.Helper()
	v := &models.VerbEntry{
		Base: base, Past: base + "ed", Participle: base + "ed",
		Type: models.Regular, Level: models.Beginner,
	}
	require.NoError(t, verbs.Create(v))
	return v.ID
}

func TestRunManualCheckNotifiesWhenDue(t *testing.T) {
	states, verbs := testStates(t)
	id := seedVerb(t, verbs, "walk")
	require.NoError(t, states.Upsert(&models.ReviewState{
		ItemID: id, Ease: 2.5, NextDueAt: time.Now().Add(-time.Hour),
	}))

	notifier := &fakeNotifier{}
	s := New(states, notifier, Config{})

	require.NoError(t, s.RunManualCheck())
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, []int{1}, notifier.counts)
}

func TestRunManualCheckSilentWhenNothingDue(t *testing.T) {
	states, verbs := testStates(t)
	id := seedVerb(t, verbs, "walk")
	reviewed := time.Now()
	require.NoError(t, states.Upsert(&models.ReviewState{
		ItemID:         id,
		CorrectCount:   1,
		Ease:           2.5,
		LastReviewedAt: &reviewed,
		NextDueAt:      reviewed.AddDate(0, 0, 3),
	}))

	notifier := &fakeNotifier{}
	s := New(states, notifier, Config{})

	require.NoError(t, s.RunManualCheck())
	assert.Equal(t, 0, notifier.calls)
}

func TestWithinWindow(t *testing.T) {
	s := New(nil, nil, Config{StartHour: 9, EndHour: 18})

	assert.False(t, s.withinWindow(8))
	assert.True(t, s.withinWindow(9))
	assert.True(t, s.withinWindow(13))
	assert.True(t, s.withinWindow(18))
	assert.False(t, s.withinWindow(19))
}

func TestDefaultWindow(t *testing.T) {
	s := New(nil, nil, Config{})

	assert.Equal(t, DefaultStartHour, s.cfg.StartHour)
	assert.Equal(t, DefaultEndHour, s.cfg.EndHour)
}
