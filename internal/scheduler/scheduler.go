package scheduler

import (
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Adefebrian/vocab/internal/database"
)

// Default window for sending review reminders.
const (
	DefaultStartHour = 8  // Reminders begin at 08:00
	DefaultEndHour   = 21 // Last reminder hour is 21:00
)

// Notifier delivers a "you have verbs to review" message.
type Notifier interface {
	SendReminder(count int) error
}

// Config controls when reminders may be sent.
type Config struct {
	// StartHour and EndHour bound the local hours during which the
	// hourly check actually notifies.
	StartHour int
	EndHour   int
}

// Scheduler runs the periodic due-verb check and pushes reminders
// through the notifier.
type Scheduler struct {
	scheduler *gocron.Scheduler
	states    *database.ReviewStateRepository
	notifier  Notifier
	cfg       Config
}

// New creates a scheduler instance.
func New(states *database.ReviewStateRepository, notifier Notifier, cfg Config) *Scheduler {
	if cfg.StartHour == 0 && cfg.EndHour == 0 {
		cfg.StartHour = DefaultStartHour
		cfg.EndHour = DefaultEndHour
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		states:    states,
		notifier:  notifier,
		cfg:       cfg,
	}
}

// Start begins the hourly due check without blocking.
func (s *Scheduler) Start() {
	s.scheduler.Every(1).Hour().Do(s.checkAndRemind)
	s.scheduler.StartAsync()
}

// Stop terminates all scheduled tasks.
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// checkAndRemind sends a reminder when verbs are due and the clock is
// inside the configured window.
func (s *Scheduler) checkAndRemind() {
	now := time.Now()
	if !s.withinWindow(now.Hour()) {
		log.Printf("Current hour %d is outside reminder hours (%d-%d), skipping",
			now.Hour(), s.cfg.StartHour, s.cfg.EndHour)
		return
	}

	if err := s.remind(now); err != nil {
		log.Printf("Error sending reminder: %v", err)
	}
}

// RunManualCheck forces a due check right away, ignoring the hour window.
func (s *Scheduler) RunManualCheck() error {
	return s.remind(time.Now())
}

// remind counts the due verbs and notifies when there are any.
func (s *Scheduler) remind(now time.Time) error {
	count, err := s.states.DueCount(now)
	if err != nil {
		return err
	}
	if count == 0 {
		return nil
	}
	return s.notifier.SendReminder(count)
}

func (s *Scheduler) withinWindow(hour int) bool {
	return hour >= s.cfg.StartHour && hour <= s.cfg.EndHour
}
