package notify

import (
	"fmt"
	"io"
	"os"
)

// Console prints review reminders to a writer, stdout by default.
// It is the fallback when no Telegram credentials are configured.
type Console struct {
	out io.Writer
}

// NewConsole creates a console notifier.
func NewConsole(out io.Writer) *Console {
	if out == nil {
		out = os.Stdout
	}
	return &Console{out: out}
}

// SendReminder implements the scheduler.Notifier interface.
func (c *Console) SendReminder(count int) error {
	noun := "verbs"
	if count == 1 {
		noun = "verb"
	}
	_, err := fmt.Fprintf(c.out, "You have %d %s due for review! Run 'vocab review' to practice.\n", count, noun)
	return err
}
