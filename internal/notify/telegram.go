package notify

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram sends review reminders to a single chat.
type Telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegram connects to the Bot API with the given token.
func NewTelegram(token string, chatID int64) (*Telegram, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}
	if chatID == 0 {
		return nil, fmt.Errorf("telegram chat ID is not set")
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	log.Printf("Authorized on Telegram account %s", api.Self.UserName)

	return &Telegram{api: api, chatID: chatID}, nil
}

// SendReminder implements the scheduler.Notifier interface.
func (t *Telegram) SendReminder(count int) error {
	noun := "verbs"
	if count == 1 {
		noun = "verb"
	}

	msg := tgbotapi.NewMessage(t.chatID, fmt.Sprintf(
		"You have %d %s due for review! Run 'vocab review' to practice.", count, noun))
	_, err := t.api.Send(msg)

	if err != nil {
		log.Printf("Error sending reminder: %v", err)
	} else {
		log.Printf("Successfully sent reminder for %d %s", count, noun)
	}

	return err
}
