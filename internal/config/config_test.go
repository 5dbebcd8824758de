package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearEnv masks every variable Load reads. Load treats an empty
// value as unset, so the host environment cannot leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"DATABASE_DRIVER", "DATABASE_DSN",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"TRANSLATE_URL", "TRANSLATE_LANG_PAIR",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
		"REMINDER_START_HOUR", "REMINDER_END_HOUR",
		"QUIZ_QUESTIONS", "QUIZ_OPTIONS",
	} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "en|id", cfg.TranslateLangPair)
	assert.Equal(t, 5, cfg.QuizQuestions)
	assert.Equal(t, 4, cfg.QuizOptions)
	assert.Empty(t, cfg.TelegramToken)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "postgres://localhost/vocab")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("REMINDER_START_HOUR", "7")
	t.Setenv("QUIZ_QUESTIONS", "10")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/vocab", cfg.Database.DSN)
	assert.Equal(t, "sk-test", cfg.OpenAIKey)
	assert.Equal(t, "token", cfg.TelegramToken)
	assert.Equal(t, int64(42), cfg.TelegramChatID)
	assert.Equal(t, 7, cfg.ReminderStartHour)
	assert.Equal(t, 10, cfg.QuizQuestions)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")
	t.Setenv("REMINDER_START_HOUR", "99")
	t.Setenv("QUIZ_OPTIONS", "1")

	cfg := Load()

	assert.Equal(t, int64(0), cfg.TelegramChatID)
	assert.Equal(t, Default().ReminderStartHour, cfg.ReminderStartHour)
	assert.Equal(t, 4, cfg.QuizOptions)
}
