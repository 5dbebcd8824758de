package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/Adefebrian/vocab/internal/ai"
	"github.com/Adefebrian/vocab/internal/database"
	"github.com/Adefebrian/vocab/internal/scheduler"
)

// Config collects every runtime setting of the application.
type Config struct {
	Database database.Config

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	TranslateURL      string
	TranslateLangPair string

	TelegramToken  string
	TelegramChatID int64

	ReminderStartHour int
	ReminderEndHour   int

	QuizQuestions int
	QuizOptions   int
}

// Default returns the configuration used when nothing is set in the
// environment: a local sqlite file, English-to-Indonesian translations
// and no external credentials.
func Default() Config {
	return Config{
		Database:          database.DefaultConfig(),
		TranslateURL:      ai.DefaultTranslateURL,
		TranslateLangPair: "en|id",
		ReminderStartHour: scheduler.DefaultStartHour,
		ReminderEndHour:   scheduler.DefaultEndHour,
		QuizQuestions:     5,
		QuizOptions:       4,
	}
}

// Load reads a .env file when present and then the environment,
// overriding the defaults with whatever is set.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("DATABASE_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		cfg.Database.DSN = v
	}

	cfg.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.OpenAIBaseURL = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.OpenAIModel = v
	}

	if v := os.Getenv("TRANSLATE_URL"); v != "" {
		cfg.TranslateURL = v
	}
	if v := os.Getenv("TRANSLATE_LANG_PAIR"); v != "" {
		cfg.TranslateLangPair = v
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	cfg.TelegramChatID = envInt64("TELEGRAM_CHAT_ID", 0)

	if h := envInt("REMINDER_START_HOUR", cfg.ReminderStartHour); h >= 0 && h <= 23 {
		cfg.ReminderStartHour = h
	}
	if h := envInt("REMINDER_END_HOUR", cfg.ReminderEndHour); h >= 0 && h <= 23 {
		cfg.ReminderEndHour = h
	}

	if n := envInt("QUIZ_QUESTIONS", cfg.QuizQuestions); n > 0 {
		cfg.QuizQuestions = n
	}
	if n := envInt("QUIZ_OPTIONS", cfg.QuizOptions); n >= 2 {
		cfg.QuizOptions = n
	}

	return cfg
}

func envInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envInt64(name string, fallback int64) int64 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
