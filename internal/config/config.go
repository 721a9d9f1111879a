package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the bot.
type Config struct {
	TelegramToken  string
	DatabaseURL    string
	ReportInterval time.Duration
	DefaultAmount  int
	AmountStep     int
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	// Missing .env files are fine; configuration may come from the environment.
	_ = godotenv.Load()

	cfg := Config{
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DatabaseURL:   strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DefaultAmount: parsePositive(strings.TrimSpace(os.Getenv("DEFAULT_AMOUNT"))),
		AmountStep:    parsePositive(strings.TrimSpace(os.Getenv("AMOUNT_STEP"))),
	}

	// An explicit 0 disables the periodic reports; unset or invalid values
	// fall back to the 5-hour default.
	if interval, ok := parseInterval(strings.TrimSpace(os.Getenv("REPORT_INTERVAL_HOURS"))); ok {
		cfg.ReportInterval = interval
	} else {
		cfg.ReportInterval = 5 * time.Hour
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "feedtrack.db"
	}

	if cfg.DefaultAmount == 0 {
		cfg.DefaultAmount = 200
	}

	if cfg.AmountStep == 0 {
		cfg.AmountStep = 20
	}

	if cfg.TelegramToken == "" {
		return cfg, fmt.Errorf("TELEGRAM_TOKEN is required")
	}

	return cfg, nil
}

// parseInterval reports ok only for an explicitly set, valid hour count.
// Zero is valid and means the reports are switched off.
func parseInterval(raw string) (time.Duration, bool) {
	if raw == "" {
		return 0, false
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours < 0 {
		return 0, false
	}
	return hours, true
}

func parsePositive(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0
	}
	return value
}
