package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"ebs/internal/calendar"
	"ebs/internal/tracker"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	StorePath   string
	HoursPerDay float64
	WorkDays    calendar.WeekdaySet
	Tracker     tracker.Config
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority)
	exePath, err := os.Executable()
	if err == nil {
		envPath := filepath.Join(filepath.Dir(exePath), ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	hoursPerDay, err := strconv.ParseFloat(getEnv("EBS_HOURS_PER_DAY", "8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid EBS_HOURS_PER_DAY: %w", err)
	}
	if hoursPerDay <= 0 {
		return nil, fmt.Errorf("EBS_HOURS_PER_DAY must be greater than zero")
	}

	workDays, err := calendar.ParseWeekdays(getEnv("EBS_WORK_DAYS", "Mon,Tue,Wed,Thu,Fri"))
	if err != nil {
		return nil, fmt.Errorf("invalid EBS_WORK_DAYS: %w", err)
	}

	timeoutSecs, _ := strconv.Atoi(getEnv("BUGZILLA_REQUEST_TIMEOUT_SECONDS", "30"))

	cfg := &AppConfig{
		StorePath:   getEnv("EBS_STORE", "~/.ebs.json"),
		HoursPerDay: hoursPerDay,
		WorkDays:    workDays,
		Tracker: tracker.Config{
			BaseURL:        getEnv("BUGZILLA_URL", ""),
			APIKey:         getEnv("BUGZILLA_API_KEY", ""),
			SearchArgs:     getEnv("BUGZILLA_SEARCH_ARGS", ""),
			RequestTimeout: time.Duration(timeoutSecs) * time.Second,
		},
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
