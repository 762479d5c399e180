package config

import (
	"os"

	"github.com/romanibanez/booking-reminder-bot/internal/domain"
)

type Config struct {
	CalendlyToken   string
	CalendlyUserURI string
	SlackBotToken   string
	StudentsData    string
	DatabasePath    string
	BookingURL      string
	ChannelPrefix   string
	CSVPath         string
}

func Load() *Config {
	return &Config{
		CalendlyToken:   getEnv("CALENDLY_TOKEN", ""),
		CalendlyUserURI: getEnv("CALENDLY_USER_URI", ""),
		SlackBotToken:   getEnv("SLACK_BOT_TOKEN", ""),
		StudentsData:    getEnv("STUDENTS_DATA", ""),
		DatabasePath:    getEnv("DATABASE_PATH", "./roster.db"),
		BookingURL:      getEnv("BOOKING_URL", domain.DefaultBookingURL),
		ChannelPrefix:   getEnv("CHANNEL_PREFIX", "alex-cloud-"),
		CSVPath:         getEnv("CSV_PATH", "students.csv"),
	}
}

// ValidateReminder checks the secrets the reminder run needs. Only the
// variable names are reported, never the values.
func (c *Config) ValidateReminder() error {
	var missing []string
	if c.CalendlyToken == "" {
		missing = append(missing, "CALENDLY_TOKEN")
	}
	if c.CalendlyUserURI == "" {
		missing = append(missing, "CALENDLY_USER_URI")
	}
	if c.SlackBotToken == "" {
		missing = append(missing, "SLACK_BOT_TOKEN")
	}
	if len(missing) > 0 {
		return &domain.ConfigError{Missing: missing}
	}
	return nil
}

// ValidateExport checks the secrets the roster export needs.
func (c *Config) ValidateExport() error {
	if c.SlackBotToken == "" {
		return &domain.ConfigError{Missing: []string{"SLACK_BOT_TOKEN"}}
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
