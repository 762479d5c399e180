package config

import (
	"testing"

	"github.com/romanibanez/booking-reminder-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CALENDLY_TOKEN", "tok")
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("BOOKING_URL", "")
	t.Setenv("CHANNEL_PREFIX", "")
	t.Setenv("CSV_PATH", "")

	cfg := Load()

	assert.Equal(t, "tok", cfg.CalendlyToken)
	assert.Equal(t, "./roster.db", cfg.DatabasePath)
	assert.Equal(t, domain.DefaultBookingURL, cfg.BookingURL)
	assert.Equal(t, "alex-cloud-", cfg.ChannelPrefix)
	assert.Equal(t, "students.csv", cfg.CSVPath)
}

func TestValidateReminder(t *testing.T) {
	cfg := &Config{
		CalendlyUserURI: "https://api.calendly.com/users/ABCDEF",
		SlackBotToken:   "xoxb-test",
	}

	err := cfg.ValidateReminder()
	require.Error(t, err)

	var configErr *domain.ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, []string{"CALENDLY_TOKEN"}, configErr.Missing)
	assert.NotContains(t, err.Error(), "xoxb-test", "errors must never include secret values")

	cfg.CalendlyToken = "tok"
	assert.NoError(t, cfg.ValidateReminder())
}

func TestValidateExport(t *testing.T) {
	cfg := &Config{}

	err := cfg.ValidateExport()
	require.Error(t, err)

	cfg.SlackBotToken = "xoxb-test"
	assert.NoError(t, cfg.ValidateExport())
}
