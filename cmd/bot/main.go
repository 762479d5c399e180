package main

import (
	"context"
	"errors"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"

	"github.com/romanibanez/booking-reminder-bot/internal/calendly"
	"github.com/romanibanez/booking-reminder-bot/internal/config"
	"github.com/romanibanez/booking-reminder-bot/internal/database"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/service"
	"github.com/romanibanez/booking-reminder-bot/internal/roster"
	"github.com/romanibanez/booking-reminder-bot/migrator/sqlite"
)

func main() {
	testDM := flag.Bool("test-dm", false, "send a test DM to every roster entry with a Slack ID instead of running the reminder check")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if err := cfg.ValidateReminder(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	students, err := loadRoster(cfg)
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}
	log.Printf("Loaded roster with %d entries", len(students))

	slackClient := slack.New(cfg.SlackBotToken)
	calendlyClient := calendly.New(cfg.CalendlyToken, cfg.CalendlyUserURI)

	reminder := service.NewReminder(calendlyClient, slackClient, students, cfg.BookingURL)

	ctx := context.Background()

	if *testDM {
		sent, failed := reminder.TestMessages(ctx)
		log.Printf("Test messages: sent=%d failed=%d", sent, failed)
		return
	}

	log.Println("Running notification check...")
	report, err := reminder.Run(ctx)
	if err != nil {
		log.Fatalf("Reminder run failed: %v", err)
	}

	log.Printf("Done: sent=%d already_scheduled=%d skipped_no_slack_id=%d failed=%d",
		report.Sent, report.AlreadyScheduled, report.SkippedNoSlackID, report.Failed)
}

// loadRoster prefers the STUDENTS_DATA blob and falls back to the SQLite
// store written by the export tool. Having neither is fatal: no reminder
// work is possible without a roster.
func loadRoster(cfg *config.Config) ([]*entity.Student, error) {
	if cfg.StudentsData != "" {
		students, skipped, err := roster.Parse(cfg.StudentsData)
		if err != nil {
			return nil, err
		}
		if skipped > 0 {
			log.Printf("Skipped %d malformed roster rows", skipped)
		}
		return students, nil
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := sqlite.Migrate(db.DB()); err != nil {
		return nil, err
	}

	students, err := database.NewInstance(db).Roster().GetAll()
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, errors.New("roster is empty: set STUDENTS_DATA or run the export tool first")
	}
	return students, nil
}
