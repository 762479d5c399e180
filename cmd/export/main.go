package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"

	"github.com/romanibanez/booking-reminder-bot/internal/config"
	"github.com/romanibanez/booking-reminder-bot/internal/database"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/service"
	"github.com/romanibanez/booking-reminder-bot/internal/roster"
	"github.com/romanibanez/booking-reminder-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()
	if err := cfg.ValidateExport(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	slackClient := slack.New(cfg.SlackBotToken)
	exporter := service.NewExport(slackClient, database.NewInstance(db))

	ctx := context.Background()

	log.Println("=== Starting Slack channel member export ===")
	students, err := exporter.Export(ctx, cfg.ChannelPrefix)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	if len(students) == 0 {
		log.Println("Nothing to export.")
		return
	}

	if err := roster.WriteFile(cfg.CSVPath, students); err != nil {
		log.Fatalf("Failed to save roster CSV: %v", err)
	}
	log.Printf("Successfully saved %d students to %s", len(students), cfg.CSVPath)

	if err := exporter.Persist(ctx, students); err != nil {
		log.Fatalf("Failed to persist roster: %v", err)
	}
	log.Printf("Roster stored in %s", cfg.DatabasePath)

	csvText, err := roster.EncodeStudents(students)
	if err != nil {
		log.Fatalf("Failed to encode roster: %v", err)
	}
	fmt.Println("STUDENTS_DATA for CI secret:")
	fmt.Println(roster.EncodeSecret(csvText))

	log.Println("=== Export completed ===")
}
