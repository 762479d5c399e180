package service

import (
	"context"
	"log"

	"github.com/slack-go/slack"

	"github.com/romanibanez/booking-reminder-bot/internal/domain"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/contract"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
)

type reminderService struct {
	scheduling contract.SchedulingAPI
	slackAPI   contract.SlackAPI
	roster     []*entity.Student
	bookingURL string
}

func newReminder(scheduling contract.SchedulingAPI, slackAPI contract.SlackAPI, roster []*entity.Student, bookingURL string) *reminderService {
	return &reminderService{
		scheduling: scheduling,
		slackAPI:   slackAPI,
		roster:     roster,
		bookingURL: bookingURL,
	}
}

// Run reconciles the roster against this week's bookings and DMs everyone
// still missing. A failed scheduled-events fetch is logged and treated as
// "nobody scheduled" so the reminders still go out, rather than aborting
// the whole run.
func (s *reminderService) Run(ctx context.Context) (entity.ReminderReport, error) {
	window := entity.CurrentWeek(timeNow())
	log.Printf("Checking schedules for this week (Monday %s to Friday %s)...",
		window.Start.Format("2006-01-02"), window.End.Format("2006-01-02"))

	scheduled, err := s.scheduling.FetchScheduledEmails(ctx, window)
	if err != nil {
		log.Printf("Error fetching events: %v", err)
	}
	if scheduled == nil {
		scheduled = entity.NewScheduledEmails()
	}

	log.Printf("API calls made this run: %d", scheduled.APICalls)
	if scheduled.SkippedEvents > 0 {
		log.Printf("Events skipped due to invitee fetch failures: %d", scheduled.SkippedEvents)
	}
	log.Printf("Scheduled emails: %v", scheduled.Emails())

	return s.NotifyMissing(s.roster, scheduled), nil
}

// NotifyMissing walks the roster in order: entries with a booking are
// counted, entries without a Slack ID are skipped, everyone else gets the
// reminder DM. A send failure is logged and counted, never fatal.
func (s *reminderService) NotifyMissing(roster []*entity.Student, scheduled *entity.ScheduledEmails) entity.ReminderReport {
	var report entity.ReminderReport

	for _, student := range roster {
		log.Printf("Processing %s: Email=%s, Slack ID=%s", student.Name, student.Email, student.SlackID)

		if scheduled.Contains(student.Email) {
			log.Printf("%s already has a scheduled meeting this week.", student.Name)
			report.AlreadyScheduled++
			continue
		}

		if !student.Notifiable() {
			log.Printf("Skipping %s (no Slack ID found).", student.Name)
			report.SkippedNoSlackID++
			continue
		}

		if s.sendDirectMessage(student.SlackID, domain.ReminderMessage(student.Name, s.bookingURL)) {
			log.Printf("Sent DM to %s (Slack ID: %s)", student.Name, student.SlackID)
			report.Sent++
		} else {
			report.Failed++
		}
	}

	return report
}

// TestMessages DMs every notifiable roster entry, to verify delivery before
// trusting a scheduled run.
func (s *reminderService) TestMessages(ctx context.Context) (sent, failed int) {
	for _, student := range s.roster {
		if !student.Notifiable() {
			continue
		}
		if s.sendDirectMessage(student.SlackID, domain.TestMessage(student.Name)) {
			log.Printf("Test message to %s: ok", student.Name)
			sent++
		} else {
			failed++
		}
	}
	return sent, failed
}

func (s *reminderService) sendDirectMessage(slackID, text string) bool {
	_, _, err := s.slackAPI.PostMessage(slackID, slack.MsgOptionText(text, false))
	if err != nil {
		log.Printf("Failed to send DM to %s: %v", slackID, err)
		return false
	}
	return true
}
