package contract

import (
	"context"

	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
)

type ReminderService interface {
	// Run fetches the week's scheduled emails and reminds every roster
	// entry that is missing from the set and has a Slack identity.
	Run(ctx context.Context) (entity.ReminderReport, error)

	// NotifyMissing is the reconciliation step alone, for a precomputed set.
	NotifyMissing(roster []*entity.Student, scheduled *entity.ScheduledEmails) entity.ReminderReport

	// TestMessages DMs every notifiable roster entry a delivery smoke test.
	TestMessages(ctx context.Context) (sent, failed int)
}

type ExportService interface {
	// Export crawls channels with the given name prefix and returns the
	// unique human members that have an email address.
	Export(ctx context.Context, prefix string) ([]*entity.Student, error)

	// Persist replaces the stored roster with the exported one.
	Persist(ctx context.Context, students []*entity.Student) error
}
