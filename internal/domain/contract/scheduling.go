package contract

import (
	"context"

	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
)

// SchedulingAPI answers "who has a meeting booked in this window".
type SchedulingAPI interface {
	// FetchScheduledEmails returns the set of invitee emails across every
	// event in the window. On a failed events request it still returns the
	// (empty) set with the call count so far, alongside the error, so the
	// caller can log and continue.
	FetchScheduledEmails(ctx context.Context, window entity.WeekWindow) (*entity.ScheduledEmails, error)
}
