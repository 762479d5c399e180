package service

import (
	"time"

	"github.com/romanibanez/booking-reminder-bot/internal/domain/contract"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
)

// timeNow is swapped out in tests to pin the week window.
var timeNow = time.Now

// NewReminder builds the reconciliation driver for one run. The roster is
// loaded once at startup and passed in; the service never mutates it.
func NewReminder(scheduling contract.SchedulingAPI, slackAPI contract.SlackAPI, roster []*entity.Student, bookingURL string) contract.ReminderService {
	return newReminder(scheduling, slackAPI, roster, bookingURL)
}

// NewExport builds the roster export service.
func NewExport(slackAPI contract.SlackAPI, dm contract.DataManager) contract.ExportService {
	return newExport(slackAPI, dm)
}
