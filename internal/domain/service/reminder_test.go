package service

import (
	"context"
	"testing"
	"time"

	"github.com/romanibanez/booking-reminder-bot/internal/domain"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func Test_reminderService_NotifyMissing(t *testing.T) {
	tests := []struct {
		name       string
		roster     []*entity.Student
		scheduled  []string
		buildMock  func(m allMocks)
		wantReport entity.ReminderReport
	}{
		{
			name: "Should not message scheduled or unreachable students",
			roster: []*entity.Student{
				{Name: "Alice", Email: "alice@x.com", SlackID: "U1"},
				{Name: "Bob", Email: "bob@x.com"},
			},
			scheduled: []string{"alice@x.com"},
			buildMock: func(m allMocks) {
				// No PostMessage expected at all.
			},
			wantReport: entity.ReminderReport{AlreadyScheduled: 1, SkippedNoSlackID: 1},
		},
		{
			name: "Should remind a student with no booking",
			roster: []*entity.Student{
				{Name: "Carol", Email: "carol@x.com", SlackID: "U2"},
			},
			buildMock: func(m allMocks) {
				m.mockSlackAPI.EXPECT().
					PostMessage("U2", gomock.Any()).
					Return("U2", "123.456", nil).Times(1)
			},
			wantReport: entity.ReminderReport{Sent: 1},
		},
		{
			name: "Should match bookings case-insensitively",
			roster: []*entity.Student{
				{Name: "Dave", Email: "dave@x.com", SlackID: "U3"},
			},
			scheduled: []string{"Dave@X.com"},
			buildMock: func(m allMocks) {},
			wantReport: entity.ReminderReport{AlreadyScheduled: 1},
		},
		{
			name: "Should count a failed send and keep going",
			roster: []*entity.Student{
				{Name: "Erin", Email: "erin@x.com", SlackID: "U4"},
				{Name: "Frank", Email: "frank@x.com", SlackID: "U5"},
			},
			buildMock: func(m allMocks) {
				m.mockSlackAPI.EXPECT().
					PostMessage("U4", gomock.Any()).
					Return("", "", assert.AnError).Times(1)
				m.mockSlackAPI.EXPECT().
					PostMessage("U5", gomock.Any()).
					Return("U5", "123.456", nil).Times(1)
			},
			wantReport: entity.ReminderReport{Sent: 1, Failed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newServiceTestMock(t)
			defer ctrl.Finish()

			tt.buildMock(m)

			scheduled := entity.NewScheduledEmails()
			for _, email := range tt.scheduled {
				scheduled.Add(email)
			}

			s := newReminder(m.mockSchedulingAPI, m.mockSlackAPI, tt.roster, domain.DefaultBookingURL)
			report := s.NotifyMissing(tt.roster, scheduled)

			assert.Equal(t, tt.wantReport, report)
		})
	}
}

func Test_reminderService_Run_FetchFailure(t *testing.T) {
	// Events request failing means "nobody scheduled": everyone reachable
	// still gets a reminder.
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	restore := timeNow
	timeNow = func() time.Time {
		return time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC) // a Wednesday
	}
	defer func() { timeNow = restore }()

	roster := []*entity.Student{
		{Name: "Alice", Email: "alice@x.com", SlackID: "U1"},
		{Name: "Bob", Email: "bob@x.com"},
	}

	empty := entity.NewScheduledEmails()
	empty.APICalls = 1

	m.mockSchedulingAPI.EXPECT().
		FetchScheduledEmails(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, window entity.WeekWindow) (*entity.ScheduledEmails, error) {
			assert.Equal(t, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC), window.Start)
			return empty, &domain.UpstreamError{Op: "GET /scheduled_events", Status: 500, Detail: "boom"}
		}).Times(1)

	m.mockSlackAPI.EXPECT().
		PostMessage("U1", gomock.Any()).
		Return("U1", "123.456", nil).Times(1)

	s := newReminder(m.mockSchedulingAPI, m.mockSlackAPI, roster, domain.DefaultBookingURL)
	report, err := s.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, entity.ReminderReport{Sent: 1, SkippedNoSlackID: 1}, report)
}

func Test_reminderService_TestMessages(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	roster := []*entity.Student{
		{Name: "Alice", Email: "alice@x.com", SlackID: "U1"},
		{Name: "Bob", Email: "bob@x.com"},
		{Name: "Carol", Email: "carol@x.com", SlackID: "U2"},
	}

	m.mockSlackAPI.EXPECT().
		PostMessage("U1", gomock.Any()).
		Return("U1", "123.456", nil).Times(1)
	m.mockSlackAPI.EXPECT().
		PostMessage("U2", gomock.Any()).
		Return("", "", assert.AnError).Times(1)

	s := newReminder(m.mockSchedulingAPI, m.mockSlackAPI, roster, domain.DefaultBookingURL)
	sent, failed := s.TestMessages(context.Background())

	assert.Equal(t, 1, sent)
	assert.Equal(t, 1, failed)
}
