package entity

// ReminderReport summarizes one reconciliation pass over the roster.
type ReminderReport struct {
	Sent             int
	AlreadyScheduled int
	SkippedNoSlackID int
	Failed           int
}
