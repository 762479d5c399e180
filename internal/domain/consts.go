package domain

import "fmt"

// DefaultBookingURL is the mentor's public booking page, overridable via
// BOOKING_URL.
const DefaultBookingURL = "https://calendly.com/romanibanez-alex"

// ReminderMessage is the DM sent to anyone without a booking this week.
func ReminderMessage(name, bookingURL string) string {
	return fmt.Sprintf("Hey %s, I noticed you haven't scheduled a meeting with me for this week. Please book a slot here: %s", name, bookingURL)
}

// TestMessage is the DM used by the delivery smoke test.
func TestMessage(name string) string {
	return fmt.Sprintf("Test message to %s", name)
}
