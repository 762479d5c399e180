package entity

import "time"

// Student is one roster entry. Email is stored lower-cased and trimmed so
// membership checks against scheduled invitees are case-insensitive.
// SlackID may be empty: such entries are never messaged.
type Student struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	SlackID   string    `json:"slack_id" db:"slack_id"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Notifiable reports whether the student has a Slack identity to DM.
func (s *Student) Notifiable() bool {
	return s.SlackID != ""
}
