package entity

import "strings"

// ScheduledEmails is the set of addresses with at least one meeting invite
// in the target week, plus counters for observability. Emails are
// normalized to lower case on insert and lookup, so membership is
// case-insensitive regardless of how the upstream API cases them.
type ScheduledEmails struct {
	emails map[string]struct{}

	// APICalls is the total number of HTTP requests issued to build the set.
	APICalls int
	// SkippedEvents counts events whose invitee fetch failed.
	SkippedEvents int
}

func NewScheduledEmails() *ScheduledEmails {
	return &ScheduledEmails{emails: make(map[string]struct{})}
}

func (s *ScheduledEmails) Add(email string) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return
	}
	s.emails[email] = struct{}{}
}

func (s *ScheduledEmails) Contains(email string) bool {
	_, ok := s.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

func (s *ScheduledEmails) Len() int {
	return len(s.emails)
}

// Emails returns the set contents; order is unspecified.
func (s *ScheduledEmails) Emails() []string {
	out := make([]string, 0, len(s.emails))
	for email := range s.emails {
		out = append(out, email)
	}
	return out
}
