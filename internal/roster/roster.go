// Package roster parses and writes the student roster. The source of truth
// is a small CSV with header name,email,slack_id; it arrives either as a
// file written by the export tool or as an environment blob where real
// newlines have been escaped to the two-character sequence \n so the whole
// roster fits in a single CI secret.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
)

var ErrEmptyBlob = errors.New("roster blob is empty")

// Header is the column order used when writing roster CSV files.
var Header = []string{"name", "email", "slack_id"}

// Parse reads a roster blob into insertion-ordered entries. Emails are
// lower-cased and trimmed, Slack IDs trimmed. Rows missing a name or email
// are skipped and counted rather than failing the whole roster. A repeated
// name overwrites the earlier row but keeps its original position.
func Parse(blob string) ([]*entity.Student, int, error) {
	blob = strings.ReplaceAll(blob, `\n`, "\n")
	if strings.TrimSpace(blob) == "" {
		return nil, 0, ErrEmptyBlob
	}

	reader := csv.NewReader(strings.NewReader(blob))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to parse roster csv: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, ErrEmptyBlob
	}

	columns := make(map[string]int)
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	nameCol, okName := columns["name"]
	emailCol, okEmail := columns["email"]
	if !okName || !okEmail {
		return nil, 0, fmt.Errorf("roster header missing name/email columns: %v", records[0])
	}
	slackCol, hasSlack := columns["slack_id"]

	var students []*entity.Student
	byName := make(map[string]int)
	skipped := 0

	for _, row := range records[1:] {
		if len(row) <= nameCol || len(row) <= emailCol {
			skipped++
			continue
		}

		name := strings.TrimSpace(row[nameCol])
		email := strings.ToLower(strings.TrimSpace(row[emailCol]))
		if name == "" || email == "" {
			skipped++
			continue
		}

		student := &entity.Student{Name: name, Email: email}
		if hasSlack && len(row) > slackCol {
			student.SlackID = strings.TrimSpace(row[slackCol])
		}

		if i, ok := byName[name]; ok {
			students[i] = student
			continue
		}
		byName[name] = len(students)
		students = append(students, student)
	}

	return students, skipped, nil
}

// WriteFile saves the roster as a CSV file with the standard header.
func WriteFile(path string, students []*entity.Student) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create roster file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write roster header: %w", err)
	}
	for _, s := range students {
		if err := w.Write([]string{s.Name, s.Email, s.SlackID}); err != nil {
			return fmt.Errorf("failed to write roster row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush roster file: %w", err)
	}

	return nil
}

// EncodeSecret joins the non-empty lines of a roster CSV with literal \n
// sequences, producing the single-line value Parse unescapes.
func EncodeSecret(csvText string) string {
	var lines []string
	for _, line := range strings.Split(csvText, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, `\n`)
}

// EncodeStudents renders the roster to CSV text in memory, for EncodeSecret.
func EncodeStudents(students []*entity.Student) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	if err := w.Write(Header); err != nil {
		return "", err
	}
	for _, s := range students {
		if err := w.Write([]string{s.Name, s.Email, s.SlackID}); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
