package database

import (
	"database/sql"
	"fmt"

	"github.com/romanibanez/booking-reminder-bot/internal/domain/contract"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
)

type rosterRepository struct {
	db dbConn
}

func newRosterRepo(db dbConn) contract.RosterRepo {
	return &rosterRepository{db: db}
}

func (r *rosterRepository) Upsert(student *entity.Student) error {
	query := `
		INSERT INTO students (name, email, slack_id, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			email = excluded.email,
			slack_id = excluded.slack_id,
			updated_at = CURRENT_TIMESTAMP
	`

	result, err := r.db.Exec(query,
		student.Name,
		student.Email,
		student.SlackID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert student: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	student.ID = id
	return nil
}

func (r *rosterRepository) GetByName(name string) (*entity.Student, error) {
	student := &entity.Student{}
	query := `
		SELECT id, name, email, slack_id, updated_at
		FROM students
		WHERE name = ?
	`

	err := r.db.QueryRow(query, name).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.SlackID,
		&student.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	return student, nil
}

func (r *rosterRepository) GetAll() ([]*entity.Student, error) {
	query := `
		SELECT id, name, email, slack_id, updated_at
		FROM students
		ORDER BY id ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get students: %w", err)
	}
	defer rows.Close()

	var students []*entity.Student
	for rows.Next() {
		student := &entity.Student{}
		err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.SlackID,
			&student.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, student)
	}

	return students, nil
}

func (r *rosterRepository) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM students`)
	if err != nil {
		return fmt.Errorf("failed to delete students: %w", err)
	}

	return nil
}
