package contract

import (
	"context"

	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Roster() RosterRepo
}

// RosterRepo defines the contract for the persisted roster
type RosterRepo interface {
	Upsert(student *entity.Student) error
	GetByName(name string) (*entity.Student, error)
	GetAll() ([]*entity.Student, error)
	DeleteAll() error
}
