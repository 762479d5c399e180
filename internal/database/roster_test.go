package database

import (
	"context"
	"testing"

	"github.com/romanibanez/booking-reminder-bot/internal/domain/contract"
	"github.com/romanibanez/booking-reminder-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterRepository_Upsert(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRosterRepo(db.conn)

	student := &entity.Student{
		Name:    "Alice Adams",
		Email:   "alice@x.com",
		SlackID: "U1",
	}

	err := repo.Upsert(student)
	require.NoError(t, err, "Failed to upsert student")
	assert.NotZero(t, student.ID, "Expected student ID to be set after creation")

	// Upserting the same name updates the row instead of duplicating it.
	updated := &entity.Student{
		Name:    "Alice Adams",
		Email:   "alice.adams@x.com",
		SlackID: "U1",
	}
	err = repo.Upsert(updated)
	require.NoError(t, err)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "alice.adams@x.com", all[0].Email)
}

func TestRosterRepository_GetByName(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRosterRepo(db.conn)

	original := &entity.Student{
		Name:    "Bob Brown",
		Email:   "bob@x.com",
		SlackID: "U2",
	}
	err := repo.Upsert(original)
	require.NoError(t, err, "Failed to create test student")

	found, err := repo.GetByName("Bob Brown")
	require.NoError(t, err, "Failed to get student by name")
	require.NotNil(t, found, "Expected to find student")

	assert.Equal(t, original.Name, found.Name)
	assert.Equal(t, original.Email, found.Email)
	assert.Equal(t, original.SlackID, found.SlackID)
	assert.False(t, found.UpdatedAt.IsZero())

	// Test not found
	notFound, err := repo.GetByName("NONEXISTENT")
	require.NoError(t, err, "Unexpected error when student not found")
	assert.Nil(t, notFound, "Expected nil when student not found")
}

func TestRosterRepository_GetAll_Order(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newRosterRepo(db.conn)

	names := []string{"Carol", "Alice", "Bob"}
	for _, name := range names {
		err := repo.Upsert(&entity.Student{Name: name, Email: name + "@x.com"})
		require.NoError(t, err)
	}

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Insertion order, not alphabetical.
	for i, name := range names {
		assert.Equal(t, name, all[i].Name)
	}
}

func TestInstance_WithTransaction_ReplacesRoster(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.Roster().Upsert(&entity.Student{Name: "Old Entry", Email: "old@x.com"})
	require.NoError(t, err)

	err = dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Roster().DeleteAll(); err != nil {
			return err
		}
		return tx.Roster().Upsert(&entity.Student{Name: "New Entry", Email: "new@x.com", SlackID: "U9"})
	})
	require.NoError(t, err)

	all, err := dm.Roster().GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "New Entry", all[0].Name)
}

func TestInstance_WithTransaction_RollsBackOnError(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	dm := NewInstance(db)

	err := dm.Roster().Upsert(&entity.Student{Name: "Keep Me", Email: "keep@x.com"})
	require.NoError(t, err)

	err = dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Roster().DeleteAll(); err != nil {
			return err
		}
		return assert.AnError
	})
	require.Error(t, err)

	all, err := dm.Roster().GetAll()
	require.NoError(t, err)
	require.Len(t, all, 1, "rollback must restore the roster")
	assert.Equal(t, "Keep Me", all[0].Name)
}
