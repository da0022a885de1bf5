package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/nordkitchen/foodtruck-manager/internal/db"
	"github.com/nordkitchen/foodtruck-manager/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	require.NoError(t, dbpkg.Seed(db))

	return db
}

func TestCreateAndGetOneRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Client](db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Client{
		FirstName:   "Figge",
		LastName:    "Ferrum",
		PhoneNumber: "0701234567",
		Email:       "figge@ferrum.se",
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	found, err := repo.GetOne(ctx, "email = ?", "figge@ferrum.se")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "Figge", found.FirstName)
	assert.Equal(t, "Ferrum", found.LastName)
	assert.Equal(t, "0701234567", found.PhoneNumber)
}

func TestGetOneAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Client](db)

	found, err := repo.GetOne(context.Background(), "email = ?", "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestExistsIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Booking](db)
	ctx := context.Background()

	first, err := repo.Exists(ctx, "date = ?", "2099-01-01")
	require.NoError(t, err)
	second, err := repo.Exists(ctx, "date = ?", "2099-01-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.False(t, first)

	_, err = repo.Create(ctx, &models.Booking{
		Date: "2099-01-01", StatusID: 1, ClientID: 1,
		ParticipantsID: 1, TimeSlotID: 1, LocationID: 1,
	})
	require.NoError(t, err)

	first, err = repo.Exists(ctx, "date = ?", "2099-01-01")
	require.NoError(t, err)
	second, err = repo.Exists(ctx, "date = ?", "2099-01-01")
	require.NoError(t, err)
	assert.True(t, first)
	assert.Equal(t, first, second)
}

func TestDeleteMissingReturnsFalse(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Booking](db)

	deleted, err := repo.Delete(context.Background(), "date = ?", "2099-01-01")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteRemovesFirstMatch(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Ingredient](db)
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.Ingredient{Name: "Jalapeño"})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, "name = ?", "Jalapeño")
	require.NoError(t, err)
	assert.True(t, deleted)

	exists, err := repo.Exists(ctx, "name = ?", "Jalapeño")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestUpdateMissingReturnsNil(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Client](db)

	updated, err := repo.Update(context.Background(), 12345, &models.Client{
		FirstName: "Ghost", LastName: "Writer", Email: "ghost@example.com",
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestUpdateOverwritesScalars(t *testing.T) {
	db := setupTestDB(t)
	repo := New[models.Client](db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Client{
		FirstName:   "Anna",
		LastName:    "Svensson",
		PhoneNumber: "0709999999",
		Email:       "anna@example.com",
	})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, created.ID, &models.Client{
		FirstName:   "Anna-Lena",
		LastName:    "Svensson",
		PhoneNumber: "",
		Email:       "anna.lena@example.com",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Anna-Lena", updated.FirstName)
	assert.Equal(t, "anna.lena@example.com", updated.Email)
	// zero values overwrite too, this is a full replace
	assert.Equal(t, "", updated.PhoneNumber)
}

func TestGetAllEagerLoadsAssociations(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	clients := New[models.Client](db)
	locations := New[models.Location](db)
	bookings := New[models.Booking](db, "Client", "Location", "Status", "Participants", "TimeSlot")

	client, err := clients.Create(ctx, &models.Client{
		FirstName: "Bo", LastName: "Ek", Email: "bo@ek.se", PhoneNumber: "070",
	})
	require.NoError(t, err)

	location, err := locations.Create(ctx, &models.Location{
		Address: "Storgatan 1", PostalCode: "11122", City: "Stockholm",
	})
	require.NoError(t, err)

	_, err = bookings.Create(ctx, &models.Booking{
		Date:           "2024-06-06",
		StatusID:       1,
		ClientID:       client.ID,
		ParticipantsID: 2,
		TimeSlotID:     3,
		LocationID:     location.ID,
	})
	require.NoError(t, err)

	all, err := bookings.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	got := all[0]
	assert.Equal(t, "bo@ek.se", got.Client.Email)
	assert.Equal(t, "Storgatan 1", got.Location.Address)
	assert.Equal(t, "Booked", got.Status.StatusText)
	assert.Equal(t, "10-19", got.Participants.Amount)
	assert.Equal(t, "1700", got.TimeSlot.StartTime)
	assert.Equal(t, "2100", got.TimeSlot.EndTime)
}
