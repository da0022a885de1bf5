package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nordkitchen/foodtruck-manager/internal/cache"
	dbpkg "github.com/nordkitchen/foodtruck-manager/internal/db"
	"github.com/nordkitchen/foodtruck-manager/internal/models"
	"github.com/nordkitchen/foodtruck-manager/internal/repository"
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

func newBookingService(db *gorm.DB, c *cache.Cache) *BookingService {
	return NewBookingService(
		repository.New[models.Client](db),
		repository.New[models.Location](db),
		repository.New[models.Booking](db, "Client", "Location", "Status", "Participants", "TimeSlot"),
		c,
		nil,
		zerolog.Nop(),
	)
}

func newProductService(db *gorm.DB, c *cache.Cache) *ProductService {
	return NewProductService(
		repository.New[models.Product](db, "Category", "Ingredients"),
		repository.New[models.Ingredient](db),
		db,
		c,
		nil,
		zerolog.Nop(),
	)
}

func sampleBooking(date, email string) CreateBookingInput {
	return CreateBookingInput{
		FirstName:      "Figge",
		LastName:       "Ferrum",
		PhoneNumber:    "0701234567",
		Email:          email,
		Address:        "Storgatan 1",
		PostalCode:     "11122",
		City:           "Stockholm",
		Date:           date,
		StatusID:       1,
		ParticipantsID: 1,
		TimeSlotID:     1,
	}
}
