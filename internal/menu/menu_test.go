package menu

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/nordkitchen/foodtruck-manager/internal/db"
	"github.com/nordkitchen/foodtruck-manager/internal/models"
	"github.com/nordkitchen/foodtruck-manager/internal/repository"
	"github.com/nordkitchen/foodtruck-manager/internal/service"
)

// newMenu wires both services onto a fresh in-memory store and feeds the
// menu a scripted input stream.
func newMenu(t *testing.T, script string) (*Menu, *bytes.Buffer) {
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

	bookings := service.NewBookingService(
		repository.New[models.Client](db),
		repository.New[models.Location](db),
		repository.New[models.Booking](db, "Client", "Location", "Status", "Participants", "TimeSlot"),
		nil,
		nil,
		zerolog.Nop(),
	)
	products := service.NewProductService(
		repository.New[models.Product](db, "Category", "Ingredients"),
		repository.New[models.Ingredient](db),
		db,
		nil,
		nil,
		zerolog.Nop(),
	)

	var out bytes.Buffer
	return New(bookings, products, strings.NewReader(script), &out), &out
}

func TestRunAddsProductAndListsIt(t *testing.T) {
	script := strings.Join([]string{
		"1",          // add product
		"Burger",     // name
		"89",         // price
		"1",          // Beef patty
		"3",          // Cheddar
		"",           // done picking
		"2",          // category Main
		"2",          // show all products
		"x",          // back to main menu
		"x",          // exit
	}, "\n") + "\n"

	m, out := newMenu(t, script)
	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "The product has been added successfully")
	assert.Contains(t, out.String(), "Name: Burger")
	assert.Contains(t, out.String(), "Category: Main")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunRejectsDuplicateBookingDate(t *testing.T) {
	booking := []string{
		"3",            // add booking
		"Figge",        // first name
		"Ferrum",       // last name
		"0701234567",   // phone
		"figge@f.se",   // email
		"Storgatan 1",  // address
		"11122",        // postal code
		"Stockholm",    // city
		"2026-09-01",   // date
		"2",            // 1200 - 1500
		"3",            // 20+
	}

	script := strings.Join(booking, "\n") + "\n" +
		strings.Join(booking, "\n") + "\n" +
		"x\n"

	m, out := newMenu(t, script)
	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "The booking has been added to the database")
	assert.Contains(t, out.String(), "A booking with the same date already exists")
}

func TestRunRemovesBooking(t *testing.T) {
	script := strings.Join([]string{
		"3", "Anna", "Svensson", "0739876543", "anna@s.se",
		"Lillgatan 2", "22233", "Uppsala", "2026-10-15", "1", "1",
		"4", // show all bookings
		"1", // pick the booking
		"r", // remove
		"y", // confirm
		"x", // exit
	}, "\n") + "\n"

	m, out := newMenu(t, script)
	require.NoError(t, m.Run(context.Background()))

	assert.Contains(t, out.String(), "The booking has been removed from the database")
	assert.Contains(t, out.String(), "No bookings have been added, the list is empty")
}

func TestRunStopsCleanlyWhenInputEnds(t *testing.T) {
	m, _ := newMenu(t, "")
	require.NoError(t, m.Run(context.Background()))
}
