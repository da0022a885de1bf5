package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nordkitchen/foodtruck-manager/internal/config"
	"github.com/nordkitchen/foodtruck-manager/internal/models"
)

// New opens the entity store selected by the config: a postgres database,
// an sqlite file, or the ephemeral in-memory sqlite store.
func New(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBUrl)
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}

	if cfg.InMemory() {
		// a second connection would see an empty in-memory database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := Seed(db); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Status{},
		&models.Participants{},
		&models.TimeSlot{},
		&models.Category{},
		&models.Ingredient{},
		&models.Client{},
		&models.Location{},
		&models.Booking{},
		&models.Product{},
		&models.User{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Seed inserts the fixed reference rows the menu's option tables map onto.
// Safe to run repeatedly.
func Seed(db *gorm.DB) error {
	statuses := []models.Status{
		{ID: 1, StatusText: "Booked"},
		{ID: 2, StatusText: "Canceled"},
		{ID: 3, StatusText: "Completed"},
	}
	for _, s := range statuses {
		if err := db.FirstOrCreate(&models.Status{}, s).Error; err != nil {
			return err
		}
	}

	participants := []models.Participants{
		{ID: 1, Amount: "1-9"},
		{ID: 2, Amount: "10-19"},
		{ID: 3, Amount: "20+"},
	}
	for _, p := range participants {
		if err := db.FirstOrCreate(&models.Participants{}, p).Error; err != nil {
			return err
		}
	}

	timeSlots := []models.TimeSlot{
		{ID: 1, StartTime: "0800", EndTime: "1100"},
		{ID: 2, StartTime: "1200", EndTime: "1500"},
		{ID: 3, StartTime: "1700", EndTime: "2100"},
	}
	for _, t := range timeSlots {
		if err := db.FirstOrCreate(&models.TimeSlot{}, t).Error; err != nil {
			return err
		}
	}

	categories := []models.Category{
		{ID: 1, Name: "Side"},
		{ID: 2, Name: "Main"},
		{ID: 3, Name: "Beverage"},
	}
	for _, c := range categories {
		if err := db.FirstOrCreate(&models.Category{}, c).Error; err != nil {
			return err
		}
	}

	ingredients := []string{
		"Beef patty", "Brioche bun", "Cheddar", "Lettuce", "Tomato",
		"Pickles", "Fries", "Onion rings", "Cola", "Lemonade", "Coffee",
	}
	for _, name := range ingredients {
		if err := db.FirstOrCreate(&models.Ingredient{}, models.Ingredient{Name: name}).Error; err != nil {
			return err
		}
	}

	return nil
}
