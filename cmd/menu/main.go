package main

import (
	"context"
	"os"

	"github.com/nordkitchen/foodtruck-manager/internal/audit"
	"github.com/nordkitchen/foodtruck-manager/internal/cache"
	"github.com/nordkitchen/foodtruck-manager/internal/config"
	dbpkg "github.com/nordkitchen/foodtruck-manager/internal/db"
	"github.com/nordkitchen/foodtruck-manager/internal/logging"
	"github.com/nordkitchen/foodtruck-manager/internal/menu"
	"github.com/nordkitchen/foodtruck-manager/internal/models"
	"github.com/nordkitchen/foodtruck-manager/internal/repository"
	"github.com/nordkitchen/foodtruck-manager/internal/service"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg)

	db, err := dbpkg.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open entity store")
	}

	redisClient := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword)
	readCache := cache.New(redisClient, cfg.CacheTTL, log)

	auditor := audit.NewDispatcher(audit.New(db), log)

	bookingService := service.NewBookingService(
		repository.New[models.Client](db),
		repository.New[models.Location](db),
		repository.New[models.Booking](db, "Client", "Location", "Status", "Participants", "TimeSlot"),
		readCache,
		auditor,
		log,
	)

	productService := service.NewProductService(
		repository.New[models.Product](db, "Category", "Ingredients"),
		repository.New[models.Ingredient](db),
		db,
		readCache,
		auditor,
		log,
	)

	m := menu.New(bookingService, productService, os.Stdin, os.Stdout)
	if err := m.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("menu terminated")
	}
}
