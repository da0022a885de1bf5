package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nordkitchen/foodtruck-manager/internal/config"
	dbpkg "github.com/nordkitchen/foodtruck-manager/internal/db"
	"github.com/nordkitchen/foodtruck-manager/internal/logging"
	"github.com/nordkitchen/foodtruck-manager/internal/middleware"
	"github.com/nordkitchen/foodtruck-manager/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.New(cfg)

	db, err := dbpkg.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open entity store")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Str("driver", cfg.DBDriver).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
