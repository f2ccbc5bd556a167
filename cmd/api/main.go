package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-scheduler/internal/cache"
	"github.com/clinicdesk/clinic-scheduler/internal/config"
	dbpkg "github.com/clinicdesk/clinic-scheduler/internal/db"
	"github.com/clinicdesk/clinic-scheduler/internal/holidays"
	"github.com/clinicdesk/clinic-scheduler/internal/infra/storage"
	"github.com/clinicdesk/clinic-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	rdb := cache.NewRedis(cfg)
	holidaySvc := holidays.NewService(cfg.HolidayCountry, rdb)
	uploader := storage.NewS3Uploader(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, holidaySvc, uploader)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
