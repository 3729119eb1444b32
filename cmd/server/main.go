package main

import (
	"log"

	"github.com/openvelo/road-backend-go/internal/aggregation"
	"github.com/openvelo/road-backend-go/internal/api"
	"github.com/openvelo/road-backend-go/internal/config"
	"github.com/openvelo/road-backend-go/internal/database"
	"github.com/openvelo/road-backend-go/internal/handler"
	"github.com/openvelo/road-backend-go/internal/repository"
	"github.com/openvelo/road-backend-go/internal/routing"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/internal/weather"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	db := database.GetDB()
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if cfg.SeedDemoData {
		if err := database.Seed(db); err != nil {
			log.Fatal("Failed to seed demo data:", err)
		}
	}

	userRepo := repository.NewUserRepository(db)
	segmentRepo := repository.NewSegmentRepository(db)
	reportRepo := repository.NewReportRepository(db)
	tripRepo := repository.NewTripRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	osrm := routing.NewOSRMClient(cfg.OSRMBaseURL, cfg.OSRMTimeout)
	weatherSvc := weather.NewService()
	engine := aggregation.NewEngine(segmentRepo, reportRepo, cfg.AggregationWorkers)

	userSvc := service.NewUserService(userRepo)
	segmentSvc := service.NewSegmentService(segmentRepo, userRepo)
	reportSvc := service.NewReportService(reportRepo, segmentRepo)
	routeSvc := service.NewRouteService(segmentRepo, osrm, weatherSvc)
	tripSvc := service.NewTripService(tripRepo, userRepo, osrm, weatherSvc)
	settingsSvc := service.NewSettingsService(settingsRepo, userRepo)
	statsSvc := service.NewStatsService(userRepo, segmentRepo, reportRepo, tripRepo)

	router := api.SetupRouter(api.Handlers{
		Users:       handler.NewUserHandler(userSvc),
		Segments:    handler.NewSegmentHandler(segmentSvc, settingsSvc),
		Reports:     handler.NewReportHandler(reportSvc),
		Aggregation: handler.NewAggregationHandler(engine),
		Routes:      handler.NewRouteHandler(routeSvc, settingsSvc),
		Trips:       handler.NewTripHandler(tripSvc, settingsSvc),
		Weather:     handler.NewWeatherHandler(weatherSvc, settingsSvc),
		I18n:        handler.NewI18nHandler(),
		Settings:    handler.NewSettingsHandler(settingsSvc),
		Stats:       handler.NewStatsHandler(statsSvc),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
