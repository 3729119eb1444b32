package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/handler"
	"github.com/openvelo/road-backend-go/internal/middleware"
)

// Handlers groups everything the router wires up
type Handlers struct {
	Users       *handler.UserHandler
	Segments    *handler.SegmentHandler
	Reports     *handler.ReportHandler
	Aggregation *handler.AggregationHandler
	Routes      *handler.RouteHandler
	Trips       *handler.TripHandler
	Weather     *handler.WeatherHandler
	I18n        *handler.I18nHandler
	Settings    *handler.SettingsHandler
	Stats       *handler.StatsHandler
}

// SetupRouter builds the gin engine with all routes and middleware
func SetupRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS for the mobile web client
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Road Backend API is running",
		})
	})

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", h.Users.Create)
			users.GET("", h.Users.List)
			users.GET("/:id", h.Users.Get)
			users.GET("/:id/settings", h.Settings.Get)
			users.PUT("/:id/settings", h.Settings.Put)
			users.PATCH("/:id/settings", h.Settings.Patch)
		}

		segments := api.Group("/segments")
		{
			segments.GET("", h.Segments.List)
			segments.POST("", h.Segments.Create)
			segments.GET("/:id", h.Segments.Get)
			segments.POST("/:id/reports", h.Reports.Create)
			segments.GET("/:id/reports", h.Reports.ListBySegment)
			segments.POST("/:id/auto-confirm-reports", h.Reports.AutoConfirm)
			segments.GET("/:id/aggregate", h.Aggregation.AggregateSegment)
			segments.POST("/:id/auto-detect", h.Segments.AutoDetect)
			segments.POST("/:id/apply-detection", h.Segments.ApplyDetection)
		}

		reports := api.Group("/reports")
		{
			reports.POST("/batch-confirm", h.Reports.BatchConfirm)
			reports.POST("/:id/confirm", h.Reports.Confirm)
		}

		api.POST("/aggregation/trigger", h.Aggregation.Trigger)

		api.POST("/routes", h.Routes.Preview)
		api.POST("/path/search", h.Routes.Search)

		trips := api.Group("/trips")
		{
			trips.POST("", h.Trips.Create)
			trips.GET("", h.Trips.List)
			trips.GET("/:id", h.Trips.Get)
			trips.DELETE("/:id", h.Trips.Delete)
		}

		api.GET("/weather", h.Weather.Get)
		api.GET("/weather/route", h.Weather.Route)

		api.GET("/i18n/languages", h.I18n.Languages)
		api.GET("/i18n/translations", h.I18n.Translations)

		api.GET("/stats", h.Stats.Summary)
	}

	return r
}
