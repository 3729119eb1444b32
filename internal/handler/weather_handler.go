package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/internal/weather"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// WeatherHandler serves weather endpoints
type WeatherHandler struct {
	weather  *weather.Service
	settings *service.SettingsService
}

func NewWeatherHandler(w *weather.Service, settings *service.SettingsService) *WeatherHandler {
	return &WeatherHandler{weather: w, settings: settings}
}

// Get handles GET /api/weather?lat=..&lon=..
func (h *WeatherHandler) Get(c *gin.Context) {
	lang := resolveLang(c, h.settings, queryUserID(c))
	lat, lon, ok := queryCoord(c, "lat", "lon")
	if !ok {
		return
	}
	w := h.weather.Get(lat, lon, lang)
	response.Success(c, gin.H{
		"weather":                w,
		"cycling_recommendation": h.weather.CyclingRecommendation(w, lang),
	})
}

// Route handles GET /api/weather/route, reporting the weather at the
// midpoint between the route endpoints
func (h *WeatherHandler) Route(c *gin.Context) {
	lang := resolveLang(c, h.settings, queryUserID(c))
	fromLat, fromLon, ok := queryCoord(c, "from_lat", "from_lon")
	if !ok {
		return
	}
	toLat, toLon, ok := queryCoord(c, "to_lat", "to_lon")
	if !ok {
		return
	}
	w := h.weather.Get((fromLat+toLat)/2, (fromLon+toLon)/2, lang)
	response.Success(c, gin.H{
		"weather":                w,
		"cycling_recommendation": h.weather.CyclingRecommendation(w, lang),
	})
}

func queryCoord(c *gin.Context, latName, lonName string) (float64, float64, bool) {
	lat, err := strconv.ParseFloat(c.Query(latName), 64)
	if err != nil {
		response.BadRequest(c, "invalid "+latName)
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(c.Query(lonName), 64)
	if err != nil {
		response.BadRequest(c, "invalid "+lonName)
		return 0, 0, false
	}
	return lat, lon, true
}
