package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// StatsHandler serves the dashboard summary endpoint
type StatsHandler struct {
	stats *service.StatsService
}

func NewStatsHandler(stats *service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Summary handles GET /api/stats
func (h *StatsHandler) Summary(c *gin.Context) {
	lang := requestLang(c)
	summary, err := h.stats.Summary(lang)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, summary)
}
