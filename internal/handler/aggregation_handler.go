package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/aggregation"
	"github.com/openvelo/road-backend-go/internal/i18n"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// AggregationHandler serves status aggregation endpoints
type AggregationHandler struct {
	engine *aggregation.Engine
}

func NewAggregationHandler(engine *aggregation.Engine) *AggregationHandler {
	return &AggregationHandler{engine: engine}
}

// AggregateSegment handles GET /api/segments/:id/aggregate
func (h *AggregationHandler) AggregateSegment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := requestLang(c)
	result, err := h.engine.AggregateSegment(id)
	if err != nil {
		if errors.Is(err, aggregation.ErrSegmentNotFound) {
			response.NotFound(c, i18n.Translate("segment_id not found", lang))
			return
		}
		writeError(c, err, lang)
		return
	}
	response.Success(c, result)
}

// Trigger handles POST /api/aggregation/trigger, sweeping every segment
func (h *AggregationHandler) Trigger(c *gin.Context) {
	summary, err := h.engine.AggregateAll()
	if err != nil {
		writeError(c, err, requestLang(c))
		return
	}
	response.Success(c, summary)
}
