package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/detection"
	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// SegmentHandler serves road segment endpoints
type SegmentHandler struct {
	segments *service.SegmentService
	settings *service.SettingsService
}

func NewSegmentHandler(segments *service.SegmentService, settings *service.SettingsService) *SegmentHandler {
	return &SegmentHandler{segments: segments, settings: settings}
}

// List handles GET /api/segments. Labels are localized from the user_id
// query's saved language unless lang is given explicitly.
func (h *SegmentHandler) List(c *gin.Context) {
	lang := resolveLang(c, h.settings, queryUserID(c))
	segs, err := h.segments.List(lang)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, segs)
}

// Get handles GET /api/segments/:id
func (h *SegmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := resolveLang(c, h.settings, queryUserID(c))
	seg, err := h.segments.Get(id, lang)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, seg)
}

// Create handles POST /api/segments
func (h *SegmentHandler) Create(c *gin.Context) {
	var payload models.SegmentCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid segment payload")
		return
	}
	seg, err := h.segments.Create(payload)
	if err != nil {
		writeError(c, err, requestLang(c))
		return
	}
	response.Created(c, seg)
}

// AutoDetect handles POST /api/segments/:id/auto-detect. A request without
// sensor readings yields an explicit unknown verdict rather than a guess.
func (h *SegmentHandler) AutoDetect(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := requestLang(c)

	var data *detection.SensorData
	if c.Request.ContentLength > 0 {
		var payload detection.SensorData
		if err := c.ShouldBindJSON(&payload); err != nil {
			response.BadRequest(c, "invalid sensor payload")
			return
		}
		data = &payload
	}

	outcome, err := h.segments.AutoDetect(id, data)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, outcome)
}

type applyDetectionRequest struct {
	Status string `json:"status" binding:"required"`
}

// ApplyDetection handles POST /api/segments/:id/apply-detection
func (h *SegmentHandler) ApplyDetection(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := requestLang(c)
	var payload applyDetectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "status is required")
		return
	}
	change, err := h.segments.ApplyDetection(id, payload.Status)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, change)
}
