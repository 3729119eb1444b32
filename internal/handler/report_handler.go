package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// ReportHandler serves condition report endpoints
type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Create handles POST /api/segments/:id/reports
func (h *ReportHandler) Create(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload models.ReportCreate
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			response.BadRequest(c, "invalid report payload")
			return
		}
	}
	payload.SegmentID = id
	report, err := h.reports.Create(payload)
	if err != nil {
		writeError(c, err, requestLang(c))
		return
	}
	response.Created(c, report)
}

// ListBySegment handles GET /api/segments/:id/reports
func (h *ReportHandler) ListBySegment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := requestLang(c)
	reports, err := h.reports.ListBySegment(id)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, reports)
}

// Confirm handles POST /api/reports/:id/confirm
func (h *ReportHandler) Confirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := requestLang(c)
	report, err := h.reports.Confirm(id)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, report)
}

type batchConfirmRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1"`
}

// BatchConfirm handles POST /api/reports/batch-confirm
func (h *ReportHandler) BatchConfirm(c *gin.Context) {
	var payload batchConfirmRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "ids is required")
		return
	}
	response.Success(c, h.reports.BatchConfirm(payload.IDs))
}

type autoConfirmRequest struct {
	Threshold int `json:"threshold"`
}

// AutoConfirm handles POST /api/segments/:id/auto-confirm-reports
func (h *ReportHandler) AutoConfirm(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := requestLang(c)
	var payload autoConfirmRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			response.BadRequest(c, "invalid payload")
			return
		}
	}
	summary, err := h.reports.AutoConfirm(id, payload.Threshold)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, summary)
}
