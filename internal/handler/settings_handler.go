package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// SettingsHandler serves per-user settings endpoints
type SettingsHandler struct {
	settings *service.SettingsService
}

func NewSettingsHandler(settings *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

// Get handles GET /api/users/:id/settings
func (h *SettingsHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := resolveLang(c, h.settings, id)
	settings, err := h.settings.Get(id)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, settings)
}

// Put handles PUT /api/users/:id/settings, replacing the settings wholesale
func (h *SettingsHandler) Put(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := resolveLang(c, h.settings, id)
	var payload models.Settings
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid settings payload")
		return
	}
	settings, err := h.settings.Put(id, payload)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, settings)
}

// Patch handles PATCH /api/users/:id/settings, merging only the provided
// fields
func (h *SettingsHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := resolveLang(c, h.settings, id)
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		response.BadRequest(c, "invalid settings payload")
		return
	}
	settings, err := h.settings.Patch(id, fields)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, settings)
}
