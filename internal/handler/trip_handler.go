package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// TripHandler serves trip recording endpoints
type TripHandler struct {
	trips    *service.TripService
	settings *service.SettingsService
}

func NewTripHandler(trips *service.TripService, settings *service.SettingsService) *TripHandler {
	return &TripHandler{trips: trips, settings: settings}
}

// Create handles POST /api/trips. The weather summary is localized from the
// owner's saved language unless lang is given explicitly.
func (h *TripHandler) Create(c *gin.Context) {
	var payload models.TripCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "invalid trip payload")
		return
	}
	lang := resolveLang(c, h.settings, payload.UserID)
	trip, err := h.trips.Create(c.Request.Context(), payload, lang)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Created(c, trip)
}

// List handles GET /api/trips. Passing include_private=true returns raw
// endpoints and geometry, intended for the owner's own device.
func (h *TripHandler) List(c *gin.Context) {
	var userID *int64
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.BadRequest(c, "invalid user_id")
			return
		}
		userID = &id
	}
	lang := resolveLang(c, h.settings, queryUserID(c))
	includePrivate := c.Query("include_private") == "true"
	trips, err := h.trips.List(userID, includePrivate)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, trips)
}

// Get handles GET /api/trips/:id
func (h *TripHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := requestLang(c)
	includePrivate := c.Query("include_private") == "true"
	trip, err := h.trips.Get(id, includePrivate)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, trip)
}

// Delete handles DELETE /api/trips/:id
func (h *TripHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := requestLang(c)
	if err := h.trips.Delete(id); err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, gin.H{"deleted": id})
}
