package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// RouteHandler serves route planning endpoints
type RouteHandler struct {
	routes   *service.RouteService
	settings *service.SettingsService
}

func NewRouteHandler(routes *service.RouteService, settings *service.SettingsService) *RouteHandler {
	return &RouteHandler{routes: routes, settings: settings}
}

// Search handles POST /api/path/search. Tags and warnings are localized
// from the user_id query's saved language unless lang is given explicitly.
func (h *RouteHandler) Search(c *gin.Context) {
	lang := resolveLang(c, h.settings, queryUserID(c))
	var req models.PathSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid search payload")
		return
	}
	result, err := h.routes.Search(c.Request.Context(), req, lang)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, result)
}

// Preview handles POST /api/routes
func (h *RouteHandler) Preview(c *gin.Context) {
	lang := resolveLang(c, h.settings, queryUserID(c))
	var req models.RoutesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid routes payload")
		return
	}
	routes, source, err := h.routes.Preview(c.Request.Context(), req, lang)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, gin.H{
		"routes":       routes,
		"route_source": source,
	})
}
