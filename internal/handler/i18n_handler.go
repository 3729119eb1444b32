package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/i18n"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// I18nHandler serves translation endpoints
type I18nHandler struct{}

func NewI18nHandler() *I18nHandler {
	return &I18nHandler{}
}

// Languages handles GET /api/i18n/languages
func (h *I18nHandler) Languages(c *gin.Context) {
	response.Success(c, i18n.AvailableLanguages())
}

// Translations handles GET /api/i18n/translations. Unknown languages come
// back as English with the resolved code in the payload.
func (h *I18nHandler) Translations(c *gin.Context) {
	lang, table := i18n.Translations(c.DefaultQuery("lang", i18n.DefaultLanguage))
	response.Success(c, gin.H{
		"language":     lang,
		"translations": table,
	})
}
