package handler

import (
	"errors"
	"log"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/i18n"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// requestLang resolves the response language from the lang query parameter,
// falling back to English for unknown codes
func requestLang(c *gin.Context) string {
	lang := c.Query("lang")
	if !i18n.ValidLanguage(lang) {
		return i18n.DefaultLanguage
	}
	return lang
}

// resolveLang picks the response language. An explicit lang query wins,
// otherwise the named user's saved settings decide, otherwise English.
func resolveLang(c *gin.Context, settings *service.SettingsService, userID int64) string {
	if lang := c.Query("lang"); i18n.ValidLanguage(lang) {
		return lang
	}
	if settings != nil && userID > 0 {
		return settings.Language(userID)
	}
	return i18n.DefaultLanguage
}

// queryUserID reads the optional user_id query parameter, zero when absent
// or malformed
func queryUserID(c *gin.Context) int64 {
	id, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// pathID parses a numeric path parameter, writing a 400 on failure
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// writeError maps service errors onto HTTP responses, localizing the
// message. Unexpected errors are logged and reported as opaque 500s.
func writeError(c *gin.Context, err error, lang string) {
	var notFound *service.NotFoundError
	var invalid *service.InvalidArgumentError
	switch {
	case errors.As(err, &notFound):
		response.NotFound(c, i18n.Translate(notFound.Key, lang))
	case errors.As(err, &invalid):
		response.BadRequest(c, i18n.Translate(invalid.Key, lang))
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.InternalError(c, "internal error")
	}
}
