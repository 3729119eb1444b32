package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/openvelo/road-backend-go/internal/models"
	"github.com/openvelo/road-backend-go/internal/service"
	"github.com/openvelo/road-backend-go/pkg/response"
)

// UserHandler serves user endpoints
type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Create handles POST /api/users. Posting an existing username returns
// that user instead of an error.
func (h *UserHandler) Create(c *gin.Context) {
	var payload models.UserCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "username is required")
		return
	}
	user, err := h.users.Create(payload)
	if err != nil {
		writeError(c, err, requestLang(c))
		return
	}
	response.Created(c, user)
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List()
	if err != nil {
		writeError(c, err, requestLang(c))
		return
	}
	response.Success(c, users)
}

// Get handles GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	lang := requestLang(c)
	user, err := h.users.Get(id)
	if err != nil {
		writeError(c, err, lang)
		return
	}
	response.Success(c, user)
}
