package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/response"
	"github.com/dnevnik/dnevnik-backend/internal/service"
	"github.com/dnevnik/dnevnik-backend/internal/validator"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	userService *service.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Login godoc
// POST /api/v1/auth/login
// Validates login + password, returns a 7-day JWT. A nonexistent login and
// a wrong password produce the same response.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken": token,
		"role":        user.Role,
		"userId":      user.ID,
	})
}
