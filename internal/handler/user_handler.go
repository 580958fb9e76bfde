package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dnevnik/dnevnik-backend/internal/middleware"
	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/response"
	"github.com/dnevnik/dnevnik-backend/internal/service"
	"github.com/dnevnik/dnevnik-backend/internal/validator"
)

// UserHandler handles account management endpoints.
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// GET /api/v1/users (admin)
// Lists all accounts with their primary class.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, users)
}

// RegisterTeacher godoc
// POST /api/v1/users (admin)
// Creates a teacher account.
func (h *UserHandler) RegisterTeacher(c *gin.Context) {
	var req model.CreateTeacherRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.RegisterTeacher(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":      user.ID,
		"login":   user.Login,
		"role":    user.Role,
		"classId": nil,
	})
}

// UpdateCredentials godoc
// PATCH /api/v1/users/:id/credentials (admin)
// Updates a teacher's login and/or password.
func (h *UserHandler) UpdateCredentials(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateCredentialsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.userService.UpdateTeacherCredentials(c.Request.Context(), id, &req); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "credentials updated"})
}

// UpdateOwnCredentials godoc
// PATCH /api/v1/profile/credentials
// Updates the caller's own login and/or password.
func (h *UserHandler) UpdateOwnCredentials(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	var req model.UpdateCredentialsRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.userService.UpdateOwnCredentials(c.Request.Context(), claims.UserID, &req); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "credentials updated"})
}

// UpdateRole godoc
// PATCH /api/v1/users/:id/role (admin)
// Changes an account's role. Promotion records the acting admin in
// promotedBy; an appointee may never change their appointer's role.
func (h *UserHandler) UpdateRole(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.UpdateRoleRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.userService.UpdateRole(c.Request.Context(), claims.UserID, id, req.Role); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "role updated"})
}
