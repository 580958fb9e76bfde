package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dnevnik/dnevnik-backend/internal/middleware"
	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/response"
	"github.com/dnevnik/dnevnik-backend/internal/service"
	"github.com/dnevnik/dnevnik-backend/internal/validator"
)

// ClassHandler handles class registry endpoints.
type ClassHandler struct {
	classService *service.ClassService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService *service.ClassService) *ClassHandler {
	return &ClassHandler{classService: classService}
}

// ListClasses godoc
// GET /api/v1/classes
// Admins see every class, teachers only their own.
func (h *ClassHandler) ListClasses(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	classes, err := h.classService.ListFor(c.Request.Context(), claims)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, classes)
}

// CreateClass godoc
// POST /api/v1/classes (admin)
// Creates a class owned by an existing teacher.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req model.CreateClassRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	class, err := h.classService.Create(c.Request.Context(), req.Name, req.TeacherID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, class)
}
