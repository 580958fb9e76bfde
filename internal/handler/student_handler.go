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

// StudentHandler handles student registry endpoints.
type StudentHandler struct {
	studentService *service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService *service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// ListStudents godoc
// GET /api/v1/classes/:classId/students
// Lists the students of a class; admin or owning teacher only.
func (h *StudentHandler) ListStudents(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	classID, err := strconv.Atoi(c.Param("classId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	students, err := h.studentService.ListByClass(c.Request.Context(), claims, classID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, students)
}

// AddStudent godoc
// POST /api/v1/classes/:classId/students
// Adds a student to a class; admin or owning teacher only.
func (h *StudentHandler) AddStudent(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	classID, err := strconv.Atoi(c.Param("classId"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Add(c.Request.Context(), claims, classID, req.FullName)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusCreated, student)
}

// UpdateStudent godoc
// PATCH /api/v1/students/:id
// Updates a student's name and/or active flag; admin or owning teacher only.
func (h *StudentHandler) UpdateStudent(c *gin.Context) {
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

	var req model.UpdateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	student, err := h.studentService.Update(c.Request.Context(), claims, id, &req)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, student)
}
