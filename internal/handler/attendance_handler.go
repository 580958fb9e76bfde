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

// AttendanceHandler handles register read and save endpoints.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// GetAttendance godoc
// GET /api/v1/attendance?date=&classId=
// Returns one register sheet. A teacher omitting classId gets their own
// class; an admin omitting classId gets every class as an ordered array.
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	classID, ok := parseOptionalClassID(c)
	if !ok {
		return
	}

	if classID == nil && claims.Role == model.RoleAdmin {
		sheets, err := h.attendanceService.Sheets(c.Request.Context(), date)
		if err != nil {
			failDomain(c, err)
			return
		}
		response.Success(c, http.StatusOK, sheets)
		return
	}

	sheet, err := h.attendanceService.Sheet(c.Request.Context(), claims, date, classID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, sheet)
}

// SaveAttendance godoc
// PUT /api/v1/attendance?date=
// Applies a whole-batch attendance upsert for one class and date.
func (h *AttendanceHandler) SaveAttendance(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	date, ok := parseDateQuery(c, "date")
	if !ok {
		return
	}

	var req model.SaveAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.attendanceService.Save(c.Request.Context(), claims, date, &req); err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "attendance saved"})
}

// parseOptionalClassID reads the optional classId query parameter.
func parseOptionalClassID(c *gin.Context) (*int, bool) {
	raw := c.Query("classId")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return nil, false
	}
	return &id, true
}
