package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dnevnik/dnevnik-backend/internal/middleware"
	"github.com/dnevnik/dnevnik-backend/internal/model"
	"github.com/dnevnik/dnevnik-backend/internal/response"
	"github.com/dnevnik/dnevnik-backend/internal/service"
)

// StatisticsHandler handles weekly report endpoints.
type StatisticsHandler struct {
	statisticsService *service.StatisticsService
}

// NewStatisticsHandler creates a new StatisticsHandler.
func NewStatisticsHandler(statisticsService *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// GetWeekly godoc
// GET /api/v1/statistics/weekly?startDate=&classId=
// Returns the 7-day report for one class, or for every class (ordered
// array) when an admin omits classId.
func (h *StatisticsHandler) GetWeekly(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	startDate, ok := parseDateQuery(c, "startDate")
	if !ok {
		return
	}

	classID, ok := parseOptionalClassID(c)
	if !ok {
		return
	}

	if classID == nil && claims.Role == model.RoleAdmin {
		reports, err := h.statisticsService.WeeklyAll(c.Request.Context(), startDate)
		if err != nil {
			failDomain(c, err)
			return
		}
		response.Success(c, http.StatusOK, reports)
		return
	}

	report, err := h.statisticsService.Weekly(c.Request.Context(), claims, startDate, classID)
	if err != nil {
		failDomain(c, err)
		return
	}

	response.Success(c, http.StatusOK, report)
}
