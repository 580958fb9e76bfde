package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dnevnik/dnevnik-backend/internal/response"
	"github.com/dnevnik/dnevnik-backend/internal/service"
)

// failDomain maps a service error onto the HTTP error taxonomy. Unknown
// errors are logged and surfaced as an opaque internal error.
func failDomain(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
	case errors.Is(err, service.ErrForbidden):
		response.Fail(c, http.StatusForbidden, response.ErrForbidden)
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrConflict):
		response.Fail(c, http.StatusConflict, response.ErrConflict)
	case errors.Is(err, service.ErrNoUpdateFields):
		response.Fail(c, http.StatusBadRequest, response.ErrNoUpdateFields)
	case errors.Is(err, service.ErrClassIDRequired):
		response.Fail(c, http.StatusBadRequest, response.ErrClassIDRequired)
	case errors.Is(err, service.ErrStudentNotInClass):
		response.Fail(c, http.StatusBadRequest, response.ErrStudentNotInClass)
	case errors.Is(err, service.ErrInvalidStatus):
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidStatus)
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unhandled service error")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}

// parseDateQuery reads a required YYYY-MM-DD query parameter.
func parseDateQuery(c *gin.Context, name string) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		return time.Time{}, false
	}
	date, err := time.Parse(service.DateFormat, raw)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidDate)
		return time.Time{}, false
	}
	return date, true
}
