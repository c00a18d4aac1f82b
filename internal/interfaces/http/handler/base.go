package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/backoffice/backend/internal/interfaces/http/dto"
	"github.com/backoffice/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides the common response helpers shared by all handlers
type BaseHandler struct{}

// Success sends a 200 response with data in the standard envelope
func (h *BaseHandler) Success(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(middleware.GetRequestID(c), message, data))
}

// Created sends a 201 response with data in the standard envelope
func (h *BaseHandler) Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(middleware.GetRequestID(c), message, data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response. Used for requests that fail binding
// before reaching the application layer; domain validation failures go
// through HandleError and map to 422.
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.GetRequestID(c), shared.CodeValidation, message))
}

// BindingError sends a 400 response for a request that failed binding,
// flattening validator errors to field-level messages
func (h *BaseHandler) BindingError(c *gin.Context, err error) {
	h.BadRequest(c, middleware.BindingErrorMessage(err))
}

// HandleError converts any error into an envelope response, deriving the
// status code from the domain error code
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	status, code, message := dto.FromError(err)
	c.JSON(status, dto.NewErrorResponse(middleware.GetRequestID(c), code, message))
}

// respondList sends a 200 response with a paginated collection
func respondList[T any](c *gin.Context, message string, page *shared.Paginated[T]) {
	c.JSON(http.StatusOK, dto.NewListResponse(middleware.GetRequestID(c), message, *page))
}

// getUserID extracts the authenticated user's ID from the JWT context
func getUserID(c *gin.Context) (uuid.UUID, error) {
	userID := middleware.GetJWTUserID(c)
	if userID == "" {
		return uuid.Nil, errors.New("user ID not found in context")
	}
	return uuid.Parse(userID)
}

// bindDateRange binds and parses the startDate/endDate query window. On
// failure it writes the error response and returns ok=false.
func (h *BaseHandler) bindDateRange(c *gin.Context) (shared.DateRange, bool) {
	var req dto.DateRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindingError(c, err)
		return shared.DateRange{}, false
	}
	r, err := shared.ParseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		h.HandleError(c, err)
		return shared.DateRange{}, false
	}
	return r, true
}

// bindInterval parses the optional interval query parameter, defaulting to
// day buckets. On failure it writes the error response and returns ok=false.
func (h *BaseHandler) bindInterval(c *gin.Context) (shared.Interval, bool) {
	interval, err := shared.ParseInterval(c.Query("interval"))
	if err != nil {
		h.HandleError(c, err)
		return "", false
	}
	return interval, true
}

// parseID parses the :id path parameter
func parseID(c *gin.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// parseDate accepts an RFC3339 timestamp or a bare ISO date
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, shared.NewValidationError("date must be RFC3339 or YYYY-MM-DD")
	}
	return t, nil
}
