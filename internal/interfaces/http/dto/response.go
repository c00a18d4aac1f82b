package dto

import (
	"time"

	"github.com/backoffice/backend/internal/domain/shared"
)

// Response is the envelope for single-object and error payloads
type Response struct {
	Message     string     `json:"message"`
	RequestedAt time.Time  `json:"requestedAt"`
	RequestID   string     `json:"requestId"`
	Data        any        `json:"data,omitempty"`
	Error       *ErrorInfo `json:"error,omitempty"`
}

// ListResponse is the envelope for paginated collections
type ListResponse struct {
	Message     string    `json:"message"`
	RequestedAt time.Time `json:"requestedAt"`
	RequestID   string    `json:"requestId"`
	Items       any       `json:"items"`
	Meta        Meta      `json:"meta"`
}

// ErrorInfo carries the stable error code and a safe message
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Meta is the pagination block of a list envelope
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	TotalItems int64 `json:"totalItems"`
}

// NewSuccessResponse wraps data in the standard envelope
func NewSuccessResponse(requestID, message string, data any) Response {
	return Response{
		Message:     message,
		RequestedAt: time.Now().UTC(),
		RequestID:   requestID,
		Data:        data,
	}
}

// NewListResponse wraps a paginated result in the list envelope
func NewListResponse[T any](requestID, message string, page shared.Paginated[T]) ListResponse {
	return ListResponse{
		Message:     message,
		RequestedAt: time.Now().UTC(),
		RequestID:   requestID,
		Items:       page.Items,
		Meta: Meta{
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
			TotalItems: page.TotalItems,
		},
	}
}

// NewErrorResponse wraps an error code and message in the envelope
func NewErrorResponse(requestID, code, message string) Response {
	return Response{
		Message:     message,
		RequestedAt: time.Now().UTC(),
		RequestID:   requestID,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	}
}

// ListRequest is the common pagination and ordering query surface
type ListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"orderBy"`
	OrderDir string `form:"orderDir" binding:"omitempty,oneof=asc desc"`
	Search   string `form:"search"`
}

// ToFilter converts the request to a repository filter, applying defaults
func (r ListRequest) ToFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if r.Page > 0 {
		filter.Page = r.Page
	}
	if r.Limit > 0 {
		filter.Limit = r.Limit
	}
	if r.OrderBy != "" {
		filter.OrderBy = r.OrderBy
	}
	if r.OrderDir != "" {
		filter.OrderDir = r.OrderDir
	}
	filter.Search = r.Search
	return filter
}

// IDRequest binds an :id path parameter
type IDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// DateRangeRequest binds the startDate/endDate window shared by report
// endpoints
type DateRangeRequest struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}
