package dto

import (
	"errors"
	"net/http"

	"github.com/backoffice/backend/internal/domain/shared"
)

// errorCodeHTTPStatus maps stable domain error codes to HTTP status codes.
// Validation failures map to 422; malformed requests that never reach the
// domain (binding errors) are reported as 400 by the handlers directly.
var errorCodeHTTPStatus = map[string]int{
	shared.CodeValidation:   http.StatusUnprocessableEntity,
	shared.CodeNotFound:     http.StatusNotFound,
	shared.CodeConflict:     http.StatusConflict,
	shared.CodeUnauthorized: http.StatusUnauthorized,
	shared.CodeInternal:     http.StatusInternalServerError,
}

// HTTPStatus returns the HTTP status for a domain error code, defaulting to
// 500 for unknown codes
func HTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// FromError converts any error into an envelope-ready (status, code,
// message) triple. Non-domain errors are reported as INTERNAL with a generic
// message so persistence detail never leaks.
func FromError(err error) (int, string, string) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return HTTPStatus(domainErr.Code), domainErr.Code, domainErr.Message
	}
	return http.StatusInternalServerError, shared.CodeInternal, "An unexpected error occurred"
}
