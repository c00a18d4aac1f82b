package shared

// Stable error codes surfaced in API responses.
const (
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeInternal     = "INTERNAL"
)

// DomainError represents a domain-level error with a stable code
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a VALIDATION_ERROR for bad input shape or range
func NewValidationError(message string) *DomainError {
	return NewDomainError(CodeValidation, message)
}

// NewNotFoundError creates a NOT_FOUND error for a missing referenced entity
func NewNotFoundError(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewConflictError creates a CONFLICT error, e.g. when a stock movement
// would drive a running balance negative or a concurrent write lost the race
func NewConflictError(message string) *DomainError {
	return NewDomainError(CodeConflict, message)
}

// NewInternalError creates an INTERNAL error for persistence collaborator
// failures. The message must not expose storage detail to callers.
func NewInternalError(message string) *DomainError {
	return NewDomainError(CodeInternal, message)
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput      = NewDomainError(CodeValidation, "Invalid input provided")
	ErrInsufficientStock = NewDomainError(CodeConflict, "Insufficient stock available")
	ErrUnauthorized      = NewDomainError(CodeUnauthorized, "Not authorized to perform this action")
)
