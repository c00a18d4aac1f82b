package dto

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/backoffice/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{shared.CodeValidation, http.StatusUnprocessableEntity},
		{shared.CodeNotFound, http.StatusNotFound},
		{shared.CodeConflict, http.StatusConflict},
		{shared.CodeUnauthorized, http.StatusUnauthorized},
		{shared.CodeInternal, http.StatusInternalServerError},
		{"SOMETHING_ELSE", http.StatusInternalServerError},
	}
	for _, c := range cases {
		assert.Equal(t, c.status, HTTPStatus(c.code), c.code)
	}
}

func TestFromError_DomainError(t *testing.T) {
	status, code, message := FromError(shared.NewValidationError("quantity must be positive"))

	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, shared.CodeValidation, code)
	assert.Equal(t, "quantity must be positive", message)
}

func TestFromError_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("creating transaction: %w", shared.ErrInsufficientStock)

	status, code, _ := FromError(wrapped)

	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, shared.CodeConflict, code)
}

func TestFromError_UnknownErrorHidesDetail(t *testing.T) {
	status, code, message := FromError(assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, shared.CodeInternal, code)
	assert.NotContains(t, message, assert.AnError.Error())
}

func TestListRequest_ToFilter(t *testing.T) {
	filter := ListRequest{Page: 3, Limit: 50, OrderBy: "name", OrderDir: "asc", Search: "rice"}.ToFilter()

	assert.Equal(t, 3, filter.Page)
	assert.Equal(t, 50, filter.Limit)
	assert.Equal(t, "name", filter.OrderBy)
	assert.Equal(t, "asc", filter.OrderDir)
	assert.Equal(t, "rice", filter.Search)
}

func TestListRequest_ToFilterDefaults(t *testing.T) {
	filter := ListRequest{}.ToFilter()

	assert.Equal(t, 1, filter.Page)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, "created_at", filter.OrderBy)
	assert.Equal(t, "desc", filter.OrderDir)
}
