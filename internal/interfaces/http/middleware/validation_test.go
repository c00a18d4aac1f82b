package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	assert.NotNil(t, v)
}

func TestBindingErrorMessage_UsesJSONFieldNames(t *testing.T) {
	type createRequest struct {
		Name       string `json:"name" binding:"required"`
		Percentage int    `json:"percentage" binding:"gte=0,lte=100"`
	}

	SetupValidator()

	var bindErr error
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req createRequest
		bindErr = c.ShouldBindJSON(&req)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"percentage": 250}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Error(t, bindErr)
	msg := BindingErrorMessage(bindErr)
	assert.Contains(t, msg, "name: this field is required")
	assert.Contains(t, msg, "percentage: must be less than or equal to 100")
}

func TestBindingErrorMessage_NonValidatorError(t *testing.T) {
	msg := BindingErrorMessage(errors.New("unexpected EOF"))
	assert.Equal(t, "Request body is malformed", msg)
}
