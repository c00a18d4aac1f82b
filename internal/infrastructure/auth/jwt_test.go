package auth

import (
	"testing"
	"time"

	"github.com/backoffice/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(expiration time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-with-enough-length",
		Issuer:     "backoffice-test",
		Expiration: expiration,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestService(time.Hour)
	userID := uuid.New()

	token, err := service.GenerateToken(userID, "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)

	claims, err := service.ValidateToken(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "backoffice-test", claims.Issuer)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_ExpiredTokenIsRejected(t *testing.T) {
	service := newTestService(-time.Minute)

	token, err := service.GenerateToken(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = service.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_WrongSecretIsRejected(t *testing.T) {
	issuing := newTestService(time.Hour)
	validating := NewJWTService(config.JWTConfig{
		Secret:     "a-different-secret-key-entirely-xx",
		Issuer:     "backoffice-test",
		Expiration: time.Hour,
	})

	token, err := issuing.GenerateToken(uuid.New(), "alice")
	require.NoError(t, err)

	_, err = validating.ValidateToken(token.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_GarbageTokenIsRejected(t *testing.T) {
	service := newTestService(time.Hour)

	_, err := service.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
