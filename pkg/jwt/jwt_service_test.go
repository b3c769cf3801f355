package jwt

import (
	"FoodShare-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseUserToken(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-123", domain.RoleUser)
	require.NotEmpty(t, token)

	userID, role, err := service.GetUserIDByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, domain.RoleUser, role)
}

func TestGetUserIDByTokenInvalid(t *testing.T) {
	service := NewJWTService()

	_, _, err := service.GetUserIDByToken("not.a.token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestVerifyEmailTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenVerifyEmail(
		map[string]any{"email": "alex@example.com"},
		time.Hour,
	)
	require.NoError(t, err)

	claims, err := service.ValidateTokenVerifyEmail(token)
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", claims["email"])
}

func TestVerifyEmailTokenExpired(t *testing.T) {
	service := NewJWTService()

	token, err := service.GenerateTokenVerifyEmail(
		map[string]any{"email": "alex@example.com"},
		-time.Minute,
	)
	require.NoError(t, err)

	_, err = service.ValidateTokenVerifyEmail(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}
