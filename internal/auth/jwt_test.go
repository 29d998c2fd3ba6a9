package auth

import (
	"testing"
	"time"

	"noithat-backend/internal/config"
	"noithat-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:          "test-secret",
		AccessDuration:  15 * time.Minute,
		RefreshDuration: 168 * time.Hour,
	})
}

func testUser() *models.User {
	return &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Username:  "admin",
		Role:      models.RoleAdmin,
	}
}

func TestJWTServiceTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService()
	user := testUser()

	pair, err := svc.GenerateTokenPair(user)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestJWTServiceTokenTypesAreNotInterchangeable(t *testing.T) {
	svc := newTestJWTService()

	pair, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	// Refresh token không dùng được làm access token và ngược lại
	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsForeignToken(t *testing.T) {
	svc := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:          "different-secret",
		AccessDuration:  15 * time.Minute,
		RefreshDuration: 168 * time.Hour,
	})

	pair, err := other.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTServiceRejectsExpiredToken(t *testing.T) {
	svc := NewJWTService(config.JWTConfig{
		Secret:          "test-secret",
		AccessDuration:  -time.Minute,
		RefreshDuration: 168 * time.Hour,
	})

	pair, err := svc.GenerateTokenPair(testUser())
	require.NoError(t, err)

	_, err = newTestJWTService().ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
