package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localhub/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
	})
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService()
	profileID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		ProfileID: profileID,
		Email:     "alice@example.com",
		Role:      "business",
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.True(t, pair.RefreshTokenExpiresAt.After(pair.AccessTokenExpiresAt))

	claims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, profileID, claims.ProfileID)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, "business", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.NotEmpty(t, claims.ID, "access token carries a jti")
}

func TestValidateAccessToken(t *testing.T) {
	svc := newTestJWTService()

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := svc.ValidateAccessToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects refresh token as access token", func(t *testing.T) {
		pair, err := svc.GenerateTokenPair(GenerateTokenInput{ProfileID: uuid.New()})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.RefreshToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                 "a-completely-different-secret-value",
			AccessTokenExpiration:  15 * time.Minute,
			RefreshTokenExpiration: time.Hour,
		})
		pair, err := other.GenerateTokenPair(GenerateTokenInput{ProfileID: uuid.New()})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:                 "test-secret-key-for-unit-tests-only",
			AccessTokenExpiration:  -time.Minute,
			RefreshTokenExpiration: time.Hour,
		})
		pair, err := expired.GenerateTokenPair(GenerateTokenInput{ProfileID: uuid.New()})
		require.NoError(t, err)

		_, err = svc.ValidateAccessToken(pair.AccessToken)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})
}

func TestRefreshTokenPair(t *testing.T) {
	svc := newTestJWTService()
	profileID := uuid.New()

	pair, err := svc.GenerateTokenPair(GenerateTokenInput{
		ProfileID: profileID,
		Email:     "alice@example.com",
		Role:      "community",
	})
	require.NoError(t, err)

	t.Run("rotates the pair and carries identity", func(t *testing.T) {
		rotated, err := svc.RefreshTokenPair(pair.RefreshToken)
		require.NoError(t, err)

		claims, err := svc.ValidateAccessToken(rotated.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, profileID, claims.ProfileID)
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.Equal(t, 1, claims.RefreshCount)
	})

	t.Run("rejects access token as refresh token", func(t *testing.T) {
		_, err := svc.RefreshTokenPair(pair.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})
}
