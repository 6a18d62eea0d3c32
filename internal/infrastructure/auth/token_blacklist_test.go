package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryTokenBlacklist(t *testing.T) {
	ctx := context.Background()

	t.Run("blacklisted jti is reported", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()
		require.NoError(t, bl.AddToBlacklist(ctx, "jti-1", time.Minute))

		revoked, err := bl.IsBlacklisted(ctx, "jti-1")
		require.NoError(t, err)
		assert.True(t, revoked)

		revoked, err = bl.IsBlacklisted(ctx, "jti-other")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("non-positive ttl is a no-op", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()
		require.NoError(t, bl.AddToBlacklist(ctx, "jti-expired", -time.Second))

		revoked, err := bl.IsBlacklisted(ctx, "jti-expired")
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("entries expire", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()
		now := time.Now()
		bl.nowFunc = func() time.Time { return now }
		require.NoError(t, bl.AddToBlacklist(ctx, "jti-2", time.Minute))

		bl.nowFunc = func() time.Time { return now.Add(2 * time.Minute) }
		revoked, err := bl.IsBlacklisted(ctx, "jti-2")
		require.NoError(t, err)
		assert.False(t, revoked)
	})
}

func TestInMemoryProfileInvalidation(t *testing.T) {
	ctx := context.Background()
	profileID := uuid.New()

	t.Run("tokens issued before invalidation are rejected", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()
		now := time.Now()
		bl.nowFunc = func() time.Time { return now }

		require.NoError(t, bl.AddProfileTokensToBlacklist(ctx, profileID, time.Hour))

		invalidated, err := bl.IsProfileTokenInvalidated(ctx, profileID, now.Add(-time.Minute))
		require.NoError(t, err)
		assert.True(t, invalidated)

		invalidated, err = bl.IsProfileTokenInvalidated(ctx, profileID, now.Add(time.Minute))
		require.NoError(t, err)
		assert.False(t, invalidated, "tokens issued after invalidation stay valid")
	})

	t.Run("unknown profile is not invalidated", func(t *testing.T) {
		bl := NewInMemoryTokenBlacklist()
		invalidated, err := bl.IsProfileTokenInvalidated(ctx, uuid.New(), time.Now())
		require.NoError(t, err)
		assert.False(t, invalidated)
	})
}

func TestBlacklistSessionRevoker(t *testing.T) {
	ctx := context.Background()
	bl := NewInMemoryTokenBlacklist()
	revoker := NewBlacklistSessionRevoker(bl, time.Hour)

	profileID := uuid.New()
	issuedAt := time.Now().Add(-time.Minute)
	require.NoError(t, revoker.RevokeProfile(ctx, profileID))

	invalidated, err := bl.IsProfileTokenInvalidated(ctx, profileID, issuedAt)
	require.NoError(t, err)
	assert.True(t, invalidated)
}
