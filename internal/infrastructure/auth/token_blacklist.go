package auth

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// TokenBlacklist revokes tokens before their natural expiry. Individual
// tokens are revoked by JTI on logout; all of a profile's tokens are
// invalidated at once on account deletion.
type TokenBlacklist interface {
	AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, jti string) (bool, error)
	AddProfileTokensToBlacklist(ctx context.Context, profileID uuid.UUID, ttl time.Duration) error
	IsProfileTokenInvalidated(ctx context.Context, profileID uuid.UUID, issuedAt time.Time) (bool, error)
}

const (
	tokenKeyPrefix   = "token:blacklist:"
	profileKeyPrefix = "token:invalidated:profile:"
)

// RedisTokenBlacklist stores revocations in Redis with TTL-based expiry
type RedisTokenBlacklist struct {
	client *redis.Client
}

// NewRedisTokenBlacklist creates a Redis-backed token blacklist
func NewRedisTokenBlacklist(client *redis.Client) *RedisTokenBlacklist {
	return &RedisTokenBlacklist{client: client}
}

func (b *RedisTokenBlacklist) AddToBlacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Token already expired, nothing to revoke
		return nil
	}
	if err := b.client.Set(ctx, tokenKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

func (b *RedisTokenBlacklist) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, tokenKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check token blacklist: %w", err)
	}
	return n > 0, nil
}

// AddProfileTokensToBlacklist records an invalidation timestamp for the
// profile. Any token issued before that instant is rejected, which
// revokes every outstanding session without knowing their JTIs.
func (b *RedisTokenBlacklist) AddProfileTokensToBlacklist(ctx context.Context, profileID uuid.UUID, ttl time.Duration) error {
	key := profileKeyPrefix + profileID.String()
	now := strconv.FormatInt(time.Now().Unix(), 10)
	if err := b.client.Set(ctx, key, now, ttl).Err(); err != nil {
		return fmt.Errorf("invalidate profile tokens: %w", err)
	}
	return nil
}

func (b *RedisTokenBlacklist) IsProfileTokenInvalidated(ctx context.Context, profileID uuid.UUID, issuedAt time.Time) (bool, error) {
	val, err := b.client.Get(ctx, profileKeyPrefix+profileID.String()).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check profile invalidation: %w", err)
	}
	invalidatedAt, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse invalidation timestamp: %w", err)
	}
	return issuedAt.Unix() <= invalidatedAt, nil
}

// InMemoryTokenBlacklist is a process-local blacklist for development
// and tests. Expired entries are pruned lazily on read.
type InMemoryTokenBlacklist struct {
	mu       sync.RWMutex
	tokens   map[string]time.Time
	profiles map[uuid.UUID]profileInvalidation
	nowFunc  func() time.Time
}

type profileInvalidation struct {
	invalidatedAt time.Time
	expiresAt     time.Time
}

// NewInMemoryTokenBlacklist creates an in-memory token blacklist
func NewInMemoryTokenBlacklist() *InMemoryTokenBlacklist {
	return &InMemoryTokenBlacklist{
		tokens:   make(map[string]time.Time),
		profiles: make(map[uuid.UUID]profileInvalidation),
		nowFunc:  time.Now,
	}
}

func (b *InMemoryTokenBlacklist) AddToBlacklist(_ context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tokens[jti] = b.nowFunc().Add(ttl)
	return nil
}

func (b *InMemoryTokenBlacklist) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	b.mu.RLock()
	expiresAt, ok := b.tokens[jti]
	b.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if b.nowFunc().After(expiresAt) {
		b.mu.Lock()
		delete(b.tokens, jti)
		b.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (b *InMemoryTokenBlacklist) AddProfileTokensToBlacklist(_ context.Context, profileID uuid.UUID, ttl time.Duration) error {
	now := b.nowFunc()
	b.mu.Lock()
	defer b.mu.Unlock()
	b.profiles[profileID] = profileInvalidation{
		invalidatedAt: now,
		expiresAt:     now.Add(ttl),
	}
	return nil
}

func (b *InMemoryTokenBlacklist) IsProfileTokenInvalidated(_ context.Context, profileID uuid.UUID, issuedAt time.Time) (bool, error) {
	b.mu.RLock()
	inv, ok := b.profiles[profileID]
	b.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if b.nowFunc().After(inv.expiresAt) {
		b.mu.Lock()
		delete(b.profiles, profileID)
		b.mu.Unlock()
		return false, nil
	}
	return !issuedAt.After(inv.invalidatedAt), nil
}

// BlacklistSessionRevoker adapts the token blacklist to the account
// application layer, which needs profile-wide revocation during account
// deletion without depending on token infrastructure.
type BlacklistSessionRevoker struct {
	blacklist TokenBlacklist
	ttl       time.Duration
}

// NewBlacklistSessionRevoker creates a session revoker. The TTL should
// cover the longest-lived refresh token so nothing outlives the record.
func NewBlacklistSessionRevoker(blacklist TokenBlacklist, ttl time.Duration) *BlacklistSessionRevoker {
	return &BlacklistSessionRevoker{blacklist: blacklist, ttl: ttl}
}

func (r *BlacklistSessionRevoker) RevokeProfile(ctx context.Context, profileID uuid.UUID) error {
	return r.blacklist.AddProfileTokensToBlacklist(ctx, profileID, r.ttl)
}
