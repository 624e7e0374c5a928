// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"apparel_backend/internal/feature/membership/domain/entity"
	"apparel_backend/internal/feature/membership/usecase"
)

// CachingMembershipRepository decorates a MembershipRepository with Redis
// caching. It implements the decorator pattern, transparently adding caching
// without modifying the underlying repository. Only membership reads are
// cached; upserts always go to the database and invalidate the cached row so
// renewals are immediately visible.
type CachingMembershipRepository struct {
	inner     usecase.MembershipRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// NewCachingMembershipRepository decorates a MembershipRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "membership".
func NewCachingMembershipRepository(rdb *redis.Client, ttl time.Duration, inner usecase.MembershipRepository, namespace string) *CachingMembershipRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "membership"
	}
	return &CachingMembershipRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

var _ usecase.MembershipRepository = (*CachingMembershipRepository)(nil)

// Upsert writes through to the underlying repository and invalidates the
// cached row for the user.
func (c *CachingMembershipRepository) Upsert(ctx context.Context, m *entity.Membership) (*entity.Membership, error) {
	out, err := c.inner.Upsert(ctx, m)
	if err != nil {
		return nil, err
	}
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, c.cacheKey(m.UserID)).Err() // Best effort: don't fail if cache deletion fails
	}
	return out, nil
}

// FindByUserID retrieves a membership, checking cache first then falling back
// to the database. Absence is never cached.
func (c *CachingMembershipRepository) FindByUserID(ctx context.Context, userID uint) (*entity.Membership, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindByUserID(ctx, userID)
	}

	key := c.cacheKey(userID)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Membership
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates the cache key for a user's membership row.
func (c *CachingMembershipRepository) cacheKey(userID uint) string {
	return fmt.Sprintf("%s:%d", c.namespace, userID)
}
