package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	memadapters "apparel_backend/internal/feature/membership/adapters"
	"apparel_backend/internal/feature/membership/usecase"
	"apparel_backend/internal/platform/cache"
)

// NewMembershipRepository creates a MembershipRepository implementation.
// If Redis is available, the PostgreSQL repository is wrapped with a
// read-through cache. Otherwise the plain repository is returned.
func NewMembershipRepository(rdb *redis.Client, db *gorm.DB) usecase.MembershipRepository {
	inner := memadapters.NewMembershipPostgres(db)
	if rdb != nil {
		return cache.NewCachingMembershipRepository(rdb, 5*time.Minute, inner, "membership")
	}
	return inner
}
