package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/devconnector/api/internal/api/metrics"
	"github.com/devconnector/api/internal/core/domain"
)

const profileListKey = "profiles:all"
const profileListTTL = 30 * time.Second

// ProfileCache caches the public profile listing as a JSON blob with a
// short TTL. Any profile write invalidates it; the database stays the
// source of truth.
type ProfileCache struct {
	client *redis.Client
}

func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

// Get returns the cached listing and whether the cache held a fresh entry.
func (c *ProfileCache) Get(ctx context.Context) ([]*domain.Profile, bool, error) {
	raw, err := c.client.Get(ctx, profileListKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("profile cache get: %w", err)
	}

	var profiles []*domain.Profile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		// stale or corrupt entry: treat as a miss
		metrics.ProfileCacheTotal.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	metrics.ProfileCacheTotal.WithLabelValues("hit").Inc()
	return profiles, true, nil
}

// Set stores the listing, replacing any previous entry.
func (c *ProfileCache) Set(ctx context.Context, profiles []*domain.Profile) error {
	raw, err := json.Marshal(profiles)
	if err != nil {
		return fmt.Errorf("profile cache marshal: %w", err)
	}
	return c.client.Set(ctx, profileListKey, raw, profileListTTL).Err()
}

// Invalidate drops the cached listing.
func (c *ProfileCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, profileListKey).Err()
}
