package catalog

import (
	"context"
	"log"
	"time"

	"ziktok/cache"
)

// DefaultCacheTTL is how long an assembled per-channel result stays fresh.
const DefaultCacheTTL = time.Hour

// Cached decorates a Provider with a per-channel TTL cache of assembled
// shorts results. A hit within the TTL returns the stored result unchanged
// and issues no upstream calls; concurrently racing misses for the same
// channel may both fetch, last write wins. Searches are never cached.
type Cached struct {
	provider Provider
	cache    *cache.Cache[*ShortsResult]
	ttl      time.Duration
}

// NewCached wraps provider with a TTL cache. A non-positive ttl falls back
// to DefaultCacheTTL.
func NewCached(provider Provider, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cached{
		provider: provider,
		cache:    cache.New[*ShortsResult](),
		ttl:      ttl,
	}
}

// GetShorts implements Provider with read-through caching keyed by channel ID.
func (c *Cached) GetShorts(ctx context.Context, channelID string, maxResults int64) (*ShortsResult, error) {
	if result, ok := c.cache.Get(channelID); ok {
		log.Printf("catalog: cache hit for channel %s", channelID)
		return result, nil
	}

	log.Printf("catalog: fetching shorts for channel %s", channelID)
	result, err := c.provider.GetShorts(ctx, channelID, maxResults)
	if err != nil {
		return nil, err
	}

	c.cache.Set(channelID, result, c.ttl)
	return result, nil
}

// SearchChannels implements Provider by delegating without caching.
func (c *Cached) SearchChannels(ctx context.Context, query string) ([]ChannelInfo, error) {
	return c.provider.SearchChannels(ctx, query)
}

// SetClock overrides the cache's time source. Used by tests.
func (c *Cached) SetClock(now func() time.Time) {
	c.cache.SetClock(now)
}
