package videoapi

import (
	"context"
	"sync"
	"time"
)

type cacheKey struct {
	token string
	id    string
}

type cacheEntry struct {
	detail  Detail
	expires time.Time
}

// CachingFetcher memoizes successful lookups for a short TTL so that a page
// re-rendered after a like, dislike or save does not hit the API again.
// Failures are never stored.
type CachingFetcher struct {
	base Fetcher
	ttl  time.Duration
	now  func() time.Time

	mu        sync.RWMutex
	items     map[cacheKey]cacheEntry
	lastSweep time.Time
}

func NewCachingFetcher(base Fetcher, ttl time.Duration) *CachingFetcher {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachingFetcher{
		base:  base,
		ttl:   ttl,
		now:   time.Now,
		items: make(map[cacheKey]cacheEntry),
	}
}

// Video returns a cached detail when one is still fresh, otherwise it
// delegates to the wrapped Fetcher.
func (c *CachingFetcher) Video(ctx context.Context, token, id string) (Detail, error) {
	key := cacheKey{token: token, id: id}

	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if ok && c.now().Before(entry.expires) {
		return entry.detail, nil
	}

	return c.Refresh(ctx, token, id)
}

// Refresh always asks the wrapped Fetcher and replaces any cached entry.
func (c *CachingFetcher) Refresh(ctx context.Context, token, id string) (Detail, error) {
	key := cacheKey{token: token, id: id}

	detail, err := c.base.Video(ctx, token, id)
	if err != nil {
		c.mu.Lock()
		delete(c.items, key)
		c.mu.Unlock()
		return Detail{}, err
	}

	now := c.now()
	c.mu.Lock()
	c.sweepLocked(now)
	c.items[key] = cacheEntry{detail: detail, expires: now.Add(c.ttl)}
	c.mu.Unlock()

	return detail, nil
}

// sweepLocked drops expired entries, at most once per TTL. c.mu must be held.
func (c *CachingFetcher) sweepLocked(now time.Time) {
	if c.lastSweep.IsZero() {
		c.lastSweep = now
		return
	}
	if now.Sub(c.lastSweep) < c.ttl {
		return
	}
	c.lastSweep = now
	for key, entry := range c.items {
		if !now.Before(entry.expires) {
			delete(c.items, key)
		}
	}
}
