package server

import (
	"sync"
	"time"

	"github.com/mj1618/taskbar-embed/internal/config"
	"github.com/mj1618/taskbar-embed/internal/platform"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

// RegionCache keeps the located taskbar handles for a TTL. Rects are never
// cached: every Get refreshes them.
type RegionCache struct {
	mu        sync.Mutex
	regions   *taskbar.Regions
	timestamp time.Time
	ttl       time.Duration
}

// NewRegionCache creates a new cache. A ttl of 0 disables caching.
func NewRegionCache(ttl time.Duration) *RegionCache {
	return &RegionCache{ttl: ttl}
}

// Get returns refreshed regions, locating them again when the cached set is
// older than the TTL or a refresh fails. The caller must hold the shell mutex.
func (c *RegionCache) Get(shell platform.Shell, profiles []config.ClassProfile) (*taskbar.Regions, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ttl > 0 && c.regions != nil && time.Since(c.timestamp) < c.ttl {
		if err := c.regions.Refresh(shell); err == nil {
			r := *c.regions
			return &r, nil
		}
		// Explorer restarted; handles are stale.
		c.regions = nil
	}

	r, err := taskbar.Locate(shell, profiles)
	if err != nil {
		return nil, err
	}
	if err := r.Refresh(shell); err != nil {
		return nil, err
	}
	if c.ttl > 0 {
		cached := *r
		c.regions = &cached
		c.timestamp = time.Now()
	}
	return r, nil
}
