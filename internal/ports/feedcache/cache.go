package feedcache

import (
	"context"
	"time"

	postPort "github.com/andreipy/hw05-final/internal/ports/post"
)

// HomeKey is the single cache slot for the home feed. The key does not vary by
// viewer or page number: every request shares one cached post sequence until
// the TTL expires or Clear is called.
const HomeKey = "feed:home"

// Cache memoizes the ordered home feed sequence for a bounded window.
type Cache interface {
	// Get returns the cached sequence and whether the slot was populated.
	Get(ctx context.Context) ([]postPort.PostDTO, bool, error)
	Set(ctx context.Context, posts []postPort.PostDTO, ttl time.Duration) error
	// Clear drops the slot immediately; the next Get misses.
	Clear(ctx context.Context) error
}
