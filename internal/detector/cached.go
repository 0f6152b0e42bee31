package detector

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/simplecastapps/go-device-detector/internal/detector/hints"
)

// CachedDetector wraps a Detector with a bounded LRU cache keyed on the
// user agent alone, per spec.md §5's optional detection cache contract
// and SPEC_FULL.md §8's NewWithCache supplement. Because hint-derived
// differences are part of detection, this cache bypasses itself
// whenever headers are supplied: only the zero-header call path is
// cached.
type CachedDetector struct {
	*Detector
	cache *lru.Cache[string, Detection]
}

// NewWithCache wraps detector with an LRU cache of at most n entries.
func NewWithCache(detector *Detector, n int) (*CachedDetector, error) {
	c, err := lru.New[string, Detection](n)
	if err != nil {
		return nil, err
	}
	return &CachedDetector{Detector: detector, cache: c}, nil
}

// Detect serves from the cache when called with no headers; any headers
// bypass the cache entirely, since hint-derived results would otherwise
// collide on the UA-only key.
func (c *CachedDetector) Detect(ua string, headers ...hints.Header) Detection {
	if len(headers) > 0 {
		return c.Detector.Detect(ua, headers...)
	}
	if d, ok := c.cache.Get(ua); ok {
		return d
	}
	d := c.Detector.Detect(ua)
	c.cache.Add(ua, d)
	return d
}
