package text

import "github.com/gogpu/plot/internal/cache"

// DefaultWidthCacheSize is the width cache capacity used by
// NewCachingMeasurer for non-positive sizes.
const DefaultWidthCacheSize = 1024

// CacheStats reports the effectiveness of a CachingMeasurer.
type CacheStats = cache.Stats

type widthKey struct {
	text string
	font Font
}

// CachingMeasurer memoizes the results of another Measurer in LRU caches.
// Axis labels and legend entries are measured repeatedly on every redraw,
// so most lookups hit.
//
// CachingMeasurer is safe for concurrent use if the wrapped Measurer is.
type CachingMeasurer struct {
	inner   Measurer
	widths  *cache.Cache[widthKey, float64]
	metrics *cache.Cache[Font, FontMetrics]
}

// NewCachingMeasurer wraps m with a width cache of the given capacity.
func NewCachingMeasurer(m Measurer, size int) *CachingMeasurer {
	if size <= 0 {
		size = DefaultWidthCacheSize
	}
	return &CachingMeasurer{
		inner:   m,
		widths:  cache.New[widthKey, float64](size),
		metrics: cache.New[Font, FontMetrics](64),
	}
}

// FontMetrics implements Measurer.
func (c *CachingMeasurer) FontMetrics(f Font) FontMetrics {
	return c.metrics.GetOrCreate(f, func() FontMetrics {
		return c.inner.FontMetrics(f)
	})
}

// MeasureTextWidth implements Measurer.
func (c *CachingMeasurer) MeasureTextWidth(s string, f Font) float64 {
	return c.widths.GetOrCreate(widthKey{text: s, font: f}, func() float64 {
		return c.inner.MeasureTextWidth(s, f)
	})
}

// Stats returns the statistics of the width cache.
func (c *CachingMeasurer) Stats() CacheStats {
	return c.widths.Stats()
}

// Reset drops all cached measurements, for example after fonts were
// registered with the wrapped measurer.
func (c *CachingMeasurer) Reset() {
	c.widths.Clear()
	c.metrics.Clear()
}
