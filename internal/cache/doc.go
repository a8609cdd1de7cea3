// Package cache provides the bounded LRU cache shared by the text measurers.
//
// Font faces are expensive to build and text widths are requested
// repeatedly for the same labels during layout, so both are memoized here.
//
//	c := cache.New[string, float64](1024)
//	w := c.GetOrCreate("Hello", func() float64 { return measure("Hello") })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
