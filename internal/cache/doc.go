// Package cache provides the bounded memo used by layout contexts to keep
// computed text styles (rasterized glyph atlases) between passes.
//
// Cache is an LRU keyed by any comparable type whose limit is applied only
// by an explicit Trim, so entries created during a pass survive it. It is
// not safe for concurrent use: a cache belongs to exactly one ui.Context,
// and a Context is only ever driven by one layout pass at a time.
//
//	c := cache.New[uint32, *Computed](64)
//	v, err := c.GetOrCreate(key, func() (*Computed, error) { return build() })
//	c.Trim() // between passes
package cache
