package ui

import (
	"fmt"
	"math"

	"github.com/gogpu/ui/atlas"
	"github.com/gogpu/ui/glyph"
	"github.com/gogpu/ui/internal/cache"
	"github.com/gogpu/ui/internal/logging"
)

// FontLoader resolves a font family to font file bytes.
// *asset.Loader implements it.
type FontLoader interface {
	FontByFamily(family string) ([]byte, error)
}

// Context is the shared state of layout passes: the font loader and the
// computed text styles.
//
// A Context is passed explicitly to every pass. It is not safe for
// concurrent use; run passes that share a Context sequentially.
type Context struct {
	loader      FontLoader
	factory     glyph.Factory
	charset     []rune
	atlasConfig atlas.Config

	styles      *cache.Cache[StyleHandle, *TextStyleComputed]
	rasterizers map[string]glyph.Rasterizer
}

// NewContext creates a Context.
//
// Example:
//
//	ctx := ui.NewContext(ui.WithAtlasWidth(1024))
func NewContext(opts ...ContextOption) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Context{
		loader:      o.fontLoader(),
		factory:     o.factory,
		charset:     []rune(o.charset),
		atlasConfig: o.atlasConfig(),
		styles:      cache.New[StyleHandle, *TextStyleComputed](o.cacheSize),
		rasterizers: make(map[string]glyph.Rasterizer),
	}
	c.styles.OnEvict(func(h StyleHandle, s *TextStyleComputed) {
		logging.Logger().Debug("text style evicted",
			"family", s.FontFamily(),
			"size", s.FontSize(),
			"handle", h.String())
	})
	return c
}

// beginPass drops computed styles over the WithStyleCacheSize bound, least
// recently used first. It runs before a pass, never during one, so every
// style a pass computes stays resolvable until the next pass begins.
func (c *Context) beginPass() {
	c.styles.Trim()
}

// ComputeStyle returns the computed form of style, building it on first use.
// Styles with the same family and size share one TextStyleComputed.
func (c *Context) ComputeStyle(style TextStyle) (*TextStyleComputed, error) {
	h := style.Handle()
	return c.styles.GetOrCreate(h, func() (*TextStyleComputed, error) {
		if style.FontSize <= 0 || math.IsNaN(float64(style.FontSize)) || IsInf(style.FontSize) {
			return nil, &StyleNotFoundError{
				Family: style.FontFamily,
				Handle: h,
				Err:    fmt.Errorf("invalid font size %g", style.FontSize),
			}
		}
		r, err := c.rasterizer(style.FontFamily)
		if err != nil {
			return nil, &StyleNotFoundError{Family: style.FontFamily, Handle: h, Err: err}
		}
		computed, err := newTextStyleComputed(style, r, c.atlasConfig, c.charset)
		if err != nil {
			return nil, &StyleNotFoundError{Family: style.FontFamily, Handle: h, Err: err}
		}
		logging.Logger().Debug("text style computed",
			"family", style.FontFamily,
			"size", style.FontSize,
			"handle", h.String(),
			"glyphs", computed.Len())
		return computed, nil
	})
}

// Style returns a previously computed style by handle. Styles used by the
// latest BuildTree always resolve.
func (c *Context) Style(h StyleHandle) (*TextStyleComputed, error) {
	s, ok := c.styles.Get(h)
	if !ok {
		return nil, &StyleNotFoundError{Handle: h}
	}
	return s, nil
}

// ComputedStyles returns the cached styles, most recently used first.
func (c *Context) ComputedStyles() []*TextStyleComputed {
	keys := c.styles.Keys()
	out := make([]*TextStyleComputed, 0, len(keys))
	for _, k := range keys {
		if s, ok := c.styles.Peek(k); ok {
			out = append(out, s)
		}
	}
	return out
}

// rasterizer returns the rasterizer of a family, loading the font once.
func (c *Context) rasterizer(family string) (glyph.Rasterizer, error) {
	if r, ok := c.rasterizers[family]; ok {
		return r, nil
	}
	data, err := c.loader.FontByFamily(family)
	if err != nil {
		return nil, err
	}
	r, err := c.factory(data)
	if err != nil {
		return nil, err
	}
	c.rasterizers[family] = r
	return r, nil
}
