package ui

import (
	"github.com/gogpu/ui/asset"
	"github.com/gogpu/ui/atlas"
	"github.com/gogpu/ui/glyph"
)

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Go Regular, rasterized with x/image
//	ctx := ui.NewContext()
//
//	// Fonts from disk, block glyphs
//	loader := asset.NewLoader(os.DirFS("assets"))
//	ctx := ui.NewContext(ui.WithLoader(loader), ui.WithRasterizerFactory(glyph.MonospaceFactory))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	loader     FontLoader
	factory    glyph.Factory
	cacheSize  int
	charset    string
	atlasWidth int
}

// DefaultCharset is rasterized eagerly for every computed style: printable ASCII.
const DefaultCharset = " !\"#$%&'()*+,-./0123456789:;<=>?@ABCDEFGHIJKLMNOPQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~"

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		loader:     nil, // Go fonts loader created if nil
		factory:    glyph.OpenTypeFactory,
		charset:    DefaultCharset,
		atlasWidth: atlas.DefaultWidth,
	}
}

// WithLoader sets where font bytes come from.
// The default loader only knows asset.DefaultFontFamily (Go Regular).
func WithLoader(l FontLoader) ContextOption {
	return func(o *contextOptions) {
		o.loader = l
	}
}

// WithRasterizerFactory sets how font bytes become a glyph.Rasterizer.
// The default is glyph.OpenTypeFactory.
func WithRasterizerFactory(f glyph.Factory) ContextOption {
	return func(o *contextOptions) {
		if f != nil {
			o.factory = f
		}
	}
}

// WithStyleCacheSize bounds how many computed styles are kept between
// passes. By default every computed style lives as long as the Context.
//
// The bound is applied when BuildTree starts a pass: the least recently used
// styles over n are dropped then. A pass that uses more than n styles keeps
// all of them until the next pass. 0 means unlimited.
func WithStyleCacheSize(n int) ContextOption {
	return func(o *contextOptions) {
		o.cacheSize = n
	}
}

// WithCharset sets the runes rasterized when a style is first computed.
// Other runes are rasterized on first use.
func WithCharset(chars string) ContextOption {
	return func(o *contextOptions) {
		o.charset = chars
	}
}

// WithAtlasWidth sets the row width of glyph atlases.
func WithAtlasWidth(w int) ContextOption {
	return func(o *contextOptions) {
		o.atlasWidth = w
	}
}

func (o contextOptions) atlasConfig() atlas.Config {
	return atlas.Config{Width: o.atlasWidth, Format: atlas.FormatR8}
}

func (o contextOptions) fontLoader() FontLoader {
	if o.loader != nil {
		return o.loader
	}
	return asset.NewLoader(nil, asset.WithGoFonts())
}
