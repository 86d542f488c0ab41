package ui

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/gogpu/ui/asset"
	"github.com/gogpu/ui/atlas"
	"github.com/gogpu/ui/glyph"
)

// LineHeightFactor is the ratio of line height to font size.
const LineHeightFactor = 1.5

// fallbackRunes are tried in order for runes the font cannot render.
var fallbackRunes = []rune{'\uFFFD', '?'}

// StyleHandle identifies a computed text style. Equal (family, size) pairs
// always produce equal handles.
type StyleHandle uint64

// String returns the handle in hex.
func (h StyleHandle) String() string {
	return fmt.Sprintf("%016x", uint64(h))
}

// TextStyle describes how a Text is drawn.
type TextStyle struct {
	FontFamily string
	FontSize   float32
	Color      Color
}

// DefaultTextStyle returns black 20px text in the default font family.
func DefaultTextStyle() TextStyle {
	return TextStyle{
		FontFamily: asset.DefaultFontFamily,
		FontSize:   20,
		Color:      Black,
	}
}

// Handle returns the cache key of the style's computed form. Color does not
// participate: styles differing only in color share glyphs.
func (s TextStyle) Handle() StyleHandle {
	d := xxhash.New()
	_, _ = d.WriteString(s.FontFamily)
	var size [4]byte
	binary.LittleEndian.PutUint32(size[:], math.Float32bits(s.FontSize))
	_, _ = d.Write(size[:])
	return StyleHandle(d.Sum64())
}

// LineHeight returns the distance between consecutive baselines.
func (s TextStyle) LineHeight() float32 {
	return s.FontSize * LineHeightFactor
}

type glyphEntry struct {
	metrics glyph.Metrics
	rect    atlas.RectHandle
	onSheet bool
}

// TextStyleComputed holds the rasterized glyphs of one (family, size) pair
// and the atlas sheet their bitmaps are placed on.
//
// Glyphs are rasterized on first use. Adding a glyph marks the sheet changed;
// a renderer should call Sheet().Sync after each frame.
type TextStyleComputed struct {
	handle     StyleHandle
	family     string
	size       float32
	rasterizer glyph.Rasterizer
	sheet      *atlas.Sheet
	glyphs     map[rune]*glyphEntry
}

func newTextStyleComputed(style TextStyle, r glyph.Rasterizer, cfg atlas.Config, charset []rune) (*TextStyleComputed, error) {
	sheet, err := atlas.NewSheet(cfg)
	if err != nil {
		return nil, err
	}
	s := &TextStyleComputed{
		handle:     style.Handle(),
		family:     style.FontFamily,
		size:       style.FontSize,
		rasterizer: r,
		sheet:      sheet,
		glyphs:     make(map[rune]*glyphEntry, len(charset)),
	}
	for _, ch := range charset {
		if _, err := s.entry(ch); err != nil && !errors.Is(err, glyph.ErrGlyphNotFound) {
			return nil, err
		}
	}
	return s, nil
}

// Handle returns the style handle.
func (s *TextStyleComputed) Handle() StyleHandle { return s.handle }

// FontFamily returns the font family.
func (s *TextStyleComputed) FontFamily() string { return s.family }

// FontSize returns the pixel size glyphs are rasterized at.
func (s *TextStyleComputed) FontSize() float32 { return s.size }

// LineHeight returns the distance between consecutive baselines.
func (s *TextStyleComputed) LineHeight() float32 { return s.size * LineHeightFactor }

// Sheet returns the atlas sheet holding the glyph bitmaps.
func (s *TextStyleComputed) Sheet() *atlas.Sheet { return s.sheet }

// Len returns the number of runes rasterized so far.
func (s *TextStyleComputed) Len() int { return len(s.glyphs) }

// entry returns the glyph for ch, rasterizing it if needed.
func (s *TextStyleComputed) entry(ch rune) (*glyphEntry, error) {
	if e, ok := s.glyphs[ch]; ok {
		return e, nil
	}
	m, bitmap, err := s.rasterizer.Rasterize(ch, s.size)
	if err != nil {
		return nil, err
	}
	e := &glyphEntry{metrics: m}
	if m.Width > 0 && m.Height > 0 {
		h, err := s.sheet.Add(&atlas.Image{
			Data:   bitmap,
			Width:  m.Width,
			Height: m.Height,
			Format: atlas.FormatR8,
		})
		if err != nil {
			return nil, fmt.Errorf("ui: glyph %q: %w", ch, err)
		}
		e.rect, e.onSheet = h, true
	}
	s.glyphs[ch] = e
	return e, nil
}

// resolve returns the glyph for ch, substituting a fallback rune when the
// font has none. The substitution is remembered for ch.
func (s *TextStyleComputed) resolve(ch rune) (*glyphEntry, error) {
	e, err := s.entry(ch)
	if err == nil || !errors.Is(err, glyph.ErrGlyphNotFound) {
		return e, err
	}
	for _, fb := range fallbackRunes {
		if fe, ferr := s.entry(fb); ferr == nil {
			s.glyphs[ch] = fe
			return fe, nil
		}
	}
	return nil, err
}

// Metrics returns the metrics of ch.
func (s *TextStyleComputed) Metrics(ch rune) (glyph.Metrics, error) {
	e, err := s.resolve(ch)
	if err != nil {
		return glyph.Metrics{}, err
	}
	return e.metrics, nil
}

// GlyphRect returns the placement of ch on the sheet in pixels and as
// normalized [x0, y0, x1, y1] coordinates. The sheet is packed first if
// glyphs were added since the last pack. Glyphs without a bitmap (spaces)
// return zero values.
func (s *TextStyleComputed) GlyphRect(ch rune) (atlas.Rect, [4]float32, error) {
	e, err := s.resolve(ch)
	if err != nil {
		return atlas.Rect{}, [4]float32{}, err
	}
	if !e.onSheet {
		return atlas.Rect{}, [4]float32{}, nil
	}
	r, err := s.sheet.Rect(e.rect)
	if err != nil {
		return atlas.Rect{}, [4]float32{}, err
	}
	uv, err := s.sheet.UV(e.rect)
	if err != nil {
		return atlas.Rect{}, [4]float32{}, err
	}
	return r, uv, nil
}
