package glyph

import "errors"

// ErrGlyphNotFound is returned when a font has no glyph for a rune.
var ErrGlyphNotFound = errors.New("glyph: rune not in font")

// Metrics positions a rasterized glyph relative to the pen.
//
// XMin is the offset from the pen position to the left edge of the bitmap.
// YMin is the offset from the baseline to the bottom edge of the bitmap,
// positive upwards, so a glyph with a descender has a negative YMin.
type Metrics struct {
	Width  int
	Height int
	XMin   int
	YMin   int

	// AdvanceWidth is the horizontal pen advance after this glyph.
	AdvanceWidth float32
}

// Rasterizer renders single glyphs.
//
// Rasterize returns the glyph metrics and a tightly packed single-channel
// bitmap of Width*Height bytes, row-major from the top.
type Rasterizer interface {
	Rasterize(r rune, px float32) (Metrics, []byte, error)
}

// Factory builds a Rasterizer from raw font file bytes.
type Factory func(fontData []byte) (Rasterizer, error)
