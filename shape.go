package ui

import "github.com/gogpu/ui/atlas"

// UIShape is one drawable item produced by a paint pass, positioned in
// absolute coordinates.
type UIShape struct {
	Offset Offset
	Size   Size
	Shape  Shape
}

// OffsetBy returns s translated by o.
func (s UIShape) OffsetBy(o Offset) UIShape {
	s.Offset = s.Offset.Add(o)
	return s
}

// Shape is the kind of a UIShape: RectangleShape or GlyphShape.
type Shape interface {
	isShape()
}

// RectangleShape is a flat colored rectangle.
type RectangleShape struct {
	Color Color
}

func (RectangleShape) isShape() {}

// GlyphShape is one glyph sampled from a text style's atlas sheet.
type GlyphShape struct {
	Char       rune
	FontFamily string
	Color      Color
	// Style identifies the TextStyleComputed whose sheet holds the glyph.
	Style StyleHandle
	// AtlasRect is the glyph's placement on the sheet, in pixels.
	AtlasRect atlas.Rect
	// UV is AtlasRect normalized to the sheet size: [x0, y0, x1, y1].
	UV [4]float32
}

func (GlyphShape) isShape() {}
