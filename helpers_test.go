package ui

import (
	"math"
	"testing"

	"github.com/gogpu/ui/glyph"
)

// testStyle advances 10px per rune and is 10px tall, with 15px lines.
var testStyle = TextStyle{FontFamily: "Go", FontSize: 10, Color: Black}

func newTestContext(opts ...ContextOption) *Context {
	return NewContext(append([]ContextOption{WithRasterizerFactory(glyph.MonospaceFactory)}, opts...)...)
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func measure(t *testing.T, w Widget, c BoxConstraints) *Layout {
	t.Helper()
	l, err := Measure(w, c, newTestContext())
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	return l
}

func rects(shapes []UIShape) []UIShape {
	var out []UIShape
	for _, s := range shapes {
		if _, ok := s.Shape.(RectangleShape); ok {
			out = append(out, s)
		}
	}
	return out
}

func glyphs(shapes []UIShape) []GlyphShape {
	var out []GlyphShape
	for _, s := range shapes {
		if g, ok := s.Shape.(GlyphShape); ok {
			out = append(out, g)
		}
	}
	return out
}
