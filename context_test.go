package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gogpu/ui/asset"
	"github.com/gogpu/ui/atlas"
	"github.com/gogpu/ui/glyph"
	"golang.org/x/image/font/gofont/goregular"
)

func TestTextStyle_Handle(t *testing.T) {
	a := TextStyle{FontFamily: "Go", FontSize: 12, Color: Black}
	if a.Handle() != a.Handle() {
		t.Fatal("Handle is not deterministic")
	}
	if b := (TextStyle{FontFamily: "Go", FontSize: 12, Color: Red}); b.Handle() != a.Handle() {
		t.Error("color changed the handle")
	}
	if b := (TextStyle{FontFamily: "Go", FontSize: 13}); b.Handle() == a.Handle() {
		t.Error("size did not change the handle")
	}
	if b := (TextStyle{FontFamily: "Go Mono", FontSize: 12}); b.Handle() == a.Handle() {
		t.Error("family did not change the handle")
	}
	if a.LineHeight() != 18 {
		t.Errorf("LineHeight() = %g, want 18", a.LineHeight())
	}
}

func TestContext_ComputeStyleMemoizes(t *testing.T) {
	ctx := newTestContext()
	s1, err := ctx.ComputeStyle(testStyle)
	if err != nil {
		t.Fatal(err)
	}
	s2, err := ctx.ComputeStyle(TextStyle{FontFamily: "Go", FontSize: 10, Color: Red})
	if err != nil {
		t.Fatal(err)
	}
	if s1 != s2 {
		t.Error("equal (family, size) produced two computed styles")
	}
	if got, err := ctx.Style(testStyle.Handle()); err != nil || got != s1 {
		t.Errorf("Style(handle) = %p, %v", got, err)
	}
	if len(ctx.ComputedStyles()) != 1 {
		t.Errorf("ComputedStyles() len = %d", len(ctx.ComputedStyles()))
	}
}

func TestContext_StyleUnknownHandle(t *testing.T) {
	_, err := newTestContext().Style(StyleHandle(42))
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("error = %v, want ErrStyleNotFound", err)
	}
}

func TestContext_InvalidFontSize(t *testing.T) {
	_, err := newTestContext().ComputeStyle(TextStyle{FontFamily: "Go", FontSize: 0})
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("error = %v, want ErrStyleNotFound", err)
	}
}

func TestContext_LazyGlyphs(t *testing.T) {
	ctx := newTestContext(WithCharset(""))
	s, err := ctx.ComputeStyle(testStyle)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 || s.Sheet().Atlas().Changed() {
		t.Fatalf("empty charset rasterized %d glyphs", s.Len())
	}

	if _, err := s.Metrics('x'); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 || !s.Sheet().Atlas().Changed() {
		t.Error("first use of a rune did not add it to the sheet")
	}
	r, uv, err := s.GlyphRect('x')
	if err != nil {
		t.Fatal(err)
	}
	if r.W != 10 || uv != [4]float32{0, 0, 10.0 / float32(atlas.DefaultWidth), 1} {
		t.Errorf("GlyphRect = %+v, %v", r, uv)
	}

	// Spaces advance without a bitmap.
	r, _, err = s.GlyphRect(' ')
	if err != nil || r != (atlas.Rect{}) {
		t.Errorf("space rect = %+v, %v", r, err)
	}
}

func TestContext_StyleCacheLimit(t *testing.T) {
	ctx := newTestContext(WithStyleCacheSize(1), WithCharset("a"))
	small := TextStyle{FontFamily: "Go", FontSize: 8}
	large := TextStyle{FontFamily: "Go", FontSize: 16}
	if _, err := ctx.ComputeStyle(small); err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.ComputeStyle(large); err != nil {
		t.Fatal(err)
	}
	// The bound only applies when a pass starts.
	if got := len(ctx.ComputedStyles()); got != 2 {
		t.Errorf("%d styles kept before a pass, want 2", got)
	}

	if _, err := BuildTree(NewText("a").WithStyle(large), Unbounded(), ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Style(small.Handle()); err == nil {
		t.Error("least recently used style was not dropped when the pass started")
	}
	if _, err := ctx.Style(large.Handle()); err != nil {
		t.Error(err)
	}
}

// countingRasterizer counts Rasterize calls per (rune, size).
type countingRasterizer struct {
	glyph.Monospace
	calls map[string]int
}

func (r *countingRasterizer) Rasterize(ch rune, px float32) (glyph.Metrics, []byte, error) {
	r.calls[fmt.Sprintf("%c@%g", ch, px)]++
	return r.Monospace.Rasterize(ch, px)
}

func TestContext_StylesSurviveOverfullPass(t *testing.T) {
	r := &countingRasterizer{calls: make(map[string]int)}
	ctx := NewContext(
		WithRasterizerFactory(func([]byte) (glyph.Rasterizer, error) { return r, nil }),
		WithStyleCacheSize(1),
		WithCharset(""),
	)
	root := NewFlex().
		WithAxis(Vertical).
		WithFixedChild(NewText("ab").WithStyle(TextStyle{FontFamily: "Go", FontSize: 10})).
		WithFlexChild(NewText("cd").WithStyle(TextStyle{FontFamily: "Go", FontSize: 12}), 1)

	frame, err := BuildTree(root, Loose(Size{Width: 100, Height: 100}), ctx)
	if err != nil {
		t.Fatal(err)
	}
	gs := glyphs(frame.Shapes)
	if len(gs) != 4 {
		t.Fatalf("got %d glyphs, want 4", len(gs))
	}
	for _, g := range gs {
		s, err := ctx.Style(g.Style)
		if err != nil {
			t.Errorf("glyph %q: style not resolvable: %v", g.Char, err)
			continue
		}
		rect, _, err := s.GlyphRect(g.Char)
		if err != nil || rect != g.AtlasRect {
			t.Errorf("glyph %q: rect on sheet %v (%v), shape has %v", g.Char, rect, err, g.AtlasRect)
		}
	}
	for key, n := range r.calls {
		if n != 1 {
			t.Errorf("%s rasterized %d times, want once", key, n)
		}
	}
	for _, key := range []string{"a@10", "b@10", "c@12", "d@12"} {
		if r.calls[key] != 1 {
			t.Errorf("%s rasterized %d times, want once", key, r.calls[key])
		}
	}
}

func TestContext_FactoryError(t *testing.T) {
	boom := errors.New("boom")
	ctx := NewContext(WithRasterizerFactory(func([]byte) (glyph.Rasterizer, error) {
		return nil, boom
	}))
	_, err := ctx.ComputeStyle(testStyle)
	if !errors.Is(err, boom) || !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("error = %v, want both boom and ErrStyleNotFound", err)
	}
}

func TestContext_InvalidAtlasWidth(t *testing.T) {
	_, err := newTestContext(WithAtlasWidth(0)).ComputeStyle(testStyle)
	var cfgErr *atlas.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Errorf("error = %v, want *atlas.ConfigError", err)
	}
}

func TestContext_OpenTypeFallbackGlyph(t *testing.T) {
	loader := asset.NewLoader(nil, asset.WithFont("Go", goregular.TTF))
	ctx := NewContext(WithLoader(loader), WithCharset(""))
	s, err := ctx.ComputeStyle(TextStyle{FontFamily: "Go", FontSize: 14})
	if err != nil {
		t.Fatal(err)
	}
	// Go Regular has no emoji; the replacement glyph stands in.
	emoji, err := s.Metrics('\U0001F600')
	if err != nil {
		t.Fatalf("fallback failed: %v", err)
	}
	replacement, err := s.Metrics('\uFFFD')
	if err != nil {
		t.Fatal(err)
	}
	if emoji != replacement {
		t.Errorf("emoji metrics %+v, want replacement %+v", emoji, replacement)
	}
}
