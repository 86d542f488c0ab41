package glyph

import (
	"fmt"
	"image"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// OpenType rasterizes glyphs from a TrueType or OpenType font.
//
// Faces are created lazily per pixel size and cached. OpenType is safe for
// concurrent use.
type OpenType struct {
	font *opentype.Font

	mu    sync.Mutex
	faces map[float32]font.Face
}

// NewOpenType parses font data.
func NewOpenType(data []byte) (*OpenType, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}
	return &OpenType{
		font:  f,
		faces: make(map[float32]font.Face),
	}, nil
}

// OpenTypeFactory is a Factory producing OpenType rasterizers.
func OpenTypeFactory(data []byte) (Rasterizer, error) {
	return NewOpenType(data)
}

func (o *OpenType) face(px float32) (font.Face, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if f, ok := o.faces[px]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(o.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to create face at %gpx: %w", px, err)
	}
	o.faces[px] = f
	return f, nil
}

// Rasterize implements Rasterizer.
func (o *OpenType) Rasterize(r rune, px float32) (Metrics, []byte, error) {
	if px <= 0 {
		return Metrics{}, nil, fmt.Errorf("glyph: invalid pixel size %g", px)
	}
	face, err := o.face(px)
	if err != nil {
		return Metrics{}, nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if idx, err := o.font.GlyphIndex(nil, r); err != nil || idx == 0 {
		return Metrics{}, nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
	}

	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return Metrics{}, nil, fmt.Errorf("%w: %q", ErrGlyphNotFound, r)
	}

	m := Metrics{
		Width:        dr.Dx(),
		Height:       dr.Dy(),
		XMin:         dr.Min.X,
		YMin:         -dr.Max.Y,
		AdvanceWidth: float32(advance) / 64,
	}
	if dr.Empty() {
		return Metrics{AdvanceWidth: m.AdvanceWidth}, nil, nil
	}

	dst := image.NewAlpha(image.Rect(0, 0, m.Width, m.Height))
	draw.Draw(dst, dst.Bounds(), mask, maskp, draw.Src)
	return m, dst.Pix, nil
}

// LineHeight returns the recommended line height at px, in pixels.
func (o *OpenType) LineHeight(px float32) (float32, error) {
	face, err := o.face(px)
	if err != nil {
		return 0, err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return float32(face.Metrics().Height) / 64, nil
}

// Close releases all cached faces.
func (o *OpenType) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	var firstErr error
	for px, f := range o.faces {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(o.faces, px)
	}
	return firstErr
}
