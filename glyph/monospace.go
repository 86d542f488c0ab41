package glyph

import (
	"math"
	"unicode"
)

// Monospace draws every visible rune as a solid block.
//
// Each glyph advances Advance*px and its block is Advance*px wide and px
// tall, sitting on the baseline. Whitespace advances without drawing.
// The zero value uses Advance 1.
type Monospace struct {
	Advance float32
}

// MonospaceFactory ignores the font data and returns a zero Monospace.
func MonospaceFactory([]byte) (Rasterizer, error) {
	return Monospace{}, nil
}

// Rasterize implements Rasterizer.
func (m Monospace) Rasterize(r rune, px float32) (Metrics, []byte, error) {
	adv := m.Advance
	if adv <= 0 {
		adv = 1
	}
	advance := adv * px
	if unicode.IsSpace(r) {
		return Metrics{AdvanceWidth: advance}, nil, nil
	}

	w := int(math.Ceil(float64(advance)))
	h := int(math.Ceil(float64(px)))
	bitmap := make([]byte, w*h)
	for i := range bitmap {
		bitmap[i] = 0xFF
	}
	return Metrics{
		Width:        w,
		Height:       h,
		AdvanceWidth: advance,
	}, bitmap, nil
}
