package ui

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ui/internal/logging"
)

// Text is a string drawn in one style, word-wrapped to the maximum width of
// its constraints.
type Text struct {
	value string
	style TextStyle
}

func (*Text) isWidget() {}

// NewText creates a Text in DefaultTextStyle. The value is normalized to NFC
// so composed and decomposed input lay out identically.
func NewText(value string) *Text {
	return &Text{
		value: norm.NFC.String(value),
		style: DefaultTextStyle(),
	}
}

// WithStyle sets the text style.
func (t *Text) WithStyle(s TextStyle) *Text {
	t.style = s
	return t
}

// Value returns the normalized string.
func (t *Text) Value() string { return t.value }

// Style returns the text style.
func (t *Text) Style() TextStyle { return t.style }

// Constraints implements Widget. Text declares no constraints.
func (t *Text) Constraints() (BoxConstraints, bool) {
	return BoxConstraints{}, false
}

// LetterRect is a positioned glyph, relative to the Text origin.
type LetterRect struct {
	Char rune
	X, Y float32
	W, H float32
}

// TextLayout is the result of wrapping a Text.
type TextLayout struct {
	// Style is the computed style the letters were measured with.
	Style *TextStyleComputed
	// Letters holds every drawn rune in reading order. Spaces are not drawn.
	Letters []LetterRect
	// Lines is the number of lines laid out; 0 when not even the first
	// line fits the maximum height.
	Lines int
}

func (t *Text) measure(c BoxConstraints, ctx *Context) (*Layout, error) {
	computed, err := ctx.ComputeStyle(t.style)
	if err != nil {
		return nil, err
	}
	w := wrapper{
		style:    computed,
		maxW:     c.Max.Width,
		maxH:     c.Max.Height,
		lh:       computed.LineHeight(),
		baseline: computed.FontSize(),
	}
	if err := w.wrap(t.value); err != nil {
		return nil, err
	}

	var size Size
	if t.value != "" {
		size = Size{Width: w.width, Height: float32(w.line+1) * w.lh}
	}
	if w.truncated {
		logging.Logger().Debug("text truncated",
			"letters", len(w.letters),
			"runes", len([]rune(t.value)),
			"max", c.Max.String())
	}
	return &Layout{
		Size:      size.Constrain(c),
		Truncated: w.truncated,
		text: &TextLayout{
			Style:   computed,
			Letters: w.letters,
			Lines:   w.line + 1,
		},
	}, nil
}

// wrapper performs greedy word wrapping.
type wrapper struct {
	style    *TextStyleComputed
	maxW     float32
	maxH     float32
	lh       float32
	baseline float32

	x         float32 // pen position on the current line
	ink       float32 // right edge of the last letter on the current line
	line      int     // index of the current line, -1 when no line fits
	width     float32 // widest finished line
	letters   []LetterRect
	truncated bool
}

// newLine moves the pen to the next line. It fails, marking the text
// truncated, when that line would end below maxH.
func (w *wrapper) newLine() bool {
	if float32(w.line+2)*w.lh > w.maxH {
		w.truncated = true
		return false
	}
	w.width = max(w.width, w.ink)
	w.line++
	w.x, w.ink = 0, 0
	return true
}

func (w *wrapper) wrap(value string) error {
	if value != "" && w.lh > w.maxH {
		// Not even the first line fits.
		w.line = -1
		w.truncated = true
		return nil
	}
	space, err := w.style.Metrics(' ')
	if err != nil {
		return err
	}
	defer func() { w.width = max(w.width, w.ink) }()

	for i, line := range strings.Split(value, "\n") {
		if i > 0 && !w.newLine() {
			return nil
		}
		for j, word := range strings.Split(line, " ") {
			if j > 0 && w.x > 0 {
				w.x += space.AdvanceWidth
			}
			if word == "" {
				continue
			}
			ok, err := w.word(word)
			if err != nil || !ok {
				return err
			}
		}
	}
	return nil
}

// word places one word, moving it whole to the next line when it does not
// fit and breaking it between letters when it is wider than a line.
// It reports false once the text is truncated.
func (w *wrapper) word(word string) (bool, error) {
	var width float32
	for _, ch := range word {
		m, err := w.style.Metrics(ch)
		if err != nil {
			return false, err
		}
		width += m.AdvanceWidth
	}
	if w.x > 0 && w.x+width > w.maxW && !w.newLine() {
		return false, nil
	}

	for _, ch := range word {
		m, err := w.style.Metrics(ch)
		if err != nil {
			return false, err
		}
		if w.x > 0 && w.x+m.AdvanceWidth > w.maxW && !w.newLine() {
			return false, nil
		}
		top := float32(w.line) * w.lh
		w.letters = append(w.letters, LetterRect{
			Char: ch,
			X:    w.x + float32(m.XMin),
			Y:    top + w.baseline - float32(m.YMin+m.Height),
			W:    float32(m.Width),
			H:    float32(m.Height),
		})
		w.x += m.AdvanceWidth
		w.ink = w.x
	}
	return true, nil
}

func (t *Text) paint(tl *TextLayout, offset Offset) ([]UIShape, error) {
	handle := tl.Style.Handle()
	shapes := make([]UIShape, 0, len(tl.Letters))
	for _, l := range tl.Letters {
		rect, uv, err := tl.Style.GlyphRect(l.Char)
		if err != nil {
			return nil, err
		}
		shapes = append(shapes, UIShape{
			Offset: offset.Add(Offset{DX: l.X, DY: l.Y}),
			Size:   Size{Width: l.W, Height: l.H},
			Shape: GlyphShape{
				Char:       l.Char,
				FontFamily: t.style.FontFamily,
				Color:      t.style.Color,
				Style:      handle,
				AtlasRect:  rect,
				UV:         uv,
			},
		})
	}
	return shapes, nil
}

func (t *Text) clone() *Text {
	out := *t
	return &out
}
