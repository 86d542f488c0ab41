package ui

import "fmt"

// Widget is a node of a layout tree: a *Container, *Flex or *Text.
//
// The set of widget kinds is closed. Measure, Paint and Clone dispatch on the
// concrete type.
type Widget interface {
	// Constraints returns the constraints the widget declares for itself,
	// used by a parent Flex to reserve a minimum and cap a maximum extent.
	Constraints() (BoxConstraints, bool)

	isWidget()
}

// Layout is the result of measuring a widget under some constraints.
// It is consumed by Paint; a widget keeps no state between the two.
type Layout struct {
	// Size is the measured size, inside the constraints passed to Measure.
	Size Size

	// Truncated reports that some text in the subtree did not fit its
	// vertical budget and was dropped.
	Truncated bool

	child *Layout
	flex  *FlexLayout
	text  *TextLayout
}

// Child returns the layout of a Container's child, if any.
func (l *Layout) Child() *Layout { return l.child }

// Flex returns the per-child distribution of a Flex, if l belongs to one.
func (l *Layout) Flex() *FlexLayout { return l.flex }

// Text returns the positioned letters of a Text, if l belongs to one.
func (l *Layout) Text() *TextLayout { return l.text }

// Measure computes the layout of w under c.
func Measure(w Widget, c BoxConstraints, ctx *Context) (*Layout, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	switch w := w.(type) {
	case *Container:
		if w == nil {
			return nil, ErrNilWidget
		}
		return w.measure(c, ctx)
	case *Flex:
		if w == nil {
			return nil, ErrNilWidget
		}
		return w.measure(c, ctx)
	case *Text:
		if w == nil {
			return nil, ErrNilWidget
		}
		return w.measure(c, ctx)
	case nil:
		return nil, ErrNilWidget
	default:
		panic(fmt.Sprintf("ui: unknown widget type %T", w))
	}
}

// Paint emits the shapes of w at offset, using the layout Measure returned
// for the same widget and constraints.
func Paint(w Widget, l *Layout, offset Offset, c BoxConstraints, ctx *Context) ([]UIShape, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if l == nil {
		return nil, fmt.Errorf("%w: nil layout", ErrLayoutMismatch)
	}
	switch w := w.(type) {
	case *Container:
		if w == nil {
			return nil, ErrNilWidget
		}
		return w.paint(l, offset, c, ctx)
	case *Flex:
		if w == nil {
			return nil, ErrNilWidget
		}
		if l.flex == nil || len(l.flex.Extents) != len(w.children) {
			return nil, fmt.Errorf("%w: flex", ErrLayoutMismatch)
		}
		return w.paint(l.flex, offset, ctx)
	case *Text:
		if w == nil {
			return nil, ErrNilWidget
		}
		if l.text == nil {
			return nil, fmt.Errorf("%w: text", ErrLayoutMismatch)
		}
		return w.paint(l.text, offset)
	case nil:
		return nil, ErrNilWidget
	default:
		panic(fmt.Sprintf("ui: unknown widget type %T", w))
	}
}

// Clone returns a deep copy of w. Clone(nil) returns nil.
func Clone(w Widget) Widget {
	switch w := w.(type) {
	case *Container:
		if w == nil {
			return nil
		}
		return w.clone()
	case *Flex:
		if w == nil {
			return nil
		}
		return w.clone()
	case *Text:
		if w == nil {
			return nil
		}
		return w.clone()
	case nil:
		return nil
	default:
		panic(fmt.Sprintf("ui: unknown widget type %T", w))
	}
}
