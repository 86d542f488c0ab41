package ui

import "github.com/gogpu/ui/internal/logging"

// Frame is the output of one layout and paint pass over a tree.
type Frame struct {
	// Shapes in paint order: parents before children, children in
	// declaration order.
	Shapes []UIShape
	// Size is the root's measured size.
	Size Size
	// Truncated reports that some text did not fit.
	Truncated bool
	// Layout is the root layout the shapes were painted from.
	Layout *Layout
}

// BuildTree lays out root under c and paints it at the origin.
//
// Layout completes for the whole tree before any shape is produced, so every
// glyph the tree needs is on its style's sheet before glyph rectangles are
// read.
func BuildTree(root Widget, c BoxConstraints, ctx *Context) (*Frame, error) {
	f, err := buildTree(root, c, ctx)
	if err != nil {
		logging.Logger().Warn("layout pass failed", "constraints", c.String(), "error", err)
		return nil, err
	}
	return f, nil
}

func buildTree(root Widget, c BoxConstraints, ctx *Context) (*Frame, error) {
	if root == nil {
		return nil, ErrNilWidget
	}
	if ctx == nil {
		return nil, ErrNilContext
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	ctx.beginPass()
	l, err := Measure(root, c, ctx)
	if err != nil {
		return nil, err
	}
	shapes, err := Paint(root, l, Offset{}, c, ctx)
	if err != nil {
		return nil, err
	}
	return &Frame{
		Shapes:    shapes,
		Size:      l.Size,
		Truncated: l.Truncated,
		Layout:    l,
	}, nil
}
