// Package ui lays out retained widget trees and turns them into flat lists of
// shapes for a renderer.
//
// # Overview
//
// A tree is built from three widget kinds: [Container] (a box with an optional
// background color and one child), [Flex] (a row or column distributing space
// between fixed and flexible children) and [Text] (word-wrapped glyphs). Layout
// follows the box-constraint model: constraints flow down, sizes flow up, and
// every widget returns a [Size] inside the [BoxConstraints] it was given.
//
// # Quick Start
//
//	root := ui.NewFlex().
//		WithAxis(ui.Horizontal).
//		WithFixedChild(ui.NewContainer().WithWidth(20).WithColor(ui.Hex("#e33")).Build()).
//		WithFlexChild(ui.NewText("hello world"), 1)
//
//	ctx := ui.NewContext()
//	frame, err := ui.BuildTree(root, ui.Tight(ui.Size{Width: 800, Height: 600}), ctx)
//	if err != nil {
//		return err
//	}
//	for _, s := range frame.Shapes {
//		// draw s
//	}
//
// # Passes
//
// [BuildTree] runs two passes. [Measure] computes a [Layout] for the tree
// without producing output; [Paint] consumes that Layout and emits
// [UIShape]s at absolute offsets. The Layout value carries everything paint
// needs (flex extents and offsets, positioned letters), so a widget holds no
// per-pass state and may be laid out again at any time.
//
// # Text and atlases
//
// Text widgets resolve their [TextStyle] through the [Context], which
// rasterizes glyphs once per (font family, size) and places the bitmaps on an
// [atlas.Sheet]. Glyph shapes carry their pixel rectangle on that sheet and
// its normalized UV coordinates; a renderer uploads the sheet whenever it
// reports a change (see [TextStyleComputed.Sheet]).
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Logging
//
// The package is silent by default. Install a logger with [SetLogger] to
// receive layout diagnostics.
package ui

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
