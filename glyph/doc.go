// Package glyph converts runes to coverage bitmaps.
//
// A [Rasterizer] turns one rune at one pixel size into a single-channel
// bitmap plus the [Metrics] needed to position it on a baseline. Text layout
// only ever talks to this interface; [OpenType] is the production
// implementation built on golang.org/x/image, and [Monospace] draws solid
// blocks with fixed advances for headless tooling and deterministic tests.
package glyph
