// Package atlas packs many small bitmaps into one GPU-friendly texture.
//
// # Packing
//
// An [Atlas] stores rectangles of known size behind stable [RectHandle]s.
// Rectangles accumulate through [Atlas.Add] until [Atlas.Pack] assigns every
// one of them a position using shelf (row) packing: rectangles are sorted by
// descending height and placed left to right, opening a new row below the
// previous one whenever the next rectangle does not fit in the atlas width.
// Every Pack repositions every rectangle; handles stay valid across repacks
// while positions do not.
//
//	a := atlas.NewDefault()
//	h := a.Add(12, 18)
//	a.Pack()
//	r, err := a.Rect(h)
//
// # Stitching
//
// [Stitch] composes the source bitmaps of a packed atlas into one contiguous
// [Image], copying row by row so that rectangles narrower than the atlas land
// at the right stride. The pixel format (and so the bytes per pixel) is a
// property of the atlas configuration.
//
// # Dirty tracking
//
// [Atlas.Changed] is set whenever the set of rectangles changes and stays set
// until the consumer has rebuilt and uploaded the composed bitmap and calls
// [Atlas.MarkSynced]. [Sheet.Sync] implements the whole protocol against an
// [Uploader].
package atlas
