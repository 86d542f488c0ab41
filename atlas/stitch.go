package atlas

import "fmt"

// Blit copies src into dst with its top-left corner at (x, y), one row at a
// time. Both images must share a pixel format and src must fit entirely
// inside dst.
func Blit(dst, src *Image, x, y int) error {
	if dst.Format != src.Format {
		return fmt.Errorf("%w: blit %s into %s", ErrFormatMismatch, src.Format, dst.Format)
	}
	if x < 0 || y < 0 || x+src.Width > dst.Width || y+src.Height > dst.Height {
		return fmt.Errorf("%w: %dx%d at (%d,%d) in %dx%d",
			ErrOutOfBounds, src.Width, src.Height, x, y, dst.Width, dst.Height)
	}
	rowBytes := src.Stride()
	if len(src.Data) < rowBytes*src.Height {
		return fmt.Errorf("%w: source has %d bytes, needs %d", ErrImageSize, len(src.Data), rowBytes*src.Height)
	}
	for row := range src.Height {
		d := dst.PixelOffset(x, y+row)
		s := row * rowBytes
		copy(dst.Data[d:d+rowBytes], src.Data[s:s+rowBytes])
	}
	return nil
}

// Stitch composes a packed atlas into one bitmap of the atlas dimensions.
//
// Every entry of sources is copied into the placement of its handle; pixels
// not covered by any source stay zero. Each source must match its rectangle's
// size and the atlas pixel format.
func Stitch(a *Atlas, sources map[RectHandle]*Image) (*Image, error) {
	if a.NeedsPack() {
		return nil, ErrNotPacked
	}
	dst := NewImage(a.Width(), a.Height(), a.Format())
	for h, src := range sources {
		r, err := a.Rect(h)
		if err != nil {
			return nil, err
		}
		if src.Width != r.W || src.Height != r.H {
			return nil, fmt.Errorf("%w: image %dx%d for rect %dx%d (handle %s)",
				ErrImageSize, src.Width, src.Height, r.W, r.H, h)
		}
		if err := src.Validate(); err != nil {
			return nil, err
		}
		if err := Blit(dst, src, r.X, r.Y); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
