package atlas

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ui/internal/logging"
)

// Sheet couples an Atlas with the images placed in it.
//
// Images are added at any time; the atlas is packed lazily by the first
// geometry query or Compose. Sync re-stitches and uploads only when the set
// of images changed since the last successful upload.
type Sheet struct {
	atlas    *Atlas
	images   map[RectHandle]*Image
	composed *Image
}

// NewSheet creates an empty sheet.
func NewSheet(config Config) (*Sheet, error) {
	a, err := New(config)
	if err != nil {
		return nil, err
	}
	return &Sheet{
		atlas:  a,
		images: make(map[RectHandle]*Image),
	}, nil
}

// Atlas returns the underlying atlas.
func (s *Sheet) Atlas() *Atlas { return s.atlas }

// Len returns the number of images on the sheet.
func (s *Sheet) Len() int { return len(s.images) }

// Add places img on the sheet. The image is not copied.
func (s *Sheet) Add(img *Image) (RectHandle, error) {
	if img == nil {
		return RectHandle{}, fmt.Errorf("%w: nil image", ErrImageSize)
	}
	if img.Format != s.atlas.Format() {
		return RectHandle{}, fmt.Errorf("%w: %s image on %s sheet", ErrFormatMismatch, img.Format, s.atlas.Format())
	}
	if err := img.Validate(); err != nil {
		return RectHandle{}, err
	}
	h := s.atlas.Add(img.Width, img.Height)
	s.images[h] = img
	s.composed = nil
	return h, nil
}

// Remove deletes the image behind h.
func (s *Sheet) Remove(h RectHandle) error {
	if err := s.atlas.Remove(h); err != nil {
		return err
	}
	delete(s.images, h)
	s.composed = nil
	return nil
}

// Image returns the source image behind h.
func (s *Sheet) Image(h RectHandle) (*Image, bool) {
	img, ok := s.images[h]
	return img, ok
}

func (s *Sheet) packIfNeeded() {
	if s.atlas.NeedsPack() {
		s.atlas.Pack()
	}
}

// Rect returns the placement of h, packing first if needed.
func (s *Sheet) Rect(h RectHandle) (Rect, error) {
	s.packIfNeeded()
	return s.atlas.Rect(h)
}

// UV returns the normalized coordinates of h, packing first if needed.
func (s *Sheet) UV(h RectHandle) ([4]float32, error) {
	s.packIfNeeded()
	return s.atlas.UV(h)
}

// Compose returns the stitched bitmap of all images, packing first if needed.
// The result is cached until the next Add or Remove.
func (s *Sheet) Compose() (*Image, error) {
	s.packIfNeeded()
	if s.composed != nil {
		return s.composed, nil
	}
	img, err := Stitch(s.atlas, s.images)
	if err != nil {
		return nil, err
	}
	s.composed = img
	return img, nil
}

// Sync uploads the composed bitmap when the atlas changed since the last
// successful Sync. It reports whether an upload happened. On upload failure
// the atlas stays marked as changed so the next Sync retries.
func (s *Sheet) Sync(up Uploader) (gpucontext.Texture, bool, error) {
	if up == nil {
		return nil, false, ErrNilUploader
	}
	if !s.atlas.Changed() {
		return nil, false, nil
	}
	img, err := s.Compose()
	if err != nil {
		return nil, false, err
	}
	tex, err := up.UploadAtlas(img)
	if err != nil {
		return nil, false, fmt.Errorf("atlas: upload %dx%d %s: %w", img.Width, img.Height, img.Format, err)
	}
	s.atlas.MarkSynced()
	logging.Logger().Debug("atlas synced",
		"width", img.Width,
		"height", img.Height,
		"format", img.Format.String(),
		"images", len(s.images))
	return tex, true, nil
}
