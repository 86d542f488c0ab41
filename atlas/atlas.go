package atlas

import (
	"cmp"
	"iter"
	"slices"

	"github.com/gogpu/ui/internal/logging"
)

// DefaultWidth is the atlas width used when none is configured.
const DefaultWidth = 512

// maxWidth bounds Config.Width to the largest texture dimension commonly
// supported by GPUs.
const maxWidth = 16384

// Config holds atlas configuration.
type Config struct {
	// Width is the row width rectangles are packed into.
	// A rectangle wider than Width widens the atlas to fit it.
	// Default: 512
	Width int

	// Format is the pixel format of the composed bitmap.
	// Default: FormatR8
	Format PixelFormat
}

// DefaultConfig returns the default configuration: 512 wide, single channel.
func DefaultConfig() Config {
	return Config{
		Width:  DefaultWidth,
		Format: FormatR8,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Width < 1 {
		return &ConfigError{Field: "Width", Reason: "must be at least 1"}
	}
	if c.Width > maxWidth {
		return &ConfigError{Field: "Width", Reason: "must be at most 16384"}
	}
	if c.Format.BytesPerPixel() == 0 {
		return &ConfigError{Field: "Format", Reason: "must be a defined pixel format"}
	}
	return nil
}

// Rect is a placed rectangle in atlas pixel coordinates.
// X and Y are zero until the atlas has been packed.
type Rect struct {
	X, Y, W, H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Intersects reports whether r and o share at least one pixel.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Within reports whether r lies inside [0,width)×[0,height).
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.Right() <= width && r.Bottom() <= height
}

// Atlas assigns non-overlapping placements to a set of rectangles.
//
// Atlas is not safe for concurrent use.
type Atlas struct {
	config Config
	rects  slotMap
	packer shelfPacker

	width  int
	height int

	// changed is the dirty flag shared with the bitmap consumer.
	changed bool
	// needsPack is set by Add/Remove and cleared by Pack.
	needsPack bool
}

// New creates an empty atlas with the given configuration.
func New(config Config) (*Atlas, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Atlas{config: config}, nil
}

// NewDefault creates an empty atlas with the default configuration.
func NewDefault() *Atlas {
	a, _ := New(DefaultConfig())
	return a
}

// Config returns the atlas configuration.
func (a *Atlas) Config() Config { return a.config }

// Format returns the pixel format of the composed bitmap.
func (a *Atlas) Format() PixelFormat { return a.config.Format }

// Width returns the width computed by the last Pack, 0 before the first one.
func (a *Atlas) Width() int { return a.width }

// Height returns the height computed by the last Pack.
func (a *Atlas) Height() int { return a.height }

// Len returns the number of rectangles in the atlas.
func (a *Atlas) Len() int { return a.rects.live }

// Changed reports whether rectangles were added or removed since the consumer
// last called MarkSynced.
func (a *Atlas) Changed() bool { return a.changed }

// MarkSynced clears the Changed flag. Call it after the composed bitmap has
// been rebuilt and handed to the GPU.
func (a *Atlas) MarkSynced() { a.changed = false }

// NeedsPack reports whether rectangles were added or removed since the last Pack.
func (a *Atlas) NeedsPack() bool { return a.needsPack }

// Add registers an unplaced w×h rectangle and returns its handle.
// Negative dimensions are treated as zero.
func (a *Atlas) Add(w, h int) RectHandle {
	handle := a.rects.insert(Rect{W: max(w, 0), H: max(h, 0)})
	a.changed = true
	a.needsPack = true
	return handle
}

// Remove deletes the rectangle behind h. The handle becomes stale.
func (a *Atlas) Remove(h RectHandle) error {
	if !a.rects.remove(h) {
		return &HandleError{Handle: h}
	}
	a.changed = true
	a.needsPack = true
	return nil
}

// Contains reports whether h refers to a live rectangle.
func (a *Atlas) Contains(h RectHandle) bool {
	_, ok := a.rects.get(h)
	return ok
}

// Rect returns the current placement of h.
func (a *Atlas) Rect(h RectHandle) (Rect, error) {
	s, ok := a.rects.get(h)
	if !ok {
		return Rect{}, &HandleError{Handle: h}
	}
	return s.rect, nil
}

// UV returns the normalized [x0, y0, x1, y1] coordinates of h within the
// packed atlas, as sampled by a renderer.
func (a *Atlas) UV(h RectHandle) ([4]float32, error) {
	r, err := a.Rect(h)
	if err != nil {
		return [4]float32{}, err
	}
	if a.needsPack {
		return [4]float32{}, ErrNotPacked
	}
	return normalize(r, a.width, a.height), nil
}

func normalize(r Rect, width, height int) [4]float32 {
	var uv [4]float32
	if width > 0 {
		uv[0] = float32(r.X) / float32(width)
		uv[2] = float32(r.Right()) / float32(width)
	}
	if height > 0 {
		uv[1] = float32(r.Y) / float32(height)
		uv[3] = float32(r.Bottom()) / float32(height)
	}
	return uv
}

// All iterates over every rectangle in slot order.
func (a *Atlas) All() iter.Seq2[RectHandle, Rect] {
	return func(yield func(RectHandle, Rect) bool) {
		for _, h := range a.rects.handles() {
			if !yield(h, a.rects.slots[h.index].rect) {
				return
			}
		}
	}
}

// Pack assigns a position to every rectangle.
//
// Rectangles are sorted by descending height (ties keep insertion order) and
// placed in rows of the configured width; a rectangle that would cross the
// right edge starts a new row directly below the previous one. The resulting
// height is the bottom of the last row. Packing is deterministic: calling Pack
// again without intervening Add or Remove yields identical placements.
func (a *Atlas) Pack() {
	handles := a.rects.handles()
	slices.SortStableFunc(handles, func(x, y RectHandle) int {
		sx, sy := &a.rects.slots[x.index], &a.rects.slots[y.index]
		if c := cmp.Compare(sy.rect.H, sx.rect.H); c != 0 {
			return c
		}
		return cmp.Compare(sx.seq, sy.seq)
	})

	width := a.config.Width
	for _, h := range handles {
		width = max(width, a.rects.slots[h.index].rect.W)
	}

	a.packer.reset(width)
	for _, h := range handles {
		s := &a.rects.slots[h.index]
		s.rect.X, s.rect.Y = a.packer.place(s.rect.W, s.rect.H)
	}

	a.width = width
	a.height = a.packer.height()
	a.needsPack = false

	logging.Logger().Debug("atlas packed",
		"rects", len(handles),
		"width", a.width,
		"height", a.height,
		"rows", a.packer.shelfCount())
}

// RowCount returns the number of rows produced by the last Pack.
func (a *Atlas) RowCount() int {
	return a.packer.shelfCount()
}

// Utilization returns the fraction of the packed area covered by rectangles
// (0.0 to 1.0).
func (a *Atlas) Utilization() float64 {
	return a.packer.utilization()
}
