package atlas

import "github.com/gogpu/gputypes"

// PixelFormat describes the layout of one pixel in atlas bitmaps.
type PixelFormat uint8

const (
	// FormatUndefined is the zero value and is rejected by Config.Validate.
	FormatUndefined PixelFormat = iota

	// FormatR8 is a single 8-bit channel, used for glyph coverage masks.
	FormatR8

	// FormatRGBA8 is 8-bit RGBA, used for images.
	FormatRGBA8

	// FormatBGRA8 is 8-bit BGRA, the usual swapchain order.
	FormatBGRA8
)

// BytesPerPixel returns the size of one pixel in bytes, 0 for FormatUndefined.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case FormatR8:
		return 1
	case FormatRGBA8, FormatBGRA8:
		return 4
	default:
		return 0
	}
}

// GPUFormat returns the WebGPU texture format an uploader should allocate.
func (f PixelFormat) GPUFormat() gputypes.TextureFormat {
	switch f {
	case FormatR8:
		return gputypes.TextureFormatR8Unorm
	case FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}

// String returns the string representation of the pixel format.
func (f PixelFormat) String() string {
	switch f {
	case FormatR8:
		return "R8"
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	default:
		return "Undefined"
	}
}
