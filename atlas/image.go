package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
)

// Image is a tightly packed pixel buffer: rows follow each other with no
// padding, Width*BytesPerPixel bytes per row.
type Image struct {
	Data   []byte
	Width  int
	Height int
	Format PixelFormat
}

// NewImage allocates a zeroed image.
func NewImage(width, height int, format PixelFormat) *Image {
	width, height = max(width, 0), max(height, 0)
	return &Image{
		Data:   make([]byte, width*height*format.BytesPerPixel()),
		Width:  width,
		Height: height,
		Format: format,
	}
}

// Stride returns the number of bytes per row.
func (img *Image) Stride() int {
	return img.Width * img.Format.BytesPerPixel()
}

// Validate checks that the buffer length matches the dimensions.
func (img *Image) Validate() error {
	if img.Format.BytesPerPixel() == 0 {
		return fmt.Errorf("%w: undefined format", ErrFormatMismatch)
	}
	if img.Width < 0 || img.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrImageSize, img.Width, img.Height)
	}
	if want := img.Stride() * img.Height; len(img.Data) != want {
		return fmt.Errorf("%w: %dx%d %s needs %d bytes, got %d",
			ErrImageSize, img.Width, img.Height, img.Format, want, len(img.Data))
	}
	return nil
}

// PixelOffset returns the byte offset of pixel (x, y).
func (img *Image) PixelOffset(x, y int) int {
	return y*img.Stride() + x*img.Format.BytesPerPixel()
}

// Pixel returns the bytes of pixel (x, y), or nil when out of bounds.
// The returned slice aliases Data.
func (img *Image) Pixel(x, y int) []byte {
	if x < 0 || y < 0 || x >= img.Width || y >= img.Height {
		return nil
	}
	off := img.PixelOffset(x, y)
	return img.Data[off : off+img.Format.BytesPerPixel()]
}

// ToImage converts the buffer to a standard library image.
// R8 becomes image.Gray; RGBA8 and BGRA8 become image.NRGBA.
func (img *Image) ToImage() image.Image {
	bounds := image.Rect(0, 0, img.Width, img.Height)
	switch img.Format {
	case FormatR8:
		out := image.NewGray(bounds)
		copy(out.Pix, img.Data)
		return out
	case FormatBGRA8:
		out := image.NewNRGBA(bounds)
		for i := 0; i+3 < len(img.Data); i += 4 {
			out.Pix[i+0] = img.Data[i+2]
			out.Pix[i+1] = img.Data[i+1]
			out.Pix[i+2] = img.Data[i+0]
			out.Pix[i+3] = img.Data[i+3]
		}
		return out
	default:
		out := image.NewNRGBA(bounds)
		copy(out.Pix, img.Data)
		return out
	}
}

// FromImage converts a standard library image to an Image of the given format.
// Conversion to R8 keeps the alpha channel, which is what coverage masks carry.
func FromImage(src image.Image, format PixelFormat) *Image {
	b := src.Bounds()
	out := NewImage(b.Dx(), b.Dy(), format)
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			px := out.Pixel(x, y)
			switch format {
			case FormatR8:
				px[0] = c.A
			case FormatBGRA8:
				px[0], px[1], px[2], px[3] = c.B, c.G, c.R, c.A
			default:
				px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
			}
		}
	}
	return out
}

// EncodePNG writes the image as PNG.
func (img *Image) EncodePNG(w io.Writer) error {
	if err := img.Validate(); err != nil {
		return err
	}
	return png.Encode(w, img.ToImage())
}
