package atlas

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
)

func TestBlit_RowWise(t *testing.T) {
	dst := NewImage(2, 2, FormatR8)
	if err := Blit(dst, &Image{Data: []byte{0x11}, Width: 1, Height: 1, Format: FormatR8}, 0, 0); err != nil {
		t.Fatal(err)
	}
	if err := Blit(dst, &Image{Data: []byte{0x22}, Width: 1, Height: 1, Format: FormatR8}, 1, 0); err != nil {
		t.Fatal(err)
	}

	want := []byte{0x11, 0x22, 0x00, 0x00}
	if !bytes.Equal(dst.Data, want) {
		t.Errorf("Data = % x, want % x", dst.Data, want)
	}
}

func TestBlit_StrideDiffersFromSource(t *testing.T) {
	dst := NewImage(4, 3, FormatR8)
	src := &Image{Data: []byte{1, 2, 3, 4}, Width: 2, Height: 2, Format: FormatR8}
	if err := Blit(dst, src, 1, 1); err != nil {
		t.Fatal(err)
	}

	want := []byte{
		0, 0, 0, 0,
		0, 1, 2, 0,
		0, 3, 4, 0,
	}
	if !bytes.Equal(dst.Data, want) {
		t.Errorf("Data = %v, want %v", dst.Data, want)
	}
}

func TestBlit_RGBA(t *testing.T) {
	dst := NewImage(2, 1, FormatRGBA8)
	src := &Image{Data: []byte{1, 2, 3, 4}, Width: 1, Height: 1, Format: FormatRGBA8}
	if err := Blit(dst, src, 1, 0); err != nil {
		t.Fatal(err)
	}
	if got := dst.Pixel(1, 0); !bytes.Equal(got, []byte{1, 2, 3, 4}) {
		t.Errorf("Pixel(1,0) = %v", got)
	}
	if got := dst.Pixel(0, 0); !bytes.Equal(got, []byte{0, 0, 0, 0}) {
		t.Errorf("Pixel(0,0) = %v", got)
	}
}

func TestBlit_Errors(t *testing.T) {
	dst := NewImage(2, 2, FormatR8)
	if err := Blit(dst, NewImage(1, 1, FormatRGBA8), 0, 0); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("format mismatch error = %v", err)
	}
	if err := Blit(dst, NewImage(2, 2, FormatR8), 1, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("out of bounds error = %v", err)
	}
}

func TestStitch(t *testing.T) {
	a, _ := New(Config{Width: 3, Format: FormatR8})
	tall := a.Add(1, 2)
	dot := a.Add(1, 1)
	wide := a.Add(2, 1)
	a.Pack()

	img, err := Stitch(a, map[RectHandle]*Image{
		tall: {Data: []byte{0xA0, 0xA1}, Width: 1, Height: 2, Format: FormatR8},
		dot:  {Data: []byte{0xB0}, Width: 1, Height: 1, Format: FormatR8},
		wide: {Data: []byte{0xC0, 0xC1}, Width: 2, Height: 1, Format: FormatR8},
	})
	if err != nil {
		t.Fatal(err)
	}
	// Row 0: tall(0,0) dot(1,0); wide does not fit (2+2>3) and opens row 1 at y=2.
	if img.Width != 3 || img.Height != 3 {
		t.Fatalf("size = %dx%d, want 3x3", img.Width, img.Height)
	}
	want := []byte{
		0xA0, 0xB0, 0x00,
		0xA1, 0x00, 0x00,
		0xC0, 0xC1, 0x00,
	}
	if !bytes.Equal(img.Data, want) {
		t.Errorf("Data = % x, want % x", img.Data, want)
	}
}

func TestStitch_Errors(t *testing.T) {
	a := NewDefault()
	h := a.Add(2, 2)
	if _, err := Stitch(a, nil); !errors.Is(err, ErrNotPacked) {
		t.Errorf("unpacked error = %v", err)
	}
	a.Pack()
	_, err := Stitch(a, map[RectHandle]*Image{h: NewImage(3, 2, FormatR8)})
	if !errors.Is(err, ErrImageSize) {
		t.Errorf("size mismatch error = %v", err)
	}
	_, err = Stitch(a, map[RectHandle]*Image{{}: NewImage(2, 2, FormatR8)})
	if !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("unknown handle error = %v", err)
	}
}

func TestImage_EncodePNG(t *testing.T) {
	img := &Image{Data: []byte{0, 255, 128, 64}, Width: 2, Height: 2, Format: FormatR8}
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		t.Fatal(err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	back := FromImage(decoded, FormatRGBA8)
	if px := back.Pixel(1, 0); px[0] != 255 {
		t.Errorf("decoded pixel (1,0) = %v, want red 255", px)
	}
}

func TestImage_BGRARoundTrip(t *testing.T) {
	img := &Image{Data: []byte{10, 20, 30, 255}, Width: 1, Height: 1, Format: FormatBGRA8}
	back := FromImage(img.ToImage(), FormatBGRA8)
	if !bytes.Equal(back.Data, img.Data) {
		t.Errorf("BGRA round trip = %v, want %v", back.Data, img.Data)
	}
}

func TestImage_Validate(t *testing.T) {
	if err := (&Image{Data: make([]byte, 3), Width: 2, Height: 2, Format: FormatR8}).Validate(); !errors.Is(err, ErrImageSize) {
		t.Errorf("short buffer error = %v", err)
	}
	if err := NewImage(2, 2, FormatRGBA8).Validate(); err != nil {
		t.Errorf("valid image error = %v", err)
	}
}
