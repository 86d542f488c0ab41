package asset

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

func TestLoader_Load(t *testing.T) {
	fsys := fstest.MapFS{
		"img/logo.bin": {Data: []byte{1, 2, 3}},
	}
	l := NewLoader(fsys)

	data, err := l.Load("img/logo.bin")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{1, 2, 3}) {
		t.Errorf("Load = %v", data)
	}
	if cached, ok := l.Asset("img/logo.bin"); !ok || len(cached) != 3 {
		t.Error("asset not cached after Load")
	}

	if _, err := l.Load("missing.bin"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("missing asset error = %v", err)
	}
	if _, err := NewLoader(nil).Load("x"); !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("nil fs error = %v", err)
	}
}

func TestLoader_GoFonts(t *testing.T) {
	l := NewLoader(nil, WithGoFonts())
	data, err := l.FontByFamily(DefaultFontFamily)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, goregular.TTF) {
		t.Error("default family is not Go Regular")
	}
	if _, err := l.FontByFamily("Comic"); !errors.Is(err, ErrFontNotFound) {
		t.Errorf("unknown family error = %v", err)
	}
}

func TestLoader_RegisterFont(t *testing.T) {
	l := NewLoader(nil)
	family, err := l.RegisterFont("Bold", gobold.TTF)
	if err != nil || family != "Bold" {
		t.Fatalf("RegisterFont = %q, %v", family, err)
	}
	if _, err := l.RegisterFont("Broken", []byte("nope")); !errors.Is(err, ErrInvalidFont) {
		t.Errorf("invalid font error = %v", err)
	}
	if got := l.Families(); len(got) != 1 || got[0] != "Bold" {
		t.Errorf("Families() = %v", got)
	}
}

func TestLoader_LoadFontReadsFamilyName(t *testing.T) {
	l := NewLoader(fstest.MapFS{
		"fonts/go.ttf": {Data: goregular.TTF},
	})
	family, err := l.LoadFont("fonts/go.ttf")
	if err != nil {
		t.Fatal(err)
	}
	if family != "Go" {
		t.Errorf("family = %q, want Go", family)
	}
	if _, err := l.FontByFamily("Go"); err != nil {
		t.Error(err)
	}
}
