// Package asset loads raw resources (font files, images) by path and keeps
// fonts registered by family name.
package asset

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/ui/internal/logging"
)

// DefaultFontFamily is the family name under which WithGoFonts registers
// the Go Regular font.
const DefaultFontFamily = "Go"

var (
	// ErrAssetNotFound is returned when a path is not present in the file system.
	ErrAssetNotFound = errors.New("asset: not found")

	// ErrFontNotFound is returned when no font is registered for a family.
	ErrFontNotFound = errors.New("asset: font family not registered")

	// ErrInvalidFont is returned when font data cannot be parsed.
	ErrInvalidFont = errors.New("asset: invalid font data")
)

// Option configures a Loader.
type Option func(*Loader)

// WithGoFonts registers the embedded Go Regular font as DefaultFontFamily.
func WithGoFonts() Option {
	return func(l *Loader) {
		l.fonts[DefaultFontFamily] = goregular.TTF
	}
}

// WithFont registers font data under family without validation.
func WithFont(family string, data []byte) Option {
	return func(l *Loader) {
		l.fonts[family] = data
	}
}

// Loader reads assets from a file system and caches their bytes.
//
// Loader is safe for concurrent use.
type Loader struct {
	fsys fs.FS

	mu     sync.RWMutex
	assets map[string][]byte
	fonts  map[string][]byte
}

// NewLoader creates a loader reading from fsys. fsys may be nil, in which case
// only registered fonts are available.
func NewLoader(fsys fs.FS, opts ...Option) *Loader {
	l := &Loader{
		fsys:   fsys,
		assets: make(map[string][]byte),
		fonts:  make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the bytes at path, reading the file system on first access.
func (l *Loader) Load(path string) ([]byte, error) {
	if data, ok := l.Asset(path); ok {
		return data, nil
	}
	if l.fsys == nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
	}

	data, err := fs.ReadFile(l.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("asset: read %s: %w", path, err)
	}

	l.mu.Lock()
	l.assets[path] = data
	l.mu.Unlock()

	logging.Logger().Debug("asset loaded", "path", path, "bytes", len(data))
	return data, nil
}

// Asset returns previously loaded bytes without touching the file system.
func (l *Loader) Asset(path string) ([]byte, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	data, ok := l.assets[path]
	return data, ok
}

// RegisterFont validates data as a TrueType/OpenType font and registers it.
// When family is empty the family name is read from the font's name table.
// It returns the family the font was registered under.
func (l *Loader) RegisterFont(family string, data []byte) (string, error) {
	if _, err := gotext.ParseTTF(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	if family == "" {
		name, err := familyName(data)
		if err != nil {
			return "", err
		}
		family = name
	}

	l.mu.Lock()
	l.fonts[family] = data
	l.mu.Unlock()
	return family, nil
}

// LoadFont loads a font file by path and registers it under the family
// named in the file.
func (l *Loader) LoadFont(path string) (string, error) {
	data, err := l.Load(path)
	if err != nil {
		return "", err
	}
	return l.RegisterFont("", data)
}

// FontByFamily returns the font data registered for family.
func (l *Loader) FontByFamily(family string) ([]byte, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	data, ok := l.fonts[family]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}
	return data, nil
}

// Families returns the registered font families in sorted order.
func (l *Loader) Families() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, 0, len(l.fonts))
	for f := range l.fonts {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

func familyName(data []byte) (string, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidFont, err)
	}
	name, err := f.Name(nil, sfnt.NameIDFamily)
	if err != nil || name == "" {
		return "", fmt.Errorf("%w: font has no family name", ErrInvalidFont)
	}
	return name, nil
}
