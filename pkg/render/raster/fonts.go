package raster

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/go-drift/flit/pkg/errors"
)

// FontManager parses a font once and hands out faces cached per size.
// It is not safe for concurrent use; each Renderer owns one.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

var (
	defaultFont     *opentype.Font
	defaultFontErr  error
	defaultFontOnce sync.Once
)

// DefaultFont returns the bundled Go Regular font, parsed once per process.
func DefaultFont() (*opentype.Font, error) {
	defaultFontOnce.Do(func() {
		defaultFont, defaultFontErr = opentype.Parse(goregular.TTF)
		if defaultFontErr != nil {
			defaultFontErr = &errors.FrameError{Op: "raster.DefaultFont", Kind: errors.KindRender, Err: defaultFontErr}
		}
	})
	return defaultFont, defaultFontErr
}

// NewFontManager creates a manager for f. A nil f selects DefaultFont.
func NewFontManager(f *opentype.Font) (*FontManager, error) {
	if f == nil {
		var err error
		if f, err = DefaultFont(); err != nil {
			return nil, err
		}
	}
	return &FontManager{font: f, faces: make(map[float64]font.Face)}, nil
}

// ParseFont parses TrueType or OpenType data into a font for NewFontManager.
func ParseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, &errors.FrameError{Op: "raster.ParseFont", Kind: errors.KindRender, Err: err}
	}
	return f, nil
}

// Face returns the face for size pixels, creating it on first use.
func (m *FontManager) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("font size %g must be positive", size)
	}
	if face, ok := m.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	m.faces[size] = face
	return face, nil
}

// Close releases every cached face.
func (m *FontManager) Close() error {
	var first error
	for size, face := range m.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(m.faces, size)
	}
	return first
}
