package folio

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// FontSet holds a regular and a bold typeface and hands out text/v2 faces
// per pixel size. Faces are cached; sizes are rounded to half pixels.
type FontSet struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	size int // half pixels
	bold bool
}

var defaultFonts *FontSet

// DefaultFontSet returns a FontSet built from the Go fonts. It panics only if
// the embedded font data is corrupt.
func DefaultFontSet() *FontSet {
	if defaultFonts == nil {
		fs, err := LoadFontSet(goregular.TTF, gobold.TTF)
		if err != nil {
			panic(err)
		}
		defaultFonts = fs
	}
	return defaultFonts
}

// LoadFontSet parses TTF/OTF data for the regular and bold weights. A nil
// bold slice reuses the regular face.
func LoadFontSet(regular, bold []byte) (*FontSet, error) {
	reg, err := text.NewGoTextFaceSource(bytes.NewReader(regular))
	if err != nil {
		return nil, fmt.Errorf("folio: failed to parse regular font: %w", err)
	}
	b := reg
	if bold != nil {
		b, err = text.NewGoTextFaceSource(bytes.NewReader(bold))
		if err != nil {
			return nil, fmt.Errorf("folio: failed to parse bold font: %w", err)
		}
	}
	return &FontSet{regular: reg, bold: b, faces: make(map[faceKey]*text.GoTextFace)}, nil
}

// Face returns the cached face for the given size and weight.
func (f *FontSet) Face(size float64, bold bool) *text.GoTextFace {
	if size <= 0 {
		size = 14
	}
	key := faceKey{size: int(math.Round(size * 2)), bold: bold}
	if face, ok := f.faces[key]; ok {
		return face
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face := &text.GoTextFace{Source: src, Size: float64(key.size) / 2}
	f.faces[key] = face
	return face
}

// Measure returns the rendered width and line height of s.
func (f *FontSet) Measure(s string, size float64, bold bool) (width, height float64) {
	face := f.Face(size, bold)
	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap
	return text.Measure(s, face, lh)
}
