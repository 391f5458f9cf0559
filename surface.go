package folio

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is a 2D drawing target. The particle field and every widget draw
// through it, so tests can record draw calls instead of reading pixels.
// All coordinates are in screen pixels.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillCircle(cx, cy, r float64, c Color)
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, width float64, c Color)
	// FillQuad fills the quadrilateral p[0] p[1] p[2] p[3] (in winding order).
	FillQuad(p [4]Vec2, c Color)
	// Text draws s with its top-left (or top-center / top-right, per
	// style.Align) at (x, y).
	Text(s string, x, y float64, style TextStyle)
	MeasureText(s string, size float64, bold bool) (w, h float64)
}

// TextStyle describes how a string is drawn.
type TextStyle struct {
	Size  float64
	Color Color
	Bold  bool
	Align TextAlign
}

// imageSurface draws onto an Ebitengine image.
type imageSurface struct {
	dst   *ebiten.Image
	fonts *FontSet
}

// NewImageSurface wraps dst. A nil image yields a nil Surface, which every
// drawing component treats as "absent".
func NewImageSurface(dst *ebiten.Image, fonts *FontSet) Surface {
	if dst == nil {
		return nil
	}
	if fonts == nil {
		fonts = DefaultFontSet()
	}
	return &imageSurface{dst: dst, fonts: fonts}
}

func (s *imageSurface) Size() (int, int) {
	b := s.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (s *imageSurface) Clear() {
	s.dst.Clear()
}

func (s *imageSurface) FillCircle(cx, cy, r float64, c Color) {
	if r <= 0 || c.A <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c.toRGBA(), true)
}

func (s *imageSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	if c.A <= 0 {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c.toRGBA(), true)
}

func (s *imageSurface) FillRect(r Rect, c Color) {
	if r.Width <= 0 || r.Height <= 0 || c.A <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), c.toRGBA(), false)
}

func (s *imageSurface) StrokeRect(r Rect, width float64, c Color) {
	if c.A <= 0 {
		return
	}
	vector.StrokeRect(s.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), c.toRGBA(), false)
}

var quadIndices = []uint16{0, 1, 2, 0, 2, 3}

func (s *imageSurface) FillQuad(p [4]Vec2, c Color) {
	if c.A <= 0 {
		return
	}
	rgba := c.toRGBA()
	cr := float32(rgba.R) / 255
	cg := float32(rgba.G) / 255
	cb := float32(rgba.B) / 255
	ca := float32(rgba.A) / 255
	var verts [4]ebiten.Vertex
	for i := range p {
		verts[i] = ebiten.Vertex{
			DstX: float32(p[i].X), DstY: float32(p[i].Y),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	s.dst.DrawTriangles(verts[:], quadIndices, whiteSubImage(), &ebiten.DrawTrianglesOptions{})
}

func (s *imageSurface) Text(str string, x, y float64, style TextStyle) {
	if str == "" || style.Color.A <= 0 {
		return
	}
	face := s.fonts.Face(style.Size, style.Bold)
	op := &text.DrawOptions{}
	switch style.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
	}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(style.Color.toRGBA())
	text.Draw(s.dst, str, face, op)
}

func (s *imageSurface) MeasureText(str string, size float64, bold bool) (float64, float64) {
	return s.fonts.Measure(str, size, bold)
}

var whitePixels *ebiten.Image

// whiteSubImage returns the inner pixel of a 3x3 white image, used as the
// texture for solid-color triangles.
func whiteSubImage() *ebiten.Image {
	if whitePixels == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(ColorWhite.toRGBA())
		whitePixels = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixels
}
