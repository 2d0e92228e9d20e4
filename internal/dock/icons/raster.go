package icons

import (
	"image"
	"image/color"
	"strings"

	"git.sr.ht/~sbinet/gg"
)

// RasterPainter draws onto a gg context.
type RasterPainter struct {
	dc *gg.Context
}

// NewRasterPainter creates a transparent w×h pixel canvas.
func NewRasterPainter(w, h int) *RasterPainter {
	return &RasterPainter{dc: gg.NewContext(w, h)}
}

// Image returns the canvas.
func (p *RasterPainter) Image() image.Image {
	return p.dc.Image()
}

func (p *RasterPainter) Line(a, b Point, width float64, c color.Color) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	p.dc.Stroke()
}

func (p *RasterPainter) FillRect(r Rect, radius float64, c color.Color) {
	p.dc.SetColor(c)
	p.rect(r, radius)
	p.dc.Fill()
}

func (p *RasterPainter) StrokeRect(r Rect, radius, width float64, c color.Color) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.rect(r, radius)
	p.dc.Stroke()
}

func (p *RasterPainter) FillCircle(center Point, radius float64, c color.Color) {
	p.dc.SetColor(c)
	p.dc.DrawCircle(center.X, center.Y, radius)
	p.dc.Fill()
}

func (p *RasterPainter) StrokeCircle(center Point, radius, width float64, c color.Color) {
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.DrawCircle(center.X, center.Y, radius)
	p.dc.Stroke()
}

func (p *RasterPainter) FillPolygon(pts []Point, c color.Color) {
	if len(pts) < 3 {
		return
	}
	p.dc.SetColor(c)
	p.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		p.dc.LineTo(pt.X, pt.Y)
	}
	p.dc.ClosePath()
	p.dc.Fill()
}

func (p *RasterPainter) rect(r Rect, radius float64) {
	if radius > 0 {
		p.dc.DrawRoundedRectangle(r.X, r.Y, r.W, r.H, radius)
		return
	}
	p.dc.DrawRectangle(r.X, r.Y, r.W, r.H)
}

// Braille dots per terminal cell.
const (
	dotsX = 2
	dotsY = 4
)

// supersample is how many pixels per dot axis the icon is rasterized at.
const supersample = 4

// coverage is the fraction of a dot's pixels that must be inked to light it.
const coverage = 0.3

var dotBits = [dotsY][dotsX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// RenderBraille draws the custom icon name into a cols×rows block of braille cells,
// one string per row.
func RenderBraille(name string, cols, rows int) []string {
	w, h := cols*dotsX*supersample, rows*dotsY*supersample
	p := NewRasterPainter(w, h)
	Draw(p, name, Rect{0, 0, float64(w), float64(h)}, color.White)
	return Braille(p.Image(), cols, rows)
}

// Braille downsamples img into cols×rows braille cells, lighting a dot when enough
// of the pixels under it are opaque.
func Braille(img image.Image, cols, rows int) []string {
	b := img.Bounds()
	dw := float64(b.Dx()) / float64(cols*dotsX)
	dh := float64(b.Dy()) / float64(rows*dotsY)

	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var sb strings.Builder
		for col := 0; col < cols; col++ {
			cell := rune(0x2800)
			for dy := 0; dy < dotsY; dy++ {
				for dx := 0; dx < dotsX; dx++ {
					x0 := b.Min.X + int(float64(col*dotsX+dx)*dw)
					y0 := b.Min.Y + int(float64(row*dotsY+dy)*dh)
					if inked(img, x0, y0, int(dw), int(dh)) {
						cell |= dotBits[dy][dx]
					}
				}
			}
			sb.WriteRune(cell)
		}
		lines[row] = sb.String()
	}
	return lines
}

func inked(img image.Image, x0, y0, w, h int) bool {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	on := 0
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a > 0x7fff {
				on++
			}
		}
	}
	return float64(on) >= coverage*float64(w*h)
}
