package icons

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

// SVGPainter writes primitives as SVG elements. svgo takes integer coordinates, so
// everything is multiplied by Scale first.
type SVGPainter struct {
	canvas *svg.SVG
	Scale  float64
}

// WriteSVG writes the custom icon name as a standalone size×size SVG document.
func WriteSVG(w io.Writer, name string, size int, c color.Color) bool {
	const scale = 10
	canvas := svg.New(w)
	canvas.Start(size, size, fmt.Sprintf(`viewBox="0 0 %d %d"`, size*scale, size*scale))
	p := &SVGPainter{canvas: canvas, Scale: scale}
	ok := Draw(p, name, Rect{0, 0, float64(size), float64(size)}, c)
	canvas.End()
	return ok
}

func (p *SVGPainter) n(v float64) int {
	return int(math.Round(v * p.Scale))
}

func (p *SVGPainter) Line(a, b Point, width float64, c color.Color) {
	p.canvas.Line(p.n(a.X), p.n(a.Y), p.n(b.X), p.n(b.Y), p.stroke(width, c)+";stroke-linecap:round")
}

func (p *SVGPainter) FillRect(r Rect, radius float64, c color.Color) {
	p.rect(r, radius, fill(c))
}

func (p *SVGPainter) StrokeRect(r Rect, radius, width float64, c color.Color) {
	p.rect(r, radius, "fill:none;"+p.stroke(width, c))
}

func (p *SVGPainter) FillCircle(center Point, radius float64, c color.Color) {
	p.canvas.Circle(p.n(center.X), p.n(center.Y), p.n(radius), fill(c))
}

func (p *SVGPainter) StrokeCircle(center Point, radius, width float64, c color.Color) {
	p.canvas.Circle(p.n(center.X), p.n(center.Y), p.n(radius), "fill:none;"+p.stroke(width, c))
}

func (p *SVGPainter) FillPolygon(pts []Point, c color.Color) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = p.n(pt.X), p.n(pt.Y)
	}
	p.canvas.Polygon(xs, ys, fill(c))
}

func (p *SVGPainter) rect(r Rect, radius float64, style string) {
	if radius > 0 {
		p.canvas.Roundrect(p.n(r.X), p.n(r.Y), p.n(r.W), p.n(r.H), p.n(radius), p.n(radius), style)
		return
	}
	p.canvas.Rect(p.n(r.X), p.n(r.Y), p.n(r.W), p.n(r.H), style)
}

func (p *SVGPainter) stroke(width float64, c color.Color) string {
	hex, op := hexColor(c)
	return fmt.Sprintf("stroke:%s;stroke-opacity:%.2f;stroke-width:%d", hex, op, p.n(width))
}

func fill(c color.Color) string {
	hex, op := hexColor(c)
	return fmt.Sprintf("fill:%s;fill-opacity:%.2f", hex, op)
}

func hexColor(c color.Color) (string, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B), float64(n.A) / 255
}
