package icons

import (
	"image/color"
	"math"
	"sort"
)

// Point is a position in icon space.
type Point struct{ X, Y float64 }

// Rect is an axis-aligned box in icon space.
type Rect struct{ X, Y, W, H float64 }

func (r Rect) Center() Point { return Point{r.X + r.W/2, r.Y + r.H/2} }
func (r Rect) Left() float64 { return r.X }
func (r Rect) Top() float64  { return r.Y }
func (r Rect) Right() float64 {
	return r.X + r.W
}
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Shrink insets r by m on every side.
func (r Rect) Shrink(m float64) Rect {
	return Rect{r.X + m, r.Y + m, r.W - 2*m, r.H - 2*m}
}

// Centered returns a w×h rect sharing r's center.
func (r Rect) Centered(w, h float64) Rect {
	c := r.Center()
	return Rect{c.X - w/2, c.Y - h/2, w, h}
}

// Painter draws vector primitives.
type Painter interface {
	Line(a, b Point, width float64, c color.Color)
	FillRect(r Rect, radius float64, c color.Color)
	StrokeRect(r Rect, radius, width float64, c color.Color)
	FillCircle(center Point, radius float64, c color.Color)
	StrokeCircle(center Point, radius, width float64, c color.Color)
	FillPolygon(pts []Point, c color.Color)
}

const strokeWidth = 1.5

type drawFunc func(p Painter, r Rect, c color.Color)

var custom = map[string]drawFunc{
	"SceneTree":  drawSceneTree,
	"Properties": drawProperties,
	"Console":    drawConsole,
	"Files":      drawFiles,
	"Terminal":   drawTerminal,
	"Settings":   drawSettings,
	"Close":      drawClose,
}

// Names lists the custom vector icons in sorted order.
func Names() []string {
	out := make([]string, 0, len(custom))
	for n := range custom {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Known reports whether name is a custom vector icon.
func Known(name string) bool {
	_, ok := custom[name]
	return ok
}

// Draw paints the custom icon name into r. Unknown names get a filled circle and
// Draw reports false.
func Draw(p Painter, name string, r Rect, c color.Color) bool {
	inner := r.Centered(r.W*0.8, r.H*0.8)
	fn, ok := custom[name]
	if !ok {
		p.FillCircle(r.Center(), inner.W*0.3, c)
		return false
	}
	fn(p, inner, c)
	return true
}

// faded scales c's alpha by f.
func faded(c color.Color, f float64) color.Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	n.A = uint16(float64(n.A) * f)
	return n
}

// drawSceneTree: a vertical trunk with three branches, each ending in a node bar.
func drawSceneTree(p Painter, r Rect, c color.Color) {
	line := r.H / 6
	indent := r.W * 0.15
	x := r.Left() + indent

	p.Line(Point{x, r.Top() + line}, Point{x, r.Bottom() - line}, strokeWidth, c)
	for i := 0; i < 3; i++ {
		y := r.Top() + line*(2+float64(i)*2)
		nodeX := x + indent
		p.Line(Point{x, y}, Point{nodeX, y}, strokeWidth, c)
		p.FillRect(Rect{nodeX, y - line*0.3, r.W - indent*2.5, line * 0.6}, 2, c)
	}
}

func drawProperties(p Painter, r Rect, c color.Color) {
	margin := r.W * 0.1
	box := r.Shrink(margin)
	p.StrokeRect(box, 3, strokeWidth, c)

	line := box.H / 6
	for i := 0; i < 3; i++ {
		y := box.Top() + line*(1.5+float64(i)*1.5)
		w := box.W * (0.8 - float64(i)*0.1)
		p.FillRect(Rect{box.Left() + margin, y - 1, w, 2}, 1, c)
	}
}

func drawConsole(p Painter, r Rect, c color.Color) {
	box := r.Shrink(r.W * 0.05)
	p.StrokeRect(box, 3, strokeWidth, c)

	size := box.W * 0.15
	at := Point{box.Left() + size, box.Center().Y}
	p.FillPolygon([]Point{
		{at.X - size*0.3, at.Y - size*0.3},
		{at.X + size*0.3, at.Y},
		{at.X - size*0.3, at.Y + size*0.3},
	}, c)
	p.FillRect(Rect{at.X + size, at.Y - 1, box.W * 0.5, 2}, 1, c)
}

// drawFiles: two overlapping folders, the front one tabbed and lightly filled.
func drawFiles(p Painter, r Rect, c color.Color) {
	back := Rect{r.X + r.W*0.1, r.Y + r.H*0.3, r.W * 0.6, r.H * 0.5}
	p.StrokeRect(back, 2, strokeWidth, c)

	front := Rect{r.X + r.W*0.3, r.Y + r.H*0.15, r.W * 0.6, r.H * 0.5}
	p.FillRect(front, 2, faded(c, 0.1))
	p.StrokeRect(front, 2, strokeWidth, c)

	p.FillRect(Rect{front.X, front.Y - r.H*0.08, r.W * 0.25, r.H * 0.08}, 1, faded(c, 0.15))
}

func drawTerminal(p Painter, r Rect, c color.Color) {
	box := r.Shrink(r.W * 0.1)
	p.StrokeRect(box, 3, strokeWidth, c)

	at := Point{box.Left() + box.W*0.2, box.Center().Y}
	arm := box.H * 0.25
	p.Line(Point{at.X - arm, at.Y - arm}, at, strokeWidth, c)
	p.Line(Point{at.X - arm, at.Y + arm}, at, strokeWidth, c)
	p.FillRect(Rect{at.X + arm*2, at.Y - 1, arm * 1.6, 2}, 0, c)
}

// drawSettings: a hub circle with eight radial teeth.
func drawSettings(p Painter, r Rect, c color.Color) {
	center := r.Center()
	radius := math.Min(r.W, r.H) * 0.35

	p.FillCircle(center, radius*0.4, faded(c, 0.1))
	p.StrokeCircle(center, radius*0.4, strokeWidth, c)

	const teeth = 8
	for i := 0; i < teeth; i++ {
		angle := float64(i) * 2 * math.Pi / teeth
		dx, dy := math.Cos(angle), math.Sin(angle)
		inner := Point{center.X + dx*radius*0.5, center.Y + dy*radius*0.5}
		outer := Point{center.X + dx*radius, center.Y + dy*radius}
		p.Line(inner, outer, 2, c)
	}
}

func drawClose(p Painter, r Rect, c color.Color) {
	center := r.Center()
	half := math.Min(r.W, r.H) * 0.2
	p.Line(Point{center.X - half, center.Y - half}, Point{center.X + half, center.Y + half}, 2, c)
	p.Line(Point{center.X + half, center.Y - half}, Point{center.X - half, center.Y + half}, 2, c)
}
