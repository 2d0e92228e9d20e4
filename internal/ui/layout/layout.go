// Package layout holds the cell arithmetic of the terminal host: converting panel
// extents between points and cells and carving regions off the screen edges.
package layout

import (
	"math"

	"github.com/sadopc/dockfold/internal/dock"
)

// Box is a rectangle of terminal cells.
type Box struct {
	X, Y, W, H int
}

// Empty reports whether the box has no cells.
func (b Box) Empty() bool {
	return b.W <= 0 || b.H <= 0
}

// Contains reports whether cell (x, y) lies inside the box.
func (b Box) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Extent returns the box's size along the axis a panel on side grows in.
func (b Box) Extent(side dock.PanelSide) int {
	if side.Vertical() {
		return b.W
	}
	return b.H
}

// Cut carves n cells off the given edge of b. It returns the carved box and what is
// left. n is clamped to what b holds.
func (b Box) Cut(side dock.PanelSide, n int) (cut, rest Box) {
	n = clamp(n, 0, b.Extent(side))
	switch side {
	case dock.Left:
		return Box{b.X, b.Y, n, b.H}, Box{b.X + n, b.Y, b.W - n, b.H}
	case dock.Right:
		return Box{b.X + b.W - n, b.Y, n, b.H}, Box{b.X, b.Y, b.W - n, b.H}
	case dock.Top:
		return Box{b.X, b.Y, b.W, n}, Box{b.X, b.Y + n, b.W, b.H - n}
	default:
		return Box{b.X, b.Y + b.H - n, b.W, n}, Box{b.X, b.Y, b.W, b.H - n}
	}
}

// InnerEdge returns the one-cell line of b facing the rest of the screen, where a
// resize separator is drawn.
func (b Box) InnerEdge(side dock.PanelSide) Box {
	switch side {
	case dock.Left:
		return Box{b.X + b.W - 1, b.Y, 1, b.H}
	case dock.Right:
		return Box{b.X, b.Y, 1, b.H}
	case dock.Top:
		return Box{b.X, b.Y + b.H - 1, b.W, 1}
	default:
		return Box{b.X, b.Y, b.W, 1}
	}
}

// Scale converts between points and cells. A cell is CellWidth points wide and
// CellHeight points tall.
type Scale struct {
	CellWidth  float64
	CellHeight float64
}

// DefaultScale approximates a common monospace terminal font.
var DefaultScale = Scale{CellWidth: 8, CellHeight: 16}

func (s Scale) unit(side dock.PanelSide) float64 {
	u := s.CellHeight
	if side.Vertical() {
		u = s.CellWidth
	}
	if u <= 0 {
		return 1
	}
	return u
}

// Cells converts an extent in points to whole cells, rounding to nearest and never
// returning less than one cell for a positive extent.
func (s Scale) Cells(side dock.PanelSide, points float64) int {
	if points <= 0 || math.IsNaN(points) {
		return 0
	}
	if math.IsInf(points, 1) {
		return math.MaxInt32
	}
	n := int(math.Round(points / s.unit(side)))
	if n < 1 {
		n = 1
	}
	return n
}

// Points converts a cell count along side's axis to points.
func (s Scale) Points(side dock.PanelSide, cells int) float64 {
	return float64(cells) * s.unit(side)
}

// Rect converts a box to a point rectangle.
func (s Scale) Rect(b Box) dock.Rect {
	return dock.Rect{
		X: float64(b.X) * s.CellWidth,
		Y: float64(b.Y) * s.CellHeight,
		W: float64(b.W) * s.CellWidth,
		H: float64(b.H) * s.CellHeight,
	}
}

// Screen is the terminal split into the dock area and the status line.
type Screen struct {
	Width  int
	Height int

	Dock   Box
	Status Box
}

const statusBarHeight = 1

// Calculate computes the screen layout from terminal dimensions.
func Calculate(width, height int) Screen {
	s := Screen{Width: width, Height: height}
	dockHeight := height - statusBarHeight
	if dockHeight < 1 {
		dockHeight = 1
	}
	s.Dock = Box{0, 0, max(width, 1), dockHeight}
	s.Status = Box{0, dockHeight, max(width, 1), statusBarHeight}
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
