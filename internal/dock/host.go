package dock

import (
	"time"

	"github.com/sadopc/dockfold/internal/dock/icons"
	"github.com/sadopc/dockfold/internal/memory"
)

// Rect is a realized region in points.
type Rect struct {
	X, Y, W, H float64
}

// Extent returns the rect's size along the axis a panel on side grows in.
func (r Rect) Extent(side PanelSide) float64 {
	if side.Vertical() {
		return r.W
	}
	return r.H
}

// Size is a width and height in points.
type Size struct {
	W, H float64
}

// Region asks the host for a strip along one screen edge.
type Region struct {
	// ID keys whatever the host remembers about the region between frames, such as
	// a drag offset.
	ID        string
	Side      PanelSide
	Min       float64
	Max       float64
	Default   float64
	Resizable bool
	Separator bool
}

// Frame is the per-frame rendering context. Implementations are rebuilt or reset
// every redraw; only the animator and region memory carry over.
type Frame interface {
	// Animate returns the current value of the animation track id moving toward
	// target over dur.
	Animate(id string, target float64, dur time.Duration) float64
	// Region draws a region, runs body inside it and returns the realized rect.
	Region(r Region, body func(Surface)) Rect
	// Memory is the persistent key-value store for this frame.
	Memory() memory.Store
}

// Interaction reports pointer activity on a widget during this frame.
type Interaction struct {
	Clicked bool
	Hovered bool
}

// IconButton is a fixed-size square button in a collapsed strip.
type IconButton struct {
	ID       string
	Icon     icons.Icon
	Size     Size
	Tooltip  string
	Active   bool
	Selected bool
	// Edge is the side the active indicator bar is drawn against.
	Edge PanelSide
}

// Surface is the drawable body of a region. Widgets flow top to bottom unless placed
// inside Row.
type Surface interface {
	Bounds() Rect
	FillBackground()
	Row(fn func(Surface))
	Label(text string)
	Button(id, label string, selected bool) Interaction
	SmallButton(id, label, tooltip string) Interaction
	IconButton(b IconButton) Interaction
	Busy()
}

// TabViewer renders the content of tabs of type T.
type TabViewer[T any] interface {
	Title(tab T) string
	Render(s Surface, tab T)
	Closable(tab T) bool
}

// ContainerResult is what a container asks of its panel after drawing.
type ContainerResult struct {
	Minimize bool
}

// Container is a docking/tab container that owns the arrangement of tabs of type T.
type Container[T any] interface {
	Show(s Surface, id string, viewer TabViewer[T]) ContainerResult
}

// Focuser is implemented by containers that can bring the i-th tab forward. Panels
// call it when a strip button is clicked.
type Focuser interface {
	Focus(index int)
}
