// Package term is the terminal host for dock panels. A Host implements dock.Frame:
// every redraw it carves regions off the screen edges in call order, converts panel
// extents between points and cells, remembers drag-resized extents by region id and
// composes the result with lipgloss.
package term

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/dockfold/internal/anim"
	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/memory"
	"github.com/sadopc/dockfold/internal/ui/layout"
	"github.com/sadopc/dockfold/internal/ui/theme"
)

type point struct{ X, Y int }

// separator is a drawn resize handle, kept until the next frame for hit-testing.
type separator struct {
	id       string
	side     dock.PanelSide
	edge     layout.Box
	extent   float64
	min, max float64
}

type drag struct {
	separator
	origin point
}

type placed struct {
	side dock.PanelSide
	view string
}

// Option configures a Host.
type Option func(*Host)

// WithScale sets the points-per-cell scale.
func WithScale(s layout.Scale) Option {
	return func(h *Host) { h.scale = s }
}

// WithStyles sets the styles regions are drawn with.
func WithStyles(s theme.Styles) Option {
	return func(h *Host) { h.styles = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) { h.log = l }
}

// WithSpinner sets the frames used for the busy indicator.
func WithSpinner(s spinner.Spinner) Option {
	return func(h *Host) { h.spinner = s }
}

// Host is a dock.Frame drawing into a terminal. It is not safe for concurrent use.
type Host struct {
	anim    *anim.Animator
	store   memory.Store
	scale   layout.Scale
	styles  theme.Styles
	spinner spinner.Spinner
	log     *slog.Logger

	// Region memory carried across frames.
	extents    map[string]float64
	defaults   map[string]float64
	separators []separator
	drag       *drag

	// Pointer input waiting for the next frame.
	click *point
	hover *point

	// Per-frame state.
	now      time.Time
	free     layout.Box
	placed   []placed
	tooltip  string
	nextTip  string
	nextSeps []separator
}

// New creates a host persisting into store.
func New(store memory.Store, opts ...Option) *Host {
	h := &Host{
		anim:    anim.New(),
		store:   store,
		scale:   layout.DefaultScale,
		styles:  theme.NewStyles(theme.Default()),
		spinner: spinner.MiniDot,
		log:     slog.Default(),
		extents:  make(map[string]float64),
		defaults: make(map[string]float64),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetStyles replaces the styles used from the next frame on.
func (h *Host) SetStyles(s theme.Styles) { h.styles = s }

// Scale returns the points-per-cell scale.
func (h *Host) Scale() layout.Scale { return h.scale }

// Begin starts a frame at time now covering area.
func (h *Host) Begin(now time.Time, area layout.Box) {
	h.now = now
	h.free = area
	h.placed = h.placed[:0]
	h.nextSeps = nil
	h.nextTip = ""
}

// End fills what is left of the area with center, composes every region carved
// this frame and returns the screen. Pointer clicks not consumed by a widget are
// dropped.
func (h *Host) End(center func(width, height int) string) string {
	h.click = nil
	h.separators = h.nextSeps
	h.tooltip = h.nextTip

	view := ""
	empty := h.free.Empty()
	if !empty {
		body := ""
		if center != nil {
			body = center(h.free.W, h.free.H)
		}
		view = fit(h.styles.Center, body, h.free.W, h.free.H)
	}

	// Regions were carved outside-in; join them back inside-out.
	for i := len(h.placed) - 1; i >= 0; i-- {
		p := h.placed[i]
		switch {
		case empty:
			view = p.view
			empty = false
		case p.side == dock.Left:
			view = lipgloss.JoinHorizontal(lipgloss.Top, p.view, view)
		case p.side == dock.Right:
			view = lipgloss.JoinHorizontal(lipgloss.Top, view, p.view)
		case p.side == dock.Top:
			view = lipgloss.JoinVertical(lipgloss.Left, p.view, view)
		default:
			view = lipgloss.JoinVertical(lipgloss.Left, view, p.view)
		}
	}
	return view
}

// Animate implements dock.Frame.
func (h *Host) Animate(id string, target float64, dur time.Duration) float64 {
	return h.anim.Value(id, target, dur, h.now)
}

// Memory implements dock.Frame.
func (h *Host) Memory() memory.Store { return h.store }

// Animating reports whether another frame is needed without new input: an
// animation track is moving or a separator is being dragged.
func (h *Host) Animating() bool {
	return h.anim.Active(h.now) || h.drag != nil
}

// Dragging returns the id of the region whose separator is being dragged.
func (h *Host) Dragging() (string, bool) {
	if h.drag == nil {
		return "", false
	}
	return h.drag.id, true
}

// Tooltip is the hover text of the widget under the pointer on the last frame.
func (h *Host) Tooltip() string { return h.tooltip }

// HandleMouse feeds a mouse event to the host. It reports whether the event was
// relevant to anything drawn, in which case a new frame should be built.
func (h *Host) HandleMouse(msg tea.MouseMsg) bool {
	p := point{msg.X, msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return false
		}
		for _, s := range h.separators {
			if s.edge.Contains(p.X, p.Y) {
				h.drag = &drag{separator: s, origin: p}
				return true
			}
		}
		h.click = &p
		return true
	case tea.MouseActionMotion:
		h.hover = &p
		if h.drag != nil {
			h.dragTo(p)
		}
		return true
	case tea.MouseActionRelease:
		if h.drag != nil {
			h.dragTo(p)
			h.log.Debug("resize finished", "region", h.drag.id, "extent", h.extents[h.drag.id])
			h.drag = nil
		}
		return true
	}
	return false
}

func (h *Host) dragTo(p point) {
	d := h.drag
	var delta int
	switch d.side {
	case dock.Left:
		delta = p.X - d.origin.X
	case dock.Right:
		delta = d.origin.X - p.X
	case dock.Top:
		delta = p.Y - d.origin.Y
	default:
		delta = d.origin.Y - p.Y
	}
	extent := d.extent + h.scale.Points(d.side, delta)
	h.extents[d.id] = clampf(extent, d.min, d.max)
}

// Region implements dock.Frame.
func (h *Host) Region(r dock.Region, body func(dock.Surface)) dock.Rect {
	h.forgetStaleExtent(r)
	extent := r.Default
	if r.Resizable {
		if v, ok := h.extents[r.ID]; ok {
			extent = v
		}
	}
	extent = clampf(extent, r.Min, r.Max)

	want := h.scale.Cells(r.Side, extent)
	box, rest := h.free.Cut(r.Side, want)
	h.free = rest

	got := box.Extent(r.Side)
	realized := extent
	if got < want {
		// Out of room: report what was actually drawn.
		realized = h.scale.Points(r.Side, got)
	}
	rect := h.scale.Rect(box)
	if r.Side.Vertical() {
		rect.W = realized
	} else {
		rect.H = realized
	}
	if box.Empty() {
		body(&surface{host: h})
		return rect
	}

	content := box
	sep := r.Separator && got > 1
	if sep {
		edge := box.InnerEdge(r.Side)
		content, _ = box.Cut(r.Side, got-1)
		h.nextSeps = append(h.nextSeps, separator{
			id: r.ID, side: r.Side, edge: edge,
			extent: realized, min: r.Min, max: r.Max,
		})
	}

	s := &surface{host: h, box: content}
	body(s)
	view := s.render()
	if sep {
		view = h.joinSeparator(r, view, content)
	}
	h.placed = append(h.placed, placed{side: r.Side, view: view})
	return rect
}

// forgetStaleExtent drops the dragged extent of r once the caller asks for a
// different size, so a programmatic resize wins over an old drag.
func (h *Host) forgetStaleExtent(r dock.Region) {
	last, seen := h.defaults[r.ID]
	h.defaults[r.ID] = r.Default
	if !seen || math.Abs(r.Default-last) <= dock.ResizeHysteresis {
		return
	}
	if id, ok := h.Dragging(); ok && id == r.ID {
		return
	}
	delete(h.extents, r.ID)
}

func (h *Host) joinSeparator(r dock.Region, view string, content layout.Box) string {
	style := h.styles.Separator
	if id, ok := h.Dragging(); ok && id == r.ID {
		style = h.styles.SeparatorDrag
	}
	switch r.Side {
	case dock.Left:
		return lipgloss.JoinHorizontal(lipgloss.Top, view, style.Render(vline(content.H)))
	case dock.Right:
		return lipgloss.JoinHorizontal(lipgloss.Top, style.Render(vline(content.H)), view)
	case dock.Top:
		return lipgloss.JoinVertical(lipgloss.Left, view, style.Render(strings.Repeat("─", content.W)))
	default:
		return lipgloss.JoinVertical(lipgloss.Left, style.Render(strings.Repeat("─", content.W)), view)
	}
}

func (h *Host) takeClick(b layout.Box) bool {
	if h.click != nil && b.Contains(h.click.X, h.click.Y) {
		h.click = nil
		return true
	}
	return false
}

func (h *Host) hovered(b layout.Box) bool {
	return h.hover != nil && b.Contains(h.hover.X, h.hover.Y)
}

func (h *Host) busyFrame() string {
	frames := h.spinner.Frames
	if len(frames) == 0 {
		return "…"
	}
	fps := h.spinner.FPS
	if fps <= 0 {
		fps = time.Second / 10
	}
	return frames[int(h.now.UnixNano()/int64(fps))%len(frames)]
}

func vline(n int) string {
	return strings.TrimSuffix(strings.Repeat("│\n", n), "\n")
}

func clampf(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// fit renders body into exactly w×h cells: long lines are cut, short blocks padded.
func fit(style lipgloss.Style, body string, w, h int) string {
	lines := strings.Split(body, "\n")
	if len(lines) > h {
		lines = lines[:h]
	}
	cut := lipgloss.NewStyle().MaxWidth(w)
	for i, l := range lines {
		if lipgloss.Width(l) > w {
			lines[i] = cut.Render(l)
		}
	}
	return style.Width(w).Height(h).MaxHeight(h).Render(strings.Join(lines, "\n"))
}
