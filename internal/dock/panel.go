// Package dock implements collapsible edge-docked panels for immediate-mode UIs.
//
// A Panel is shown once per frame. It loads its persisted state lazily on the first
// frame, animates between a thin icon strip and its last expanded size, hands the
// body to either the strip or its tab container, folds user drag-resizes back into
// its state and writes the state back to the frame's key-value store.
package dock

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/sadopc/dockfold/internal/memory"
)

// PersistPolicy decides which frames write state back to the store.
type PersistPolicy int

const (
	// PersistOnChange writes on the first frame, when the collapse flag flips and
	// when a user resize is reconciled.
	PersistOnChange PersistPolicy = iota
	// PersistAlways writes every frame.
	PersistAlways
)

func (p PersistPolicy) String() string {
	if p == PersistAlways {
		return "always"
	}
	return "on_change"
}

// ParsePersistPolicy parses "on_change" or "always". Empty means on_change.
func ParsePersistPolicy(s string) (PersistPolicy, error) {
	switch s {
	case "", "on_change":
		return PersistOnChange, nil
	case "always":
		return PersistAlways, nil
	default:
		return 0, fmt.Errorf("unknown persist policy %q (want on_change or always)", s)
	}
}

// Config describes a panel. Zero values pick defaults.
type Config[T any] struct {
	Side PanelSide
	// ID names the panel in the store and namespaces every derived id.
	ID        string
	Container Container[T]

	// Size is the initial expanded extent. Zero means the default, raised to
	// max(2×MinSize, 300) when it is under 1.5×MinSize.
	Size    float64
	MinSize float64
	// MaxSize caps the extent. Zero means unbounded.
	MaxSize float64
	// Fixed disables drag-resizing.
	Fixed     bool
	Collapsed bool

	Buttons      []Button
	ShowMinimize bool

	Persist            PersistPolicy
	DisablePersistence bool

	Logger *slog.Logger
}

// Response describes what a panel drew this frame.
type Response struct {
	Rect     Rect
	Extent   float64
	Progress float64
	Phase    Phase
	Content  Content
	// Clicked is set when a strip button, the expand affordance or the minimize
	// affordance was clicked.
	Clicked bool
}

// Panel is one collapsible edge panel. It is not safe for concurrent use.
type Panel[T any] struct {
	side      PanelSide
	id        string
	container Container[T]
	state     State
	buttons   []Button

	showMinimize bool
	policy       PersistPolicy
	log          *slog.Logger

	loaded        bool
	prevCollapsed bool
	active        int

	progress   float64
	target     float64
	warnedSize float64
}

// New validates cfg and builds a panel.
func New[T any](cfg Config[T]) (*Panel[T], error) {
	if cfg.ID == "" {
		return nil, errors.New("dock: panel id is required")
	}
	if !cfg.Side.Valid() {
		return nil, fmt.Errorf("dock: panel %s: invalid side %d", cfg.ID, int(cfg.Side))
	}
	if cfg.Container == nil {
		return nil, fmt.Errorf("dock: panel %s: container is required", cfg.ID)
	}
	if cfg.MinSize < 0 || cfg.MaxSize < 0 || cfg.Size < 0 {
		return nil, fmt.Errorf("dock: panel %s: sizes must not be negative", cfg.ID)
	}
	if cfg.MaxSize > 0 && cfg.MaxSize < cfg.MinSize {
		return nil, fmt.Errorf("dock: panel %s: max size %.0f below min size %.0f", cfg.ID, cfg.MaxSize, cfg.MinSize)
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("panel", cfg.ID, "side", cfg.Side.String())

	st := NewState().WithLogger(log)
	st.PersistState = !cfg.DisablePersistence
	ps := st.Panels[cfg.Side]
	if cfg.Size > 0 {
		ps.Size = cfg.Size
	}
	if cfg.MinSize > 0 {
		ps.MinSize = cfg.MinSize
		if cfg.Size == 0 {
			ps.Size = FallbackSize(cfg.MinSize)
		}
	}
	if cfg.MaxSize > 0 {
		m := cfg.MaxSize
		ps.MaxSize = &m
		if ps.Size > m {
			ps.Size = m
		}
	}
	ps.Resizable = !cfg.Fixed
	ps.Collapsed = cfg.Collapsed

	p := &Panel[T]{
		side:         cfg.Side,
		id:           cfg.ID,
		container:    cfg.Container,
		state:        st,
		buttons:      append([]Button(nil), cfg.Buttons...),
		showMinimize: cfg.ShowMinimize,
		policy:       cfg.Persist,
		log:          log,
		active:       -1,
	}
	if len(p.buttons) > 0 {
		p.active = 0
	}
	if !cfg.Collapsed {
		p.progress, p.target = 1, 1
	}
	return p, nil
}

func (p *Panel[T]) Side() PanelSide { return p.side }
func (p *Panel[T]) ID() string      { return p.id }

// IsCollapsed reports the panel's collapse flag.
func (p *Panel[T]) IsCollapsed() bool {
	return p.state.IsPanelCollapsed(p.side)
}

// Toggle flips the collapse flag. The next frame animates toward the new state.
func (p *Panel[T]) Toggle() {
	p.state.TogglePanel(p.side)
}

// SetCollapsed sets the collapse flag.
func (p *Panel[T]) SetCollapsed(collapsed bool) {
	p.state.SetPanelCollapsed(p.side, collapsed)
}

// Size returns the stored expanded extent.
func (p *Panel[T]) Size() float64 {
	return p.state.PanelSize(p.side)
}

// SetSize stores an expanded extent, clamped to the maximum only.
func (p *Panel[T]) SetSize(size float64) {
	p.state.SetPanelSize(p.side, size)
}

// ActiveButton returns the index of the strip button last used to open the panel.
func (p *Panel[T]) ActiveButton() (int, bool) {
	return p.active, p.active >= 0
}

// SetActiveButton marks button i active. Out-of-range indexes are ignored.
func (p *Panel[T]) SetActiveButton(i int) {
	if i < 0 || i >= len(p.buttons) {
		return
	}
	p.active = i
	if f, ok := p.container.(Focuser); ok {
		f.Focus(i)
	}
}

// Buttons returns the strip buttons in insertion order.
func (p *Panel[T]) Buttons() []Button {
	return append([]Button(nil), p.buttons...)
}

// State returns a copy of the panel's state aggregate.
func (p *Panel[T]) State() State {
	return p.state.Clone()
}

// Phase reports where the panel was in its collapse cycle on the last frame.
func (p *Panel[T]) Phase() Phase {
	return PhaseAt(p.progress, p.target)
}

// Progress is the last animation value, 0 collapsed and 1 expanded.
func (p *Panel[T]) Progress() float64 {
	return p.progress
}

// Retargeting reports whether the collapse flag changed after the last frame chose
// its animation target, for example by a strip click during Show. The next frame
// starts the animation, so the host should schedule one.
func (p *Panel[T]) Retargeting() bool {
	return p.loaded && p.IsCollapsed() != (p.target < 0.5)
}

// Show draws the panel for this frame. It returns nil when the panel is collapsed
// and has no strip buttons, in which case nothing is drawn.
func (p *Panel[T]) Show(f Frame, viewer TabViewer[T]) *Response {
	store := f.Memory()
	first := !p.loaded
	if first {
		p.load(store)
	}

	var resp *Response
	resized := false
	collapsed := p.IsCollapsed()
	if collapsed && len(p.buttons) == 0 {
		// Park the track at collapsed so a later expand animates out of the edge.
		p.progress = f.Animate(p.animationID(), 0, AnimationTime)
		p.target = 0
	} else {
		resp, resized = p.show(f, viewer, collapsed)
	}

	changed := p.IsCollapsed() != p.prevCollapsed
	p.prevCollapsed = p.IsCollapsed()
	if p.policy == PersistAlways || first || changed || resized {
		p.state.Save(store, p.id)
	}
	return resp
}

// load copies this side's persisted collapse flag and size into local state. It
// runs once; afterwards local state is authoritative.
func (p *Panel[T]) load(store memory.Store) {
	p.loaded = true
	defer func() { p.prevCollapsed = p.IsCollapsed() }()

	loaded, ok := LoadState(store, p.id, p.log)
	if !ok {
		return
	}
	src := loaded.Panel(p.side)
	p.state.SetPanelCollapsed(p.side, src.Collapsed)

	size, substituted := ValidSize(src.Size, p.state.Panel(p.side).MinSize)
	if substituted {
		p.log.Warn("stored panel size is implausible, using default",
			"stored", src.Size, "size", size)
	}
	p.state.SetPanelSize(p.side, size)
}

func (p *Panel[T]) show(f Frame, viewer TabViewer[T], collapsed bool) (*Response, bool) {
	target := 1.0
	if collapsed {
		target = 0
	}
	a := f.Animate(p.animationID(), target, AnimationTime)
	p.progress, p.target = a, target

	ps := p.state.Panel(p.side)
	saved, substituted := ValidSize(ps.Size, ps.MinSize)
	if substituted && p.warnedSize != ps.Size {
		p.warnedSize = ps.Size
		p.log.Warn("panel size is implausible, drawing at default", "size", ps.Size, "using", saved)
	}
	extent := InterpolateExtent(a, CollapsedExtent, saved)
	resizable := CanResize(a, ps.Resizable, collapsed)

	// Expanded and collapsed regions never share an id: a host remembering a drag
	// offset for one must not apply it to the other.
	region := Region{ID: p.regionID(collapsed), Side: p.side, Separator: resizable}
	if resizable {
		lo, hi := ps.Bounds()
		region.Min, region.Max, region.Default, region.Resizable = lo, hi, saved, true
	} else {
		region.Min, region.Max, region.Default = extent, extent, extent
	}

	content := ContentAt(a)
	clicked := false
	rect := f.Region(region, func(s Surface) {
		switch content {
		case ContentStrip:
			clicked = p.showStrip(s)
		case ContentDock:
			clicked = p.showExpanded(s, viewer)
		default:
			s.Busy()
		}
	})

	resized := false
	if !collapsed && a > fullyExpanded {
		actual := rect.Extent(p.side)
		// A host starved for space may realize less than the region minimum;
		// that is not a resize.
		if actual >= region.Min && math.Abs(actual-ps.Size) > ResizeHysteresis {
			p.state.SetPanelSize(p.side, actual)
			resized = true
		}
	}

	return &Response{
		Rect:     rect,
		Extent:   extent,
		Progress: a,
		Phase:    PhaseAt(a, target),
		Content:  content,
		Clicked:  clicked,
	}, resized
}

func (p *Panel[T]) subID(name string) string {
	return p.id + "/" + p.side.String() + "_" + name
}

func (p *Panel[T]) animationID() string { return p.subID("animation") }

func (p *Panel[T]) regionID(collapsed bool) string {
	if collapsed {
		return p.subID("collapsed")
	}
	return p.subID("expanded")
}
