package dock

import (
	"time"

	"github.com/sadopc/dockfold/internal/anim"
	"github.com/sadopc/dockfold/internal/memory"
)

// testFrame is a scripted Frame. Regions realize at their default extent unless a
// drag is simulated through realize.
type testFrame struct {
	anim  *anim.Animator
	now   time.Time
	store memory.Store

	realize map[string]float64
	clicks  map[string]bool

	regions []Region
	surface *testSurface
}

func newTestFrame(store memory.Store) *testFrame {
	return &testFrame{
		anim:    anim.New(),
		now:     time.Unix(1000, 0),
		store:   store,
		realize: map[string]float64{},
		clicks:  map[string]bool{},
	}
}

// next starts a new frame dt after the previous one.
func (f *testFrame) next(dt time.Duration) *testFrame {
	f.now = f.now.Add(dt)
	f.regions = nil
	f.surface = nil
	f.clicks = map[string]bool{}
	return f
}

// settle advances well past any running animation.
func (f *testFrame) settle() *testFrame {
	return f.next(time.Second)
}

func (f *testFrame) Animate(id string, target float64, dur time.Duration) float64 {
	return f.anim.Value(id, target, dur, f.now)
}

func (f *testFrame) Memory() memory.Store { return f.store }

func (f *testFrame) Region(r Region, body func(Surface)) Rect {
	f.regions = append(f.regions, r)
	extent := r.Default
	if v, ok := f.realize[r.ID]; ok && r.Resizable {
		extent = v
	}
	if extent < r.Min {
		extent = r.Min
	}
	if extent > r.Max {
		extent = r.Max
	}
	rect := Rect{W: 800, H: 600}
	if r.Side.Vertical() {
		rect.W = extent
	} else {
		rect.H = extent
	}
	f.surface = &testSurface{frame: f, bounds: rect}
	body(f.surface)
	return rect
}

func (f *testFrame) lastRegion() Region {
	return f.regions[len(f.regions)-1]
}

type testSurface struct {
	frame  *testFrame
	bounds Rect

	filled  bool
	rows    int
	busy    int
	labels  []string
	buttons []IconButton
	small   []string
}

func (s *testSurface) Bounds() Rect       { return s.bounds }
func (s *testSurface) FillBackground()    { s.filled = true }
func (s *testSurface) Row(fn func(Surface)) { s.rows++; fn(s) }
func (s *testSurface) Label(text string)  { s.labels = append(s.labels, text) }
func (s *testSurface) Busy()              { s.busy++ }

func (s *testSurface) Button(id, label string, selected bool) Interaction {
	return Interaction{Clicked: s.frame.clicks[id]}
}

func (s *testSurface) SmallButton(id, label, tooltip string) Interaction {
	s.small = append(s.small, id)
	return Interaction{Clicked: s.frame.clicks[id]}
}

func (s *testSurface) IconButton(b IconButton) Interaction {
	s.buttons = append(s.buttons, b)
	return Interaction{Clicked: s.frame.clicks[b.ID]}
}

type testTab string

type testViewer struct {
	rendered []testTab
}

func (v *testViewer) Title(tab testTab) string { return string(tab) }
func (v *testViewer) Render(s Surface, tab testTab) {
	v.rendered = append(v.rendered, tab)
	s.Label(string(tab))
}
func (v *testViewer) Closable(tab testTab) bool { return false }

// testContainer shows its first tab and can be told to ask for minimize.
type testContainer struct {
	tabs     []testTab
	focused  int
	minimize bool
	shows    int
}

func (c *testContainer) Show(s Surface, id string, viewer TabViewer[testTab]) ContainerResult {
	c.shows++
	if len(c.tabs) > 0 {
		viewer.Render(s, c.tabs[c.focused])
	}
	return ContainerResult{Minimize: c.minimize}
}

func (c *testContainer) Focus(i int) {
	if i < len(c.tabs) {
		c.focused = i
	}
}
