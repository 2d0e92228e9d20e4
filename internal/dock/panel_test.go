package dock

import (
	"math"
	"testing"
	"time"

	"github.com/sadopc/dockfold/internal/dock/icons"
	"github.com/sadopc/dockfold/internal/memory"
)

func newTestPanel(t *testing.T, cfg Config[testTab]) (*Panel[testTab], *testContainer) {
	t.Helper()
	c := &testContainer{tabs: []testTab{"one", "two"}}
	if cfg.Container == nil {
		cfg.Container = c
	}
	if cfg.ID == "" {
		cfg.ID = "ide"
	}
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return p, c
}

func TestNewValidation(t *testing.T) {
	c := &testContainer{}
	tests := []struct {
		name string
		cfg  Config[testTab]
	}{
		{"missing id", Config[testTab]{Container: c}},
		{"missing container", Config[testTab]{ID: "x"}},
		{"bad side", Config[testTab]{ID: "x", Container: c, Side: PanelSide(9)}},
		{"max below min", Config[testTab]{ID: "x", Container: c, MinSize: 200, MaxSize: 100}},
		{"negative", Config[testTab]{ID: "x", Container: c, Size: -1}},
	}
	for _, tt := range tests {
		if _, err := New(tt.cfg); err == nil {
			t.Errorf("%s: New() succeeded, want error", tt.name)
		}
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	for _, side := range Sides {
		for _, start := range []bool{false, true} {
			p, _ := newTestPanel(t, Config[testTab]{Side: side, Collapsed: start})
			p.Toggle()
			if p.IsCollapsed() == start {
				t.Fatalf("%s: Toggle() did not flip", side)
			}
			p.Toggle()
			if p.IsCollapsed() != start {
				t.Fatalf("%s: double Toggle() = %v, want %v", side, p.IsCollapsed(), start)
			}
		}
	}
}

func TestSetSizeClampsOnlyToMax(t *testing.T) {
	p, _ := newTestPanel(t, Config[testTab]{MinSize: 150, MaxSize: 500})
	tests := []struct {
		in, want float64
	}{
		{320, 320},
		{800, 500},
		{50, 50},
		{120, 120},
	}
	for _, tt := range tests {
		p.SetSize(tt.in)
		if got := p.Size(); got != tt.want {
			t.Errorf("SetSize(%v); Size() = %v, want %v", tt.in, got, tt.want)
		}
	}

	unbounded, _ := newTestPanel(t, Config[testTab]{})
	unbounded.SetSize(5000)
	if unbounded.Size() != 5000 {
		t.Fatalf("unbounded Size() = %v, want 5000", unbounded.Size())
	}
}

func TestMinSizeRaisesDefault(t *testing.T) {
	p, _ := newTestPanel(t, Config[testTab]{MinSize: 250})
	if got := p.Size(); got != 500 {
		t.Fatalf("Size() with MinSize 250 = %v, want 500", got)
	}
	m, _ := newTestPanel(t, Config[testTab]{MinSize: 200})
	if got := m.Size(); got != 400 {
		t.Fatalf("Size() with MinSize 200 = %v, want 400", got)
	}
	s, _ := newTestPanel(t, Config[testTab]{MinSize: 100})
	if got := s.Size(); got != DefaultSize {
		t.Fatalf("Size() with MinSize 100 = %v, want %v", got, DefaultSize)
	}
	q, _ := newTestPanel(t, Config[testTab]{MinSize: 250, Size: 320})
	if got := q.Size(); got != 320 {
		t.Fatalf("explicit Size() = %v, want 320", got)
	}
}

func TestFirstShowSaneDefault(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{MinSize: 200})
	p.Show(f, &testViewer{})
	if got := p.Size(); got < 300 {
		t.Fatalf("Size() after first Show = %v, want >= 300", got)
	}
}

func TestLoadDiscardsImplausibleSize(t *testing.T) {
	store := memory.NewMem()
	st := NewState()
	st.Panels[Left].Size = 50
	st.Panels[Left].Collapsed = true
	st.Save(store, "ide")

	p, _ := newTestPanel(t, Config[testTab]{MinSize: 200, Buttons: []Button{NewButton("Files")}})
	p.Show(newTestFrame(store), &testViewer{})

	want := math.Max(200*2, 300)
	if got := p.Size(); got < want {
		t.Fatalf("Size() after loading 50 = %v, want >= %v", got, want)
	}
	if !p.IsCollapsed() {
		t.Fatal("collapsed flag should be loaded")
	}
}

func TestLoadCopiesOnlyOwnSide(t *testing.T) {
	store := memory.NewMem()
	st := NewState()
	st.Panels[Left].Size = 420
	st.Panels[Right].Size = 640
	st.Panels[Right].Collapsed = true
	st.Save(store, "ide")

	p, _ := newTestPanel(t, Config[testTab]{Side: Left})
	p.Show(newTestFrame(store), &testViewer{})

	if p.Size() != 420 {
		t.Fatalf("Size() = %v, want 420", p.Size())
	}
	if p.IsCollapsed() {
		t.Fatal("right side's collapse flag leaked into left panel")
	}
	if p.State().PanelSize(Right) != DefaultSize {
		t.Fatal("other sides should keep local defaults")
	}
}

func TestLoadHappensOnce(t *testing.T) {
	store := memory.NewMem()
	f := newTestFrame(store)
	p, _ := newTestPanel(t, Config[testTab]{})
	p.Show(f, &testViewer{})

	st := NewState()
	st.Panels[Left].Size = 777
	st.Save(store, "ide")

	p.Show(f.settle(), &testViewer{})
	if p.Size() == 777 {
		t.Fatal("store was re-read after the first frame")
	}
}

func TestLoadIgnoresOtherVersions(t *testing.T) {
	store := memory.NewMem()
	st := NewState()
	st.Version = 1
	st.Panels[Left].Size = 26
	st.Panels[Left].Collapsed = true
	st.Save(store, "ide")

	p, _ := newTestPanel(t, Config[testTab]{})
	p.Show(newTestFrame(store), &testViewer{})
	if p.IsCollapsed() || p.Size() != DefaultSize {
		t.Fatalf("old-version state applied: collapsed=%v size=%v", p.IsCollapsed(), p.Size())
	}
}

func TestCollapsedWithoutButtonsDrawsNothing(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{Collapsed: true})
	if resp := p.Show(f, &testViewer{}); resp != nil {
		t.Fatalf("Show() = %+v, want nil", resp)
	}
	if len(f.regions) != 0 {
		t.Fatal("no region should be drawn")
	}
}

func TestExpandedRegionIsResizable(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, c := newTestPanel(t, Config[testTab]{MinSize: 180, MaxSize: 600, Size: 320})
	viewer := &testViewer{}
	resp := p.Show(f, viewer)

	r := f.lastRegion()
	if r.ID != "ide/left_expanded" {
		t.Fatalf("region id = %q", r.ID)
	}
	if !r.Resizable || r.Min != 180 || r.Max != 600 || r.Default != 320 {
		t.Fatalf("expanded region = %+v", r)
	}
	if resp.Content != ContentDock || resp.Phase != Expanded {
		t.Fatalf("response = %+v", resp)
	}
	if c.shows != 1 || len(viewer.rendered) != 1 {
		t.Fatal("container should render the dock content")
	}
}

func TestUnboundedMaxIsInfinite(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{})
	p.Show(f, &testViewer{})
	if !math.IsInf(f.lastRegion().Max, 1) {
		t.Fatalf("Max = %v, want +Inf", f.lastRegion().Max)
	}
}

func TestCollapseAnimation(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{Size: 400, Buttons: []Button{NewButton("Search")}})
	p.Show(f, &testViewer{})

	p.Toggle()
	resp := p.Show(f.next(16*time.Millisecond), &testViewer{})
	r := f.lastRegion()
	if r.ID != "ide/left_collapsed" {
		t.Fatalf("collapsing region id = %q, want collapsed id", r.ID)
	}
	if r.Resizable || r.Min != r.Max || r.Max != r.Default {
		t.Fatalf("collapsing region should be locked: %+v", r)
	}

	resp = p.Show(f.next(100*time.Millisecond), &testViewer{})
	if resp.Phase != Collapsing {
		t.Fatalf("Phase = %v, want collapsing", resp.Phase)
	}
	if resp.Extent <= CollapsedExtent || resp.Extent >= 400 {
		t.Fatalf("mid-animation extent %v not strictly between %v and 400", resp.Extent, CollapsedExtent)
	}
	if resp.Content != ContentBusy || f.surface.busy != 1 {
		t.Fatalf("mid-animation content = %v, want busy", resp.Content)
	}

	resp = p.Show(f.settle(), &testViewer{})
	if resp.Extent != CollapsedExtent || resp.Phase != Collapsed {
		t.Fatalf("settled response = %+v", resp)
	}
	if resp.Content != ContentStrip || !f.surface.filled {
		t.Fatal("collapsed panel should draw the strip")
	}
	if p.Size() != 400 {
		t.Fatalf("Size() changed by collapsing: %v", p.Size())
	}
}

func TestToggleCyclesKeepSize(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{MinSize: 200, Buttons: []Button{NewButton("Files")}})
	p.Show(f, &testViewer{})
	want := p.Size()

	for i := 0; i < 3; i++ {
		for _, collapsed := range []bool{true, false} {
			p.SetCollapsed(collapsed)
			for step := 0; step < 15; step++ {
				p.Show(f.next(16*time.Millisecond), &testViewer{})
			}
		}
	}
	if got := p.Size(); got != want {
		t.Fatalf("Size() after toggle cycles = %v, want %v", got, want)
	}
}

func TestResizeHysteresis(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{Size: 300})
	p.Show(f, &testViewer{})

	f.realize["ide/left_expanded"] = 305
	p.Show(f.next(16*time.Millisecond), &testViewer{})
	if p.Size() != 300 {
		t.Fatalf("drift of 5 changed size to %v", p.Size())
	}

	f.realize["ide/left_expanded"] = 306
	p.Show(f.next(16*time.Millisecond), &testViewer{})
	if p.Size() != 306 {
		t.Fatalf("drift of 6 left size at %v, want 306", p.Size())
	}
}

func TestResizeTopUsesHeight(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{Side: Top, Size: 200})
	p.Show(f, &testViewer{})

	f.realize["ide/top_expanded"] = 260
	p.Show(f.next(16*time.Millisecond), &testViewer{})
	if p.Size() != 260 {
		t.Fatalf("Size() = %v, want 260", p.Size())
	}
}

func TestStripPreservesOrder(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{
		Collapsed: true,
		Buttons: []Button{
			NewButton("Search", WithTooltip("Find in files")),
			NewButton("Files"),
			NewButton("Scene", WithIcon(icons.CustomPrefix+"SceneTree")),
		},
	})
	p.Show(f, &testViewer{})

	got := f.surface.buttons
	if len(got) != 3 {
		t.Fatalf("strip drew %d buttons, want 3", len(got))
	}
	wantIDs := []string{"ide/left_button_0", "ide/left_button_1", "ide/left_button_2"}
	wantIcons := []icons.Icon{{Name: icons.Magnifier}, {Name: icons.Folder}, {Name: "SceneTree", Custom: true}}
	for i := range got {
		if got[i].ID != wantIDs[i] || got[i].Icon != wantIcons[i] {
			t.Errorf("button %d = %+v", i, got[i])
		}
		if got[i].Size != (Size{StripButtonSize, StripButtonSize}) {
			t.Errorf("button %d size = %+v", i, got[i].Size)
		}
		if got[i].Active {
			t.Errorf("button %d active while collapsed", i)
		}
	}
	if got[0].Tooltip != "Find in files" || got[1].Tooltip != "Files" {
		t.Fatalf("tooltips = %q, %q", got[0].Tooltip, got[1].Tooltip)
	}
	if f.surface.rows != 0 {
		t.Fatal("left strip should stack vertically")
	}
}

func TestHorizontalStripHasExpandAffordance(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{Side: Bottom, Collapsed: true, Buttons: []Button{NewButton("Console")}})
	p.Show(f, &testViewer{})

	if f.surface.rows != 1 {
		t.Fatal("bottom strip should lay out in a row")
	}
	if len(f.surface.small) != 1 || f.surface.small[0] != "ide/bottom_expand" {
		t.Fatalf("small buttons = %v", f.surface.small)
	}

	f.next(16 * time.Millisecond)
	f.clicks["ide/bottom_expand"] = true
	resp := p.Show(f, &testViewer{})
	if !resp.Clicked || p.IsCollapsed() {
		t.Fatal("expand affordance should expand the panel")
	}
}

func TestStripClickExpandsAndActivates(t *testing.T) {
	store := memory.NewMem()
	f := newTestFrame(store)
	p, c := newTestPanel(t, Config[testTab]{
		Collapsed: true,
		Buttons:   []Button{NewButton("Search"), NewButton("Files")},
	})
	p.Show(f, &testViewer{})
	writes := store.Puts()

	f.next(16 * time.Millisecond)
	f.clicks["ide/left_button_1"] = true
	resp := p.Show(f, &testViewer{})

	if !resp.Clicked || p.IsCollapsed() {
		t.Fatal("clicking a strip button should expand the panel")
	}
	if i, ok := p.ActiveButton(); !ok || i != 1 {
		t.Fatalf("ActiveButton() = %d, %v; want 1", i, ok)
	}
	if c.focused != 1 {
		t.Fatalf("container focused %d, want 1", c.focused)
	}
	if store.Puts() != writes+1 {
		t.Fatal("expanding should be persisted in the same frame")
	}
}

func TestMinimize(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{Side: Right, ShowMinimize: true})
	p.Show(f, &testViewer{})
	if len(f.surface.small) != 1 || f.surface.small[0] != "ide/right_minimize" {
		t.Fatalf("small buttons = %v", f.surface.small)
	}

	f.next(16 * time.Millisecond)
	f.clicks["ide/right_minimize"] = true
	p.Show(f, &testViewer{})
	if !p.IsCollapsed() {
		t.Fatal("minimize should collapse the panel")
	}
}

func TestContainerCanMinimize(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, c := newTestPanel(t, Config[testTab]{})
	c.minimize = true
	p.Show(f, &testViewer{})
	if !p.IsCollapsed() {
		t.Fatal("container minimize request should collapse the panel")
	}
}

func TestPersistOnChange(t *testing.T) {
	store := memory.NewMem()
	f := newTestFrame(store)
	p, _ := newTestPanel(t, Config[testTab]{Buttons: []Button{NewButton("Files")}})

	p.Show(f, &testViewer{})
	if store.Puts() != 1 {
		t.Fatalf("first frame writes = %d, want 1", store.Puts())
	}
	for i := 0; i < 5; i++ {
		p.Show(f.next(16*time.Millisecond), &testViewer{})
	}
	if store.Puts() != 1 {
		t.Fatalf("idle frames wrote state: %d writes", store.Puts())
	}

	p.Toggle()
	p.Show(f.next(16*time.Millisecond), &testViewer{})
	if store.Puts() != 2 {
		t.Fatalf("toggle writes = %d, want 2", store.Puts())
	}

	st, ok := LoadState(store, "ide", nil)
	if !ok || !st.IsPanelCollapsed(Left) {
		t.Fatal("persisted state should record the collapse")
	}
}

func TestPersistAlways(t *testing.T) {
	store := memory.NewMem()
	f := newTestFrame(store)
	p, _ := newTestPanel(t, Config[testTab]{Persist: PersistAlways})
	for i := 0; i < 4; i++ {
		p.Show(f.next(16*time.Millisecond), &testViewer{})
	}
	if store.Puts() != 4 {
		t.Fatalf("writes = %d, want 4", store.Puts())
	}
}

func TestPersistenceDisabled(t *testing.T) {
	store := memory.NewMem()
	f := newTestFrame(store)
	p, _ := newTestPanel(t, Config[testTab]{DisablePersistence: true, Persist: PersistAlways})
	p.Toggle()
	p.Show(f, &testViewer{})
	if store.Puts() != 0 {
		t.Fatalf("writes = %d with persistence disabled", store.Puts())
	}
}

func TestStateSurvivesRestart(t *testing.T) {
	store := memory.NewMem()
	f := newTestFrame(store)
	p, _ := newTestPanel(t, Config[testTab]{Side: Right, Buttons: []Button{NewButton("History")}})
	p.Show(f, &testViewer{})
	f.realize["ide/right_expanded"] = 450
	p.Show(f.next(16*time.Millisecond), &testViewer{})
	p.Toggle()
	p.Show(f.next(16*time.Millisecond), &testViewer{})

	restarted, _ := newTestPanel(t, Config[testTab]{Side: Right, Buttons: []Button{NewButton("History")}})
	restarted.Show(newTestFrame(store), &testViewer{})
	if !restarted.IsCollapsed() || restarted.Size() != 450 {
		t.Fatalf("restarted panel collapsed=%v size=%v; want true, 450", restarted.IsCollapsed(), restarted.Size())
	}
}

func TestSetActiveButtonIgnoresOutOfRange(t *testing.T) {
	p, _ := newTestPanel(t, Config[testTab]{Buttons: []Button{NewButton("a")}})
	p.SetActiveButton(5)
	if i, _ := p.ActiveButton(); i != 0 {
		t.Fatalf("ActiveButton() = %d, want 0", i)
	}
	q, _ := newTestPanel(t, Config[testTab]{})
	if _, ok := q.ActiveButton(); ok {
		t.Fatal("panel without buttons has no active button")
	}
}

func TestRetargetingAfterToggle(t *testing.T) {
	f := newTestFrame(memory.NewMem())
	p, _ := newTestPanel(t, Config[testTab]{Buttons: []Button{NewButton("Files")}})
	if p.Retargeting() {
		t.Fatal("a panel that never drew has no target to disagree with")
	}
	p.Show(f, &testViewer{})
	if p.Retargeting() {
		t.Fatal("Retargeting() right after Show")
	}

	p.Toggle()
	if !p.Retargeting() {
		t.Fatal("Retargeting() should report a toggle made after the frame")
	}
	p.Show(f.next(16*time.Millisecond), &testViewer{})
	if p.Retargeting() {
		t.Fatal("the next frame should pick up the new target")
	}
	if p.Phase() != Collapsing {
		t.Fatalf("Phase() = %v, want collapsing", p.Phase())
	}
}
