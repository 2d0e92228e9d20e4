package dockarea

import (
	"testing"

	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/memory"
)

type surface struct {
	clicks  map[string]bool
	buttons []string
	small   []string
	labels  []string
	rows    int
}

func newSurface() *surface { return &surface{clicks: map[string]bool{}} }

func (s *surface) Bounds() dock.Rect          { return dock.Rect{W: 300, H: 400} }
func (s *surface) FillBackground()            {}
func (s *surface) Row(fn func(dock.Surface))  { s.rows++; fn(s) }
func (s *surface) Label(text string)          { s.labels = append(s.labels, text) }
func (s *surface) Busy()                      {}
func (s *surface) IconButton(dock.IconButton) dock.Interaction { return dock.Interaction{} }

func (s *surface) Button(id, label string, selected bool) dock.Interaction {
	s.buttons = append(s.buttons, label)
	return dock.Interaction{Clicked: s.clicks[id]}
}

func (s *surface) SmallButton(id, label, tooltip string) dock.Interaction {
	s.small = append(s.small, id)
	return dock.Interaction{Clicked: s.clicks[id]}
}

type viewer struct {
	closable bool
	rendered []string
}

func (v *viewer) Title(tab string) string { return "[" + tab + "]" }
func (v *viewer) Render(s dock.Surface, tab string) {
	v.rendered = append(v.rendered, tab)
}
func (v *viewer) Closable(string) bool { return v.closable }

func TestShowRendersActiveTab(t *testing.T) {
	a := New([]string{"scene", "props"})
	s := newSurface()
	v := &viewer{}
	res := a.Show(s, "ide/left_dock_area", v)

	if res.Minimize {
		t.Fatal("unexpected minimize")
	}
	if s.rows != 1 || len(s.buttons) != 2 || s.buttons[1] != "[props]" {
		t.Fatalf("header = %v", s.buttons)
	}
	if len(s.small) != 0 {
		t.Fatal("close buttons drawn for non-closable tabs")
	}
	if len(v.rendered) != 1 || v.rendered[0] != "scene" {
		t.Fatalf("rendered %v, want [scene]", v.rendered)
	}
}

func TestHeaderClickFocuses(t *testing.T) {
	a := New([]string{"scene", "props"})
	s := newSurface()
	s.clicks["dock/tab_1"] = true
	v := &viewer{}
	a.Show(s, "dock", v)
	if a.ActiveIndex() != 1 || v.rendered[0] != "props" {
		t.Fatalf("active = %d, rendered %v", a.ActiveIndex(), v.rendered)
	}
}

func TestEmptyArea(t *testing.T) {
	a := New[string](nil)
	s := newSurface()
	if res := a.Show(s, "dock", &viewer{}); res.Minimize {
		t.Fatal("empty area should not minimize")
	}
	if len(s.labels) != 1 {
		t.Fatal("empty area should say so")
	}
	if _, ok := a.Active(); ok {
		t.Fatal("empty area has no active tab")
	}
}

func TestCloseTab(t *testing.T) {
	a := New([]string{"a", "b", "c"})
	a.Focus(2)
	s := newSurface()
	s.clicks["dock/close_1"] = true
	a.Show(s, "dock", &viewer{closable: true})

	got := a.Tabs()
	if len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("tabs = %v", got)
	}
	if tab, _ := a.Active(); tab != "c" {
		t.Fatalf("active = %q, want c", tab)
	}
}

func TestClosingLastTabMinimizes(t *testing.T) {
	a := New([]string{"only"})
	s := newSurface()
	s.clicks["dock/close_0"] = true
	res := a.Show(s, "dock", &viewer{closable: true})
	if !res.Minimize {
		t.Fatal("closing the last tab should ask to minimize")
	}
	if len(a.Tabs()) != 1 {
		t.Fatal("last tab should be kept")
	}
}

func TestCloseMinimizes(t *testing.T) {
	a := New([]string{"a", "b"}, CloseMinimizes())
	s := newSurface()
	s.clicks["dock/close_0"] = true
	res := a.Show(s, "dock", &viewer{closable: true})
	if !res.Minimize || len(a.Tabs()) != 2 {
		t.Fatalf("minimize = %v, tabs = %v", res.Minimize, a.Tabs())
	}
}

func TestAddAndFocusTab(t *testing.T) {
	a := New([]string{"a"})
	a.Add("b")
	if a.ActiveIndex() != 1 {
		t.Fatalf("Add() should focus the new tab")
	}
	a.Add("a")
	if a.ActiveIndex() != 0 || len(a.Tabs()) != 2 {
		t.Fatalf("Add(existing) = %v at %d", a.Tabs(), a.ActiveIndex())
	}
	if a.FocusTab("zzz") || a.Close(9) {
		t.Fatal("missing tabs should be rejected")
	}
}

func TestArrangementPersists(t *testing.T) {
	store := memory.NewMem()
	a := New([]string{"a", "b", "c"}, WithStore(store))
	s := newSurface()
	s.clicks["dock/tab_2"] = true
	a.Show(s, "dock", &viewer{})
	if store.Puts() != 1 {
		t.Fatalf("writes = %d, want 1", store.Puts())
	}

	a.Show(newSurface(), "dock", &viewer{})
	if store.Puts() != 1 {
		t.Fatal("unchanged arrangement was written again")
	}

	b := New([]string{"a", "b", "c"}, WithStore(store))
	v := &viewer{}
	b.Show(newSurface(), "dock", v)
	if b.ActiveIndex() != 2 || v.rendered[0] != "c" {
		t.Fatalf("restored active = %d", b.ActiveIndex())
	}
}

func TestLoadRepairsActive(t *testing.T) {
	store := memory.NewMem()
	if err := store.Put("dock", []byte(`{"tabs":["x","y"],"active":7}`)); err != nil {
		t.Fatal(err)
	}
	a := New([]string{"a"}, WithStore(store))
	a.Show(newSurface(), "dock", &viewer{})
	if tab, _ := a.Active(); tab != "x" {
		t.Fatalf("active = %q, want x", tab)
	}
}
