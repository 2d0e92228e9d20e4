package app

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tidwall/pretty"

	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/dockarea"
	"github.com/sadopc/dockfold/internal/memory"
)

// maxEvents caps the layout history.
const maxEvents = 64

// trackedStore remembers when the app last wrote to the store.
type trackedStore struct {
	memory.Store
	now func() time.Time

	savedAt time.Time
	writes  int
}

func (s *trackedStore) Put(key string, value []byte) error {
	if err := s.Store.Put(key, value); err != nil {
		return err
	}
	s.savedAt = s.now()
	s.writes++
	return nil
}

// SavedAt is the time of the last successful write.
func (s *trackedStore) SavedAt() time.Time { return s.savedAt }

func (s *trackedStore) browser() (memory.Browser, bool) {
	b, ok := s.Store.(memory.Browser)
	return b, ok
}

// sideArea is the tab container of one panel. Strip button i always stands for
// the i-th default tab, so clicking a button whose tab was closed reopens it.
type sideArea struct {
	*dockarea.Area[Tab]
	buttons []Tab
}

func newSideArea(tabs []Tab, store memory.Store, log *slog.Logger) *sideArea {
	return &sideArea{
		Area:    dockarea.New(tabs, dockarea.WithStore(store), dockarea.WithLogger(log)),
		buttons: tabs,
	}
}

// Focus implements dock.Focuser.
func (s *sideArea) Focus(i int) {
	if i >= 0 && i < len(s.buttons) {
		s.Add(s.buttons[i])
	}
}

// dockAreaKey is where the tab arrangement of a panel is stored.
func dockAreaKey(side dock.PanelSide) string {
	return PanelID(side) + "/" + side.String() + "_dock_area"
}

type panelSnapshot struct {
	known     bool
	collapsed bool
	size      float64
}

type event struct {
	At   time.Time
	Side dock.PanelSide
	Text string
}

// track compares each panel with the previous frame and records what changed.
func (a *App) track(now time.Time) {
	for _, p := range a.panels {
		side := p.Side()
		cur := panelSnapshot{known: true, collapsed: p.IsCollapsed(), size: p.Size()}
		prev := a.last[side]
		a.last[side] = cur
		if !prev.known {
			continue
		}
		switch {
		case cur.collapsed != prev.collapsed && cur.collapsed:
			a.record(now, side, "collapsed")
		case cur.collapsed != prev.collapsed:
			a.record(now, side, "expanded")
		case cur.size != prev.size:
			a.record(now, side, fmt.Sprintf("resized to %.0f", cur.size))
		}
	}
}

func (a *App) record(now time.Time, side dock.PanelSide, text string) {
	a.events = append(a.events, event{At: now, Side: side, Text: text})
	if len(a.events) > maxEvents {
		a.events = a.events[len(a.events)-maxEvents:]
	}
}

// resetLayout deletes every key the app stored and rebuilds the panels from the
// configuration.
func (a *App) resetLayout() tea.Cmd {
	n, err := a.clearLayout()
	if err != nil {
		a.log.Warn("resetting layout failed", "err", err)
		return a.statusBar.SetMessage("Reset failed: "+err.Error(), true, 3*time.Second)
	}
	if err := a.buildPanels(); err != nil {
		return a.statusBar.SetMessage("Reset failed: "+err.Error(), true, 3*time.Second)
	}
	now := a.now()
	for _, side := range dock.Sides {
		a.record(now, side, "reset")
	}
	return a.statusBar.SetMessage(fmt.Sprintf("Layout reset, %d keys removed", n), false, 2*time.Second)
}

func (a *App) clearLayout() (int, error) {
	b, ok := a.store.browser()
	if !ok {
		return 0, errors.New("store cannot delete keys")
	}
	entries, err := b.List(IDPrefix)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if err := b.Delete(e.Key); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

func (a *App) copyState() tea.Cmd {
	data, err := a.layoutJSON()
	if err == nil {
		err = clipboard.WriteAll(string(data))
	}
	if err != nil {
		return a.statusBar.SetMessage("Copy failed: "+err.Error(), true, 3*time.Second)
	}
	return a.statusBar.SetMessage("Layout copied to clipboard", false, 2*time.Second)
}

// layoutJSON gathers every stored panel state and tab arrangement into one
// pretty-printed object keyed by store key.
func (a *App) layoutJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage)
	for _, side := range dock.Sides {
		for _, key := range []string{dock.StateKey(PanelID(side)), dockAreaKey(side)} {
			data, err := a.store.Get(key)
			if errors.Is(err, memory.ErrNotFound) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("reading %s: %w", key, err)
			}
			if !json.Valid(data) {
				continue
			}
			out[key] = data
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(data), nil
}

// highlight colors JSON for the terminal with the chroma style named styleName.
func highlight(source []byte, styleName string) string {
	lexer := lexers.Get("json")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get(styleName)
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, string(source))
	if err != nil {
		return string(source)
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return string(source)
	}
	return buf.String()
}
