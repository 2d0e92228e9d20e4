package app

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sahilm/fuzzy"

	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/dock/icons"
)

// Tab identifies the content shown in a panel tab.
type Tab string

const (
	TabSearch      Tab = "search"
	TabFiles       Tab = "files"
	TabScene       Tab = "scene"
	TabProperties  Tab = "properties"
	TabSettings    Tab = "settings"
	TabState       Tab = "state"
	TabHistory     Tab = "history"
	TabDiagnostics Tab = "diagnostics"
	TabConsole     Tab = "console"
	TabTerminal    Tab = "terminal"
)

type tabInfo struct {
	title   string
	icon    string
	tooltip string
}

var tabInfos = map[Tab]tabInfo{
	TabSearch:      {"Search", "", "Search tabs (/)"},
	TabFiles:       {"Files", "", "Working directory"},
	TabScene:       {"Scene", icons.CustomPrefix + "SceneTree", "Panel and tab tree"},
	TabProperties:  {"Properties", icons.CustomPrefix + "Properties", "Panel properties"},
	TabSettings:    {"Settings", "", "Settings"},
	TabState:       {"State", "", "Persisted layout"},
	TabHistory:     {"History", "", "Layout history"},
	TabDiagnostics: {"Diagnostics", "", "Store diagnostics"},
	TabConsole:     {"Console", icons.CustomPrefix + "Console", "Frame console"},
	TabTerminal:    {"Terminal", icons.CustomPrefix + "Terminal", "Terminal info"},
}

// sideTabs lists the default tabs of each panel; the strip shows one button per
// tab in the same order.
var sideTabs = [...][]Tab{
	dock.Left:   {TabSearch, TabFiles, TabScene},
	dock.Right:  {TabProperties, TabSettings, TabState},
	dock.Top:    {TabHistory, TabDiagnostics},
	dock.Bottom: {TabConsole, TabTerminal},
}

func buttonsFor(tabs []Tab) []dock.Button {
	out := make([]dock.Button, len(tabs))
	for i, t := range tabs {
		info := tabInfos[t]
		opts := []dock.ButtonOption{dock.WithTooltip(info.tooltip)}
		if info.icon != "" {
			opts = append(opts, dock.WithIcon(info.icon))
		}
		out[i] = dock.NewButton(info.title, opts...)
	}
	return out
}

// openTab expands the panel on side with tab in front, reopening it if closed.
func (a *App) openTab(side dock.PanelSide, tab Tab) {
	p := a.panels[side]
	p.SetCollapsed(false)
	if i := slices.Index(sideTabs[side], tab); i >= 0 {
		p.SetActiveButton(i)
	}
}

// tabViewer renders tab content from the app's current state.
type tabViewer struct {
	a *App
}

func (v tabViewer) Title(tab Tab) string { return tabInfos[tab].title }

func (v tabViewer) Closable(Tab) bool { return true }

func (v tabViewer) Render(s dock.Surface, tab Tab) {
	a := v.a
	switch tab {
	case TabSearch:
		a.renderSearch(s)
	case TabFiles:
		a.renderFiles(s)
	case TabScene:
		a.renderScene(s)
	case TabProperties:
		a.renderProperties(s)
	case TabSettings:
		a.renderSettings(s)
	case TabState:
		a.renderState(s)
	case TabHistory:
		a.renderHistory(s)
	case TabDiagnostics:
		a.renderDiagnostics(s)
	case TabConsole:
		a.renderConsole(s)
	case TabTerminal:
		a.renderTerminal(s)
	default:
		s.Label(a.styles.Muted.Render("Unknown tab " + string(tab)))
	}
}

type searchHit struct {
	side  dock.PanelSide
	tab   Tab
	label string
}

// searchHits fuzzy-matches the query against every tab title and side. An empty
// query lists everything.
func (a *App) searchHits() []searchHit {
	var all []searchHit
	for _, side := range dock.Sides {
		for _, tab := range sideTabs[side] {
			all = append(all, searchHit{side, tab, tabInfos[tab].title + " · " + side.String()})
		}
	}
	q := strings.TrimSpace(a.search.Value())
	if q == "" {
		return all
	}
	words := make([]string, len(all))
	for i, h := range all {
		words[i] = h.label
	}
	matches := fuzzy.Find(q, words)
	out := make([]searchHit, len(matches))
	for i, m := range matches {
		out[i] = all[m.Index]
	}
	return out
}

func (a *App) renderSearch(s dock.Surface) {
	s.Label(a.search.View())
	hits := a.searchHits()
	if len(hits) == 0 {
		s.Label(a.styles.Muted.Render("No matches"))
		return
	}
	for i, h := range hits {
		if s.Button(IDPrefix+"search/hit_"+strconv.Itoa(i), h.label, false).Clicked {
			a.openTab(h.side, h.tab)
		}
	}
}

// maxFiles bounds the directory listing.
const maxFiles = 200

func (a *App) renderFiles(s dock.Surface) {
	dir, err := os.Getwd()
	if err != nil {
		s.Label(a.styles.Error.Render(err.Error()))
		return
	}
	if a.filesAt != dir {
		a.filesAt = dir
		a.files, err = os.ReadDir(dir)
		if err != nil {
			a.log.Warn("listing directory failed", "dir", dir, "err", err)
		}
	}
	s.Label(a.styles.Title.Render(filepath.Base(dir)))
	for i, e := range a.files {
		if i == maxFiles {
			s.Label(a.styles.Muted.Render(fmt.Sprintf("… %d more", len(a.files)-maxFiles)))
			break
		}
		if e.IsDir() {
			s.Label(a.styles.Key.Render(e.Name() + "/"))
			continue
		}
		size := ""
		if info, err := e.Info(); err == nil {
			size = humanize.Bytes(uint64(info.Size()))
		}
		s.Label(e.Name() + "  " + a.styles.Muted.Render(size))
	}
}

func (a *App) renderScene(s dock.Surface) {
	s.Label(a.styles.Title.Render("dockfold"))
	for i, p := range a.panels {
		branch, stem := "├─ ", "│  "
		if i == len(a.panels)-1 {
			branch, stem = "└─ ", "   "
		}
		s.Label(branch + a.styles.Key.Render(p.Side().String()) + " " + a.styles.Muted.Render(p.Phase().String()))
		area := a.areas[p.Side()]
		tabs := area.Tabs()
		for j, tab := range tabs {
			leaf := "├─ "
			if j == len(tabs)-1 {
				leaf = "└─ "
			}
			title := tabInfos[tab].title
			if j == area.ActiveIndex() {
				title = a.styles.Bold.Render(title)
			}
			s.Label(stem + leaf + title)
		}
	}
}

func (a *App) renderProperties(s dock.Surface) {
	for _, p := range a.panels {
		ps := p.State().Panel(p.Side())
		maxSize := "∞"
		if ps.MaxSize != nil {
			maxSize = fmt.Sprintf("%.0f", *ps.MaxSize)
		}
		s.Label(a.styles.Title.Render(p.Side().String()))
		a.property(s, "collapsed", strconv.FormatBool(ps.Collapsed))
		a.property(s, "size", fmt.Sprintf("%.0f", ps.Size))
		a.property(s, "min", fmt.Sprintf("%.0f", ps.MinSize))
		a.property(s, "max", maxSize)
		a.property(s, "resizable", strconv.FormatBool(ps.Resizable))
		a.property(s, "phase", fmt.Sprintf("%s %.0f%%", p.Phase(), p.Progress()*100))
	}
}

func (a *App) property(s dock.Surface, name, value string) {
	s.Label("  " + a.styles.Key.Render(fmt.Sprintf("%-10s", name)) + a.styles.Value.Render(value))
}

func (a *App) renderSettings(s dock.Surface) {
	if s.Button(IDPrefix+"settings/theme", "Theme: "+a.theme.Name, false).Clicked {
		a.pending = append(a.pending, emitSwitchTheme(a.nextThemeName()))
	}
	a.property(s, "store", a.cfg.Store)
	if f := a.cfg.StoreFile(); f != "" {
		a.property(s, "path", f)
	}
	a.property(s, "persist", a.cfg.PersistPolicy)
	a.property(s, "cell", fmt.Sprintf("%gx%g", a.cfg.CellWidth, a.cfg.CellHeight))
	if s.Button(IDPrefix+"settings/reset", "Reset layout", false).Clicked {
		a.pending = append(a.pending, emitReset())
	}
}

func (a *App) renderState(s dock.Surface) {
	data, err := a.layoutJSON()
	if err != nil {
		s.Label(a.styles.Error.Render(err.Error()))
		return
	}
	s.Label(highlight(data, a.theme.Syntax))
}

func (a *App) renderHistory(s dock.Surface) {
	if len(a.events) == 0 {
		s.Label(a.styles.Muted.Render("No layout changes yet"))
		return
	}
	now := a.now()
	for i := len(a.events) - 1; i >= 0; i-- {
		e := a.events[i]
		when := humanize.RelTime(e.At, now, "ago", "from now")
		s.Label(a.styles.Muted.Render(fmt.Sprintf("%-16s", when)) + a.styles.Key.Render(e.Side.String()) + " " + e.Text)
	}
}

func (a *App) renderDiagnostics(s dock.Surface) {
	a.property(s, "backend", a.cfg.Store)
	a.property(s, "writes", strconv.Itoa(a.store.writes))
	b, ok := a.store.browser()
	if !ok {
		s.Label(a.styles.Muted.Render("Store cannot list keys"))
		return
	}
	entries, err := b.List(IDPrefix)
	if err != nil {
		s.Label(a.styles.Error.Render(err.Error()))
		return
	}
	now := a.now()
	for _, e := range entries {
		line := fmt.Sprintf("%-34s %8s  %s", e.Key, humanize.Bytes(uint64(len(e.Value))),
			humanize.RelTime(e.UpdatedAt, now, "ago", "from now"))
		if e.Session != "" {
			line += "  " + a.styles.Muted.Render(shortSession(e.Session))
		}
		s.Label(line)
	}
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func (a *App) renderConsole(s dock.Surface) {
	a.property(s, "frames", humanize.Comma(int64(a.frames)))
	a.property(s, "animating", strconv.FormatBool(a.host.Animating()))
	if id, ok := a.host.Dragging(); ok {
		a.property(s, "dragging", id)
	}
	if t := a.store.SavedAt(); !t.IsZero() {
		a.property(s, "saved", humanize.RelTime(t, a.now(), "ago", "from now"))
	}
	if tip := a.host.Tooltip(); tip != "" {
		a.property(s, "hover", tip)
	}
}

func (a *App) renderTerminal(s dock.Surface) {
	a.property(s, "shell", envOr("SHELL", "unknown"))
	a.property(s, "term", envOr("TERM", "unknown"))
	a.property(s, "screen", fmt.Sprintf("%dx%d", a.screen.Width, a.screen.Height))
	sc := a.host.Scale()
	a.property(s, "scale", fmt.Sprintf("%gx%g points per cell", sc.CellWidth, sc.CellHeight))
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
