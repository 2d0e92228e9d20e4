package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/dockfold/internal/config"
	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/memory"
	"github.com/sadopc/dockfold/internal/ui/components"
	"github.com/sadopc/dockfold/internal/ui/layout"
	"github.com/sadopc/dockfold/internal/ui/msgs"
	"github.com/sadopc/dockfold/internal/ui/term"
	"github.com/sadopc/dockfold/internal/ui/theme"
)

// frameInterval paces redraws while an animation or drag is running.
const frameInterval = 16 * time.Millisecond

// IDPrefix namespaces every key the app writes to the store.
const IDPrefix = "dockfold/"

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger handed to panels, containers and the host.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithClock replaces time.Now as the frame clock.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// App is the root Bubble Tea model. It rebuilds the whole panel tree on every
// update and keeps the last frame for View.
type App struct {
	cfg   config.Config
	store *trackedStore
	log   *slog.Logger
	now   func() time.Time

	host   *term.Host
	panels [len(dock.Sides)]*dock.Panel[Tab]
	areas  [len(dock.Sides)]*sideArea
	last   [len(dock.Sides)]panelSnapshot

	statusBar components.StatusBar
	help      components.Help
	hints     help.Model
	search    textinput.Model
	keys      KeyMap
	mode      msgs.AppMode

	theme  theme.Theme
	styles theme.Styles

	events  []event
	files   []os.DirEntry
	filesAt string
	frames  int
	pending []tea.Cmd

	screen  layout.Screen
	view    string
	ticking bool
	ready   bool
}

// New creates the app. Panel state is read from and written to store.
func New(cfg config.Config, store memory.Store, opts ...Option) (App, error) {
	if err := cfg.Validate(); err != nil {
		return App{}, fmt.Errorf("invalid config: %w", err)
	}

	t := theme.Resolve(cfg.Theme)
	s := theme.NewStyles(t)

	in := textinput.New()
	in.Prompt = "⌕ "
	in.Placeholder = "filter tabs"
	in.CharLimit = 64

	a := App{
		cfg: cfg,
		log: slog.Default(),
		now: time.Now,

		statusBar: components.NewStatusBar(t, s),
		help:      components.NewHelp(t, s),
		hints:     help.New(),
		search:    in,
		keys:      DefaultKeyMap(),
		mode:      msgs.ModeNormal,

		theme:  t,
		styles: s,
	}
	for _, opt := range opts {
		opt(&a)
	}
	a.store = &trackedStore{Store: store, now: a.now}
	a.statusBar.SetStore(cfg.Store, time.Time{})

	if err := a.buildPanels(); err != nil {
		return App{}, err
	}
	return a, nil
}

// buildPanels creates a fresh host and one panel per edge from the config. Any
// drag offsets and animation tracks of the previous host are dropped.
func (a *App) buildPanels() error {
	policy, err := dock.ParsePersistPolicy(a.cfg.PersistPolicy)
	if err != nil {
		return err
	}
	a.host = term.New(a.store,
		term.WithScale(layout.Scale{CellWidth: a.cfg.CellWidth, CellHeight: a.cfg.CellHeight}),
		term.WithStyles(a.styles),
		term.WithLogger(a.log),
	)

	for _, side := range dock.Sides {
		pc := a.cfg.Panels.For(side)
		area := newSideArea(sideTabs[side], a.store, a.log)
		p, err := dock.New(dock.Config[Tab]{
			Side:         side,
			ID:           PanelID(side),
			Container:    area,
			Size:         pc.Size,
			MinSize:      pc.MinSize,
			MaxSize:      pc.MaxSize,
			Fixed:        pc.Fixed,
			Collapsed:    pc.Collapsed,
			Buttons:      buttonsFor(sideTabs[side]),
			ShowMinimize: pc.ShowMinimize,
			Persist:      policy,
			Logger:       a.log,
		})
		if err != nil {
			return fmt.Errorf("building %s panel: %w", side, err)
		}
		a.panels[side] = p
		a.areas[side] = area
		a.last[side] = panelSnapshot{}
	}
	return nil
}

// PanelID is the store id of the panel docked to side.
func PanelID(side dock.PanelSide) string {
	return IDPrefix + side.String()
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.screen = layout.HandleResize(msg)
		a.help.SetSize(msg.Width, msg.Height)
		a.hints.Width = msg.Width / 2
		a.ready = true

	case tea.KeyMsg:
		if a.help.Visible {
			var cmd tea.Cmd
			a.help, cmd = a.help.Update(msg)
			cmds = append(cmds, cmd)
			break
		}
		if a.mode == msgs.ModeSearch {
			cmds = append(cmds, a.updateSearch(msg))
			break
		}
		cmds = append(cmds, a.handleKey(msg))

	case tea.MouseMsg:
		if !a.host.HandleMouse(msg) {
			return a, nil
		}

	case msgs.FrameMsg:
		a.ticking = false

	case msgs.TogglePanelMsg:
		a.panels[msg.Side].Toggle()

	case msgs.SetAllPanelsMsg:
		for _, p := range a.panels {
			p.SetCollapsed(msg.Collapsed)
		}

	case msgs.FocusButtonMsg:
		p := a.panels[msg.Side]
		if msg.Index >= 0 && msg.Index < len(p.Buttons()) {
			p.SetCollapsed(false)
			p.SetActiveButton(msg.Index)
		}

	case msgs.ResetLayoutMsg:
		cmds = append(cmds, a.resetLayout())

	case msgs.CopyStateMsg:
		cmds = append(cmds, a.copyState())

	case msgs.SwitchThemeMsg:
		a.setTheme(theme.Resolve(msg.Name))
		cmds = append(cmds, a.statusBar.SetMessage("Theme: "+a.theme.Name, false, 2*time.Second))

	case msgs.SetModeMsg:
		a.setMode(msg.Mode)

	case msgs.StatusMsg:
		cmds = append(cmds, a.statusBar.SetMessage(msg.Text, msg.IsError, msg.Duration))

	case msgs.ClearStatusMsg:
		var cmd tea.Cmd
		a.statusBar, cmd = a.statusBar.Update(msg)
		cmds = append(cmds, cmd)
	}

	if a.ready {
		a.render()
		cmds = append(cmds, a.pending...)
		a.pending = nil
		cmds = append(cmds, a.nextFrame())
	}
	return a, tea.Batch(cmds...)
}

// render builds one frame: every panel, the center area and the status bar.
func (a *App) render() {
	now := a.now()
	a.frames++

	a.host.Begin(now, a.screen.Dock)
	v := tabViewer{a: a}
	for _, side := range dock.Sides {
		a.panels[side].Show(a.host, v)
	}
	body := a.host.End(a.centerView)
	a.track(now)

	a.statusBar.SetWidth(a.screen.Width)
	a.statusBar.SetPanels(a.panelStatus())
	a.statusBar.SetTooltip(a.host.Tooltip())
	a.statusBar.SetStore(a.cfg.Store, a.store.SavedAt())
	a.statusBar.SetHints(a.hints.ShortHelpView(a.keys.ShortHelp()))

	a.view = lipgloss.JoinVertical(lipgloss.Left, body, a.statusBar.View())
}

// nextFrame schedules a redraw while something is moving on screen or a panel was
// toggled after it picked this frame's animation target. At most one tick is in
// flight.
func (a *App) nextFrame() tea.Cmd {
	if a.ticking || !(a.host.Animating() || a.retargeting()) {
		return nil
	}
	a.ticking = true
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return msgs.FrameMsg{Time: t}
	})
}

func (a *App) retargeting() bool {
	for _, p := range a.panels {
		if p.Retargeting() {
			return true
		}
	}
	return false
}

func (a *App) centerView(w, h int) string {
	lines := []string{
		a.styles.Title.Render("dockfold"),
		"",
		a.styles.Muted.Render(fmt.Sprintf("%d×%d", w, h)),
	}
	if id, ok := a.host.Dragging(); ok {
		lines = append(lines, a.styles.Hint.Render("resizing "+strings.TrimPrefix(id, IDPrefix)))
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}

func (a *App) panelStatus() []components.PanelStatus {
	out := make([]components.PanelStatus, 0, len(a.panels))
	for _, p := range a.panels {
		out = append(out, components.PanelStatus{Side: p.Side(), Phase: p.Phase(), Size: p.Size()})
	}
	return out
}

func (a *App) setMode(m msgs.AppMode) {
	a.mode = m
	a.statusBar.SetMode(m)
}

func (a *App) setTheme(t theme.Theme) {
	a.theme = t
	a.styles = theme.NewStyles(t)
	a.host.SetStyles(a.styles)
	a.statusBar.SetTheme(t, a.styles)
	a.help.SetTheme(t, a.styles)
}

// nextThemeName returns the built-in theme after the current one.
func (a *App) nextThemeName() string {
	names := theme.Names()
	for i, n := range names {
		if n == a.theme.Name {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}
	if a.help.Visible {
		return overlayCenter(a.help.View(), a.theme.Base, a.screen.Width, a.screen.Height)
	}
	return a.view
}

func overlayCenter(overlay string, bg lipgloss.Color, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(bg),
	)
}
