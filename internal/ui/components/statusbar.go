package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/ui/msgs"
	"github.com/sadopc/dockfold/internal/ui/theme"
)

// PanelStatus is what the status bar shows for one edge panel.
type PanelStatus struct {
	Side  dock.PanelSide
	Phase dock.Phase
	Size  float64
}

// StatusBar is a full-width bottom status bar.
type StatusBar struct {
	panels  []PanelStatus
	mode    msgs.AppMode
	message string
	isError bool
	setAt   time.Time
	tooltip string
	store   string
	savedAt time.Time
	hints   string
	width   int
	theme   theme.Theme
	styles  theme.Styles
	now     func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar(t theme.Theme, s theme.Styles) StatusBar {
	return StatusBar{
		theme:  t,
		styles: s,
		mode:   msgs.ModeNormal,
		hints:  "?:help",
		now:    time.Now,
	}
}

// SetTheme swaps the colors used from the next render on.
func (m *StatusBar) SetTheme(t theme.Theme, s theme.Styles) {
	m.theme = t
	m.styles = s
}

// SetPanels sets the per-edge panel summary.
func (m *StatusBar) SetPanels(p []PanelStatus) {
	m.panels = p
}

// SetMode sets the current app mode.
func (m *StatusBar) SetMode(mode msgs.AppMode) {
	m.mode = mode
}

// SetWidth sets the available width.
func (m *StatusBar) SetWidth(w int) {
	m.width = w
}

// SetMessage sets a temporary status message and returns a command clearing it
// after d.
func (m *StatusBar) SetMessage(text string, isError bool, d time.Duration) tea.Cmd {
	m.message = text
	m.isError = isError
	m.setAt = m.now()
	if d <= 0 {
		return nil
	}
	set := m.setAt
	return tea.Tick(d, func(time.Time) tea.Msg { return msgs.ClearStatusMsg{Set: set} })
}

// SetTooltip shows hover text in place of the panel summary.
func (m *StatusBar) SetTooltip(text string) {
	m.tooltip = text
}

// SetStore names the persistence backend and when it was last written.
func (m *StatusBar) SetStore(name string, savedAt time.Time) {
	m.store = name
	m.savedAt = savedAt
}

// SetHints sets the key hints shown on the right.
func (m *StatusBar) SetHints(h string) {
	m.hints = h
}

// Init implements tea.Model.
func (m StatusBar) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m StatusBar) Update(msg tea.Msg) (StatusBar, tea.Cmd) {
	switch msg := msg.(type) {
	case msgs.ClearStatusMsg:
		if msg.Set.Equal(m.setAt) {
			m.message = ""
			m.isError = false
		}
	}
	return m, nil
}

// View renders the status bar.
func (m StatusBar) View() string {
	bg := m.theme.Surface
	barStyle := lipgloss.NewStyle().
		Background(bg).
		Foreground(m.theme.Text).
		Width(m.width)

	var left string
	switch {
	case m.message != "":
		fg := m.theme.Text
		if m.isError {
			fg = m.theme.Red
		}
		left = lipgloss.NewStyle().Foreground(fg).Background(bg).Render(m.message)
	case m.tooltip != "":
		left = lipgloss.NewStyle().Foreground(m.theme.Subtext).Background(bg).Italic(true).Render(m.tooltip)
	default:
		var parts []string
		for _, p := range m.panels {
			parts = append(parts, m.panelView(p))
		}
		left = strings.Join(parts, " ")
	}

	// Center: mode indicator
	modeStr := lipgloss.NewStyle().
		Foreground(m.theme.Accent).
		Background(bg).
		Bold(true).
		Render("[" + m.mode.String() + "]")

	// Right: store + hints
	var rightParts []string
	if m.store != "" {
		s := m.store
		if !m.savedAt.IsZero() {
			s += " · saved " + humanize.RelTime(m.savedAt, m.now(), "ago", "from now")
		}
		rightParts = append(rightParts, lipgloss.NewStyle().
			Foreground(m.theme.Subtext).
			Background(bg).
			Render(s))
	}
	rightParts = append(rightParts, lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Background(bg).
		Render(m.hints))
	hint := strings.Join(rightParts, "  ")

	leftWidth := lipgloss.Width(left)
	centerWidth := lipgloss.Width(modeStr)
	rightWidth := lipgloss.Width(hint)

	totalContent := leftWidth + centerWidth + rightWidth
	if totalContent >= m.width {
		line := " " + left + " " + modeStr + " " + hint
		return barStyle.MaxWidth(m.width).Render(line)
	}

	remaining := m.width - totalContent - 2 // padding
	gap1 := remaining / 2
	gap2 := remaining - gap1

	line := " " + left +
		strings.Repeat(" ", gap1) + modeStr +
		strings.Repeat(" ", gap2) + hint

	return barStyle.Render(line)
}

func (m StatusBar) panelView(p PanelStatus) string {
	bg := m.theme.Surface
	name := lipgloss.NewStyle().
		Foreground(m.theme.SideColor(p.Side)).
		Background(bg).
		Bold(true).
		Render(strings.ToUpper(p.Side.String()[:1]))
	state := lipgloss.NewStyle().
		Foreground(m.theme.PhaseColor(p.Phase)).
		Background(bg).
		Render(phaseGlyph(p.Phase) + fmt.Sprintf("%.0f", p.Size))
	return name + state
}

func phaseGlyph(p dock.Phase) string {
	switch p {
	case dock.Expanded:
		return "▮"
	case dock.Expanding:
		return "▸"
	case dock.Collapsing:
		return "◂"
	default:
		return "▯"
	}
}
