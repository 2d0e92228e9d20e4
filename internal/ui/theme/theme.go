package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/dockfold/internal/dock"
)

// Theme holds all colors for the application.
type Theme struct {
	Name string
	// Syntax names the chroma style used for highlighted JSON.
	Syntax string

	// Base colors
	Base    lipgloss.Color
	Mantle  lipgloss.Color
	Crust   lipgloss.Color
	Surface lipgloss.Color
	Overlay lipgloss.Color

	// Text
	Text    lipgloss.Color
	Subtext lipgloss.Color
	Muted   lipgloss.Color

	// Accents
	Accent lipgloss.Color
	Blue   lipgloss.Color
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Peach  lipgloss.Color
	Red    lipgloss.Color

	// Semantic
	Separator     lipgloss.Color
	SeparatorDrag lipgloss.Color
	Indicator     lipgloss.Color
}

// PhaseColor returns the color a panel phase is reported in.
func (t Theme) PhaseColor(p dock.Phase) lipgloss.Color {
	switch p {
	case dock.Expanded:
		return t.Green
	case dock.Expanding, dock.Collapsing:
		return t.Yellow
	case dock.Collapsed:
		return t.Muted
	default:
		return t.Text
	}
}

// SideColor returns the accent used for a side's label in the status bar.
func (t Theme) SideColor(side dock.PanelSide) lipgloss.Color {
	switch side {
	case dock.Left:
		return t.Blue
	case dock.Right:
		return t.Accent
	case dock.Top:
		return t.Peach
	case dock.Bottom:
		return t.Green
	default:
		return t.Text
	}
}
