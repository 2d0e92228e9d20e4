package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds pre-computed Lip Gloss styles for the current theme.
type Styles struct {
	// Text styles
	Title  lipgloss.Style
	Normal lipgloss.Style
	Muted  lipgloss.Style
	Bold   lipgloss.Style
	Error  lipgloss.Style
	Hint   lipgloss.Style
	Key    lipgloss.Style
	Value  lipgloss.Style

	// Panel regions
	PanelBody     lipgloss.Style
	Strip         lipgloss.Style
	StripButton   lipgloss.Style
	StripActive   lipgloss.Style
	StripSelected lipgloss.Style
	ActiveBar     lipgloss.Style
	Separator     lipgloss.Style
	SeparatorDrag lipgloss.Style
	SmallButton   lipgloss.Style
	Busy          lipgloss.Style
	Center        lipgloss.Style

	// Components
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	StatusBar   lipgloss.Style
	StatusText  lipgloss.Style
	Selected    lipgloss.Style
}

// NewStyles creates a Styles set from a Theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Normal: lipgloss.NewStyle().Foreground(t.Text),
		Muted:  lipgloss.NewStyle().Foreground(t.Muted),
		Bold:   lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(t.Red),
		Hint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
		Key:    lipgloss.NewStyle().Foreground(t.Accent),
		Value:  lipgloss.NewStyle().Foreground(t.Text),

		PanelBody: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Mantle),
		Strip: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Background(t.Crust),
		StripButton: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Background(t.Crust),
		StripActive: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Bold(true),
		StripSelected: lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.Crust),
		ActiveBar: lipgloss.NewStyle().
			Foreground(t.Indicator).
			Background(t.Crust),
		Separator: lipgloss.NewStyle().
			Foreground(t.Separator),
		SeparatorDrag: lipgloss.NewStyle().
			Foreground(t.SeparatorDrag).
			Bold(true),
		SmallButton: lipgloss.NewStyle().
			Foreground(t.Muted),
		Busy: lipgloss.NewStyle().
			Foreground(t.Accent),
		Center: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Base),

		TabActive: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Bold(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(t.Subtext).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text).
			Padding(0, 1),
		StatusText: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(t.Surface).
			Foreground(t.Text),
	}
}
