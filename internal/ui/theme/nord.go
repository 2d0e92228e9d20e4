package theme

import "github.com/charmbracelet/lipgloss"

// Nord is an arctic, north-bluish theme.
var Nord = Theme{
	Name:    "Nord",
	Syntax:  "nord",
	Base:    lipgloss.Color("#2e3440"),
	Mantle:  lipgloss.Color("#292e39"),
	Crust:   lipgloss.Color("#242933"),
	Surface: lipgloss.Color("#3b4252"),
	Overlay: lipgloss.Color("#434c5e"),

	Text:    lipgloss.Color("#eceff4"),
	Subtext: lipgloss.Color("#d8dee9"),
	Muted:   lipgloss.Color("#4c566a"),

	Accent: lipgloss.Color("#88c0d0"),
	Blue:   lipgloss.Color("#5e81ac"),
	Green:  lipgloss.Color("#a3be8c"),
	Yellow: lipgloss.Color("#ebcb8b"),
	Peach:  lipgloss.Color("#d08770"),
	Red:    lipgloss.Color("#bf616a"),

	Separator:     lipgloss.Color("#434c5e"),
	SeparatorDrag: lipgloss.Color("#88c0d0"),
	Indicator:     lipgloss.Color("#81a1c1"),
}
