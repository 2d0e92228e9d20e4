package theme

import "github.com/charmbracelet/lipgloss"

// TokyoNight is a dark theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:    "Tokyo Night",
	Syntax:  "tokyonight-night",
	Base:    lipgloss.Color("#1a1b26"),
	Mantle:  lipgloss.Color("#16161e"),
	Crust:   lipgloss.Color("#13131a"),
	Surface: lipgloss.Color("#292e42"),
	Overlay: lipgloss.Color("#3b4261"),

	Text:    lipgloss.Color("#c0caf5"),
	Subtext: lipgloss.Color("#a9b1d6"),
	Muted:   lipgloss.Color("#565f89"),

	Accent: lipgloss.Color("#bb9af7"),
	Blue:   lipgloss.Color("#7aa2f7"),
	Green:  lipgloss.Color("#9ece6a"),
	Yellow: lipgloss.Color("#e0af68"),
	Peach:  lipgloss.Color("#ff9e64"),
	Red:    lipgloss.Color("#f7768e"),

	Separator:     lipgloss.Color("#3b4261"),
	SeparatorDrag: lipgloss.Color("#bb9af7"),
	Indicator:     lipgloss.Color("#7dcfff"),
}
