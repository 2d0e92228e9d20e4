package layout

import tea "github.com/charmbracelet/bubbletea"

// HandleResize processes a WindowSizeMsg and returns the updated screen layout.
func HandleResize(msg tea.WindowSizeMsg) Screen {
	return Calculate(msg.Width, msg.Height)
}
