package msgs

import (
	"time"

	"github.com/sadopc/dockfold/internal/dock"
)

// AppMode represents the current input mode.
type AppMode int

const (
	ModeNormal AppMode = iota
	ModeSearch
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeSearch:
		return "SEARCH"
	case ModeHelp:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// FrameMsg drives a redraw while an animation or drag is in progress.
type FrameMsg struct {
	Time time.Time
}

// TogglePanelMsg collapses or expands the panel on one edge.
type TogglePanelMsg struct {
	Side dock.PanelSide
}

// SetAllPanelsMsg collapses or expands every panel at once.
type SetAllPanelsMsg struct {
	Collapsed bool
}

// FocusButtonMsg opens a panel on the tab behind one of its strip buttons.
type FocusButtonMsg struct {
	Side  dock.PanelSide
	Index int
}

// ResetLayoutMsg discards persisted panel state and restores configured defaults.
type ResetLayoutMsg struct{}

// CopyStateMsg copies the persisted state JSON to the clipboard.
type CopyStateMsg struct{}

// SwitchThemeMsg requests switching to a named theme.
type SwitchThemeMsg struct {
	Name string
}

// SetModeMsg changes the app mode.
type SetModeMsg struct {
	Mode AppMode
}

// StatusMsg sets a temporary status bar message.
type StatusMsg struct {
	Text     string
	Duration time.Duration
	IsError  bool
}

// ClearStatusMsg clears the status message set at Set, unless a newer one replaced it.
type ClearStatusMsg struct {
	Set time.Time
}
