package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/ui/msgs"
)

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	k := a.keys
	switch {
	case key.Matches(msg, k.Quit):
		return tea.Quit
	case key.Matches(msg, k.Help):
		a.help.SetSize(a.screen.Width, a.screen.Height)
		a.help.Toggle()
		a.setMode(msgs.ModeHelp)
		return nil
	case key.Matches(msg, k.Search):
		a.openTab(dock.Left, TabSearch)
		a.setMode(msgs.ModeSearch)
		return a.search.Focus()
	case key.Matches(msg, k.CopyState):
		return emit(msgs.CopyStateMsg{})
	case key.Matches(msg, k.NextTheme):
		return emitSwitchTheme(a.nextThemeName())
	case key.Matches(msg, k.ResetState):
		return emitReset()
	case key.Matches(msg, k.ToggleLeft):
		return emit(msgs.TogglePanelMsg{Side: dock.Left})
	case key.Matches(msg, k.ToggleRight):
		return emit(msgs.TogglePanelMsg{Side: dock.Right})
	case key.Matches(msg, k.ToggleTop):
		return emit(msgs.TogglePanelMsg{Side: dock.Top})
	case key.Matches(msg, k.ToggleBottom):
		return emit(msgs.TogglePanelMsg{Side: dock.Bottom})
	case key.Matches(msg, k.CollapseAll):
		return emit(msgs.SetAllPanelsMsg{Collapsed: true})
	case key.Matches(msg, k.ExpandAll):
		return emit(msgs.SetAllPanelsMsg{Collapsed: false})
	case key.Matches(msg, k.OpenButton):
		n := int(msg.String()[0] - '1')
		return emit(msgs.FocusButtonMsg{Side: dock.Left, Index: n})
	}
	return nil
}

// updateSearch feeds keys to the search input. Enter opens the best match.
func (a *App) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		a.search.Blur()
		a.setMode(msgs.ModeNormal)
		return nil
	case "enter":
		if hits := a.searchHits(); len(hits) > 0 {
			a.openTab(hits[0].side, hits[0].tab)
		}
		a.search.Blur()
		a.search.SetValue("")
		a.setMode(msgs.ModeNormal)
		return nil
	}
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	return cmd
}

func emit(m tea.Msg) tea.Cmd {
	return func() tea.Msg { return m }
}

func emitSwitchTheme(name string) tea.Cmd {
	return emit(msgs.SwitchThemeMsg{Name: name})
}

func emitReset() tea.Cmd {
	return emit(msgs.ResetLayoutMsg{})
}
