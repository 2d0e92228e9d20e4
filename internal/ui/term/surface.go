package term

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/dock/icons"
	"github.com/sadopc/dockfold/internal/ui/layout"
)

// surface lays widgets out top to bottom, or left to right inside Row, and
// hit-tests each one against the pending click as it is placed.
type surface struct {
	host   *Host
	box    layout.Box
	filled bool

	lines []string
	row   []string
	rowW  int
	inRow int
}

func (s *surface) Bounds() dock.Rect { return s.host.scale.Rect(s.box) }

func (s *surface) FillBackground() { s.filled = true }

func (s *surface) Row(fn func(dock.Surface)) {
	if s.inRow > 0 {
		fn(s)
		return
	}
	s.inRow++
	fn(s)
	s.inRow--
	s.lines = append(s.lines, strings.Join(s.row, ""))
	s.row, s.rowW = nil, 0
}

func (s *surface) Label(text string) {
	view := s.host.styles.Normal.Render(text)
	s.place(lipgloss.Width(view), view)
}

func (s *surface) Button(id, label string, selected bool) dock.Interaction {
	style := s.host.styles.TabInactive
	if selected {
		style = s.host.styles.TabActive
	}
	view := style.Render(label)
	return s.interact(s.place(lipgloss.Width(view), view), "")
}

func (s *surface) SmallButton(id, label, tooltip string) dock.Interaction {
	view := s.host.styles.SmallButton.Render(" " + label + " ")
	return s.interact(s.place(lipgloss.Width(view), view), tooltip)
}

func (s *surface) IconButton(b dock.IconButton) dock.Interaction {
	sc := s.host.scale
	cols := max(sc.Cells(dock.Left, b.Size.W), 1)
	rows := max(sc.Cells(dock.Top, b.Size.H), 1)
	if s.inRow > 0 {
		rows = 1
	}
	if b.Edge.Vertical() && s.box.W > 0 {
		cols = min(cols, s.box.W)
	}

	bar := b.Edge.Vertical() && cols > 1
	inner := cols
	if bar {
		inner--
	}
	art := iconArt(b.Icon, inner, rows)

	st := s.host.styles
	style := st.StripButton
	switch {
	case b.Active:
		style = st.StripActive
	case b.Selected:
		style = st.StripSelected
	}
	marker := " "
	if b.Active {
		marker = "▎"
		if b.Edge == dock.Right {
			marker = "▕"
		}
	}
	out := make([]string, len(art))
	for i, line := range art {
		cell := style.Render(lipgloss.PlaceHorizontal(inner, lipgloss.Center, line))
		switch {
		case !bar:
			out[i] = cell
		case b.Edge == dock.Right:
			out[i] = cell + st.ActiveBar.Render(marker)
		default:
			out[i] = st.ActiveBar.Render(marker) + cell
		}
	}
	return s.interact(s.place(cols, strings.Join(out, "\n")), b.Tooltip)
}

func (s *surface) Busy() {
	// Park the indicator in the middle of the region.
	for len(s.lines) < s.box.H/2 {
		s.lines = append(s.lines, "")
	}
	view := lipgloss.PlaceHorizontal(s.box.W, lipgloss.Center, s.host.styles.Busy.Render(s.host.busyFrame()))
	s.place(s.box.W, view)
}

// iconArt draws ic into rows lines of cols cells: braille art for custom vector
// icons, the glyph on the middle line for built-in ones.
func iconArt(ic icons.Icon, cols, rows int) []string {
	if ic.Custom && icons.Known(ic.Name) {
		return icons.RenderBraille(ic.Name, cols, rows)
	}
	out := make([]string, rows)
	out[rows/2] = icons.Glyph(ic)
	return out
}

// place puts a widget of the given width at the cursor and returns its box.
func (s *surface) place(width int, view string) layout.Box {
	y := s.box.Y + len(s.lines)
	if s.inRow > 0 {
		b := layout.Box{X: s.box.X + s.rowW, Y: y, W: width, H: 1}
		s.row = append(s.row, view)
		s.rowW += width
		return b
	}
	lines := strings.Split(view, "\n")
	s.lines = append(s.lines, lines...)
	return layout.Box{X: s.box.X, Y: y, W: width, H: len(lines)}
}

func (s *surface) interact(b layout.Box, tooltip string) dock.Interaction {
	b = clip(b, s.box)
	in := dock.Interaction{
		Clicked: s.host.takeClick(b),
		Hovered: s.host.hovered(b),
	}
	if in.Hovered && tooltip != "" {
		s.host.nextTip = tooltip
	}
	return in
}

func (s *surface) render() string {
	if s.inRow > 0 || len(s.row) > 0 {
		s.lines = append(s.lines, strings.Join(s.row, ""))
		s.row = nil
	}
	style := s.host.styles.PanelBody
	if s.filled {
		style = s.host.styles.Strip
	}
	return fit(style, strings.Join(s.lines, "\n"), s.box.W, s.box.H)
}

// clip keeps hit boxes inside the region so widgets cut off by the edge cannot be
// clicked.
func clip(b, to layout.Box) layout.Box {
	x0, y0 := max(b.X, to.X), max(b.Y, to.Y)
	x1, y1 := min(b.X+b.W, to.X+to.W), min(b.Y+b.H, to.Y+to.H)
	if x1 <= x0 || y1 <= y0 {
		return layout.Box{}
	}
	return layout.Box{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}
