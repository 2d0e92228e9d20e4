package dock

import (
	"strconv"

	"github.com/sadopc/dockfold/internal/dock/icons"
)

// showStrip draws the collapsed icon strip: a column of buttons on left and right
// edges, a row led by an expand affordance on top and bottom edges. Clicking any
// of it expands the panel.
func (p *Panel[T]) showStrip(s Surface) bool {
	s.FillBackground()

	clicked := -1
	expand := false
	draw := func(s Surface) {
		size := Size{StripButtonSize, StripButtonSize}
		if !p.side.Vertical() {
			if s.SmallButton(p.subID("expand"), expandGlyph(p.side), "Expand panel").Clicked {
				expand = true
			}
			size = Size{RowButtonSize, RowButtonSize}
		}
		for i, b := range p.buttons {
			in := s.IconButton(IconButton{
				ID:       p.subID("button_" + strconv.Itoa(i)),
				Icon:     icons.Resolve(b.Text(), b.Icon()),
				Size:     size,
				Tooltip:  b.HoverText(),
				Active:   !p.IsCollapsed() && p.active == i,
				Selected: b.IsSelected(),
				Edge:     p.side,
			})
			if in.Clicked && clicked < 0 {
				clicked = i
			}
		}
	}
	if p.side.Vertical() {
		draw(s)
	} else {
		s.Row(draw)
	}

	switch {
	case clicked >= 0:
		p.SetCollapsed(false)
		p.SetActiveButton(clicked)
		return true
	case expand:
		p.SetCollapsed(false)
		return true
	}
	return false
}

// expandGlyph points away from the edge the panel is docked to.
func expandGlyph(side PanelSide) string {
	switch side {
	case Left:
		return "»"
	case Right:
		return "«"
	case Top:
		return "▾"
	default:
		return "▴"
	}
}

// collapseGlyph points toward the edge.
func collapseGlyph(side PanelSide) string {
	switch side {
	case Left:
		return "«"
	case Right:
		return "»"
	case Top:
		return "▴"
	default:
		return "▾"
	}
}
