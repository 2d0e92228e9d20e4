package dock

// showExpanded draws the optional minimize affordance and hands the rest of the
// body to the container.
func (p *Panel[T]) showExpanded(s Surface, viewer TabViewer[T]) bool {
	minimize := false
	if p.showMinimize {
		minimize = s.SmallButton(p.subID("minimize"), collapseGlyph(p.side), "Collapse panel").Clicked
	}
	if res := p.container.Show(s, p.subID("dock_area"), viewer); res.Minimize {
		minimize = true
	}
	if minimize {
		p.SetCollapsed(true)
	}
	return minimize
}
