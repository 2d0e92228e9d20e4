package dock

// Button describes one icon shown in a panel's collapsed strip. Buttons are immutable
// once built.
type Button struct {
	text     string
	icon     string
	tooltip  string
	selected bool
}

// ButtonOption configures a Button.
type ButtonOption func(*Button)

// WithIcon sets the icon tag. A tag of the form "svg:<Name>" selects a custom vector
// icon; anything else falls back to the icon keyed by the button text.
func WithIcon(icon string) ButtonOption {
	return func(b *Button) { b.icon = icon }
}

// WithTooltip sets the hover text.
func WithTooltip(tooltip string) ButtonOption {
	return func(b *Button) { b.tooltip = tooltip }
}

// Selected marks the button as selected.
func Selected(selected bool) ButtonOption {
	return func(b *Button) { b.selected = selected }
}

// NewButton builds a button labelled text.
func NewButton(text string, opts ...ButtonOption) Button {
	b := Button{text: text}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b Button) Text() string     { return b.text }
func (b Button) Icon() string     { return b.icon }
func (b Button) Tooltip() string  { return b.tooltip }
func (b Button) IsSelected() bool { return b.selected }

// HoverText is the tooltip, or the label when no tooltip was given.
func (b Button) HoverText() string {
	if b.tooltip != "" {
		return b.tooltip
	}
	return b.text
}
