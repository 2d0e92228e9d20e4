package dock

import "fmt"

// PanelSide is the screen edge a panel docks to.
type PanelSide int

const (
	Left PanelSide = iota
	Right
	Top
	Bottom
)

// Sides lists every edge in a fixed order.
var Sides = [...]PanelSide{Left, Right, Top, Bottom}

func (s PanelSide) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("side(%d)", int(s))
	}
}

// Vertical reports whether the panel runs along a vertical edge, in which case its
// extent is a width and its collapsed strip stacks buttons top to bottom.
func (s PanelSide) Vertical() bool {
	return s == Left || s == Right
}

// Valid reports whether s is one of the four edges.
func (s PanelSide) Valid() bool {
	return s >= Left && s <= Bottom
}

// ParseSide parses the String form of a side.
func ParseSide(name string) (PanelSide, error) {
	for _, s := range Sides {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown panel side %q", name)
}

// MarshalText lets sides key JSON and YAML maps.
func (s PanelSide) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid panel side %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *PanelSide) UnmarshalText(text []byte) error {
	v, err := ParseSide(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
