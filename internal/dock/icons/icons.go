// Package icons resolves collapsed-strip icons and draws the custom vector set.
//
// Two families exist. Built-in icons are keyed by a button's label and rendered as a
// single glyph. Custom icons are referenced by a tagged string ("svg:SceneTree") and
// drawn from line, rect, circle and polygon primitives through a Painter, so the same
// composition can be rasterized for a terminal or exported as SVG.
package icons

import "strings"

// CustomPrefix marks an icon tag as a custom vector icon reference.
const CustomPrefix = "svg:"

// Built-in icon names.
const (
	Magnifier = "magnifier"
	Folder    = "folder"
	Warning   = "warning"
	Clock     = "clock"
	Gear      = "gear"
	Tree      = "tree"
	List      = "list"
	Terminal  = "terminal"
	Dot       = "dot"
)

// Icon is a resolved icon reference.
type Icon struct {
	Name   string
	Custom bool
}

var byLabel = map[string]string{
	"Search":      Magnifier,
	"Files":       Folder,
	"Diagnostics": Warning,
	"History":     Clock,
	"Settings":    Gear,
	"SceneTree":   Tree,
	"Properties":  List,
	"Console":     Terminal,
}

var glyphs = map[string]string{
	Magnifier: "⌕",
	Folder:    "▤",
	Warning:   "⚠",
	Clock:     "◷",
	Gear:      "⚙",
	Tree:      "⊢",
	List:      "☰",
	Terminal:  "❯",
	Dot:       "●",
}

// Resolve picks the icon for a button labelled label carrying icon tag tag.
func Resolve(label, tag string) Icon {
	if name, ok := strings.CutPrefix(tag, CustomPrefix); ok {
		return Icon{Name: name, Custom: true}
	}
	if name, ok := byLabel[label]; ok {
		return Icon{Name: name}
	}
	return Icon{Name: Dot}
}

// Glyph returns the single-cell glyph for a built-in icon. Custom icons and unknown
// names get the dot.
func Glyph(ic Icon) string {
	if !ic.Custom {
		if g, ok := glyphs[ic.Name]; ok {
			return g
		}
	}
	return glyphs[Dot]
}
