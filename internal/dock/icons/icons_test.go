package icons

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"unicode/utf8"
)

type op struct {
	kind string
	n    int
}

// recorder counts primitives by kind.
type recorder struct {
	ops []op
}

func (r *recorder) add(kind string, n int) { r.ops = append(r.ops, op{kind, n}) }

func (r *recorder) Line(a, b Point, width float64, c color.Color)            { r.add("line", 2) }
func (r *recorder) FillRect(rc Rect, radius float64, c color.Color)         { r.add("fillrect", 1) }
func (r *recorder) StrokeRect(rc Rect, radius, width float64, c color.Color) { r.add("strokerect", 1) }
func (r *recorder) FillCircle(center Point, radius float64, c color.Color)  { r.add("fillcircle", 1) }
func (r *recorder) StrokeCircle(center Point, radius, width float64, c color.Color) {
	r.add("strokecircle", 1)
}
func (r *recorder) FillPolygon(pts []Point, c color.Color) { r.add("polygon", len(pts)) }

func (r *recorder) count(kind string) int {
	n := 0
	for _, o := range r.ops {
		if o.kind == kind {
			n++
		}
	}
	return n
}

func TestResolve(t *testing.T) {
	tests := []struct {
		label, tag string
		want       Icon
	}{
		{"Search", "", Icon{Name: Magnifier}},
		{"Files", "", Icon{Name: Folder}},
		{"Diagnostics", "", Icon{Name: Warning}},
		{"History", "", Icon{Name: Clock}},
		{"Settings", "", Icon{Name: Gear}},
		{"Unknown", "", Icon{Name: Dot}},
		{"Files", "📁", Icon{Name: Folder}},
		{"Anything", "svg:SceneTree", Icon{Name: "SceneTree", Custom: true}},
		{"Anything", "svg:Nope", Icon{Name: "Nope", Custom: true}},
	}
	for _, tt := range tests {
		if got := Resolve(tt.label, tt.tag); got != tt.want {
			t.Errorf("Resolve(%q, %q) = %+v, want %+v", tt.label, tt.tag, got, tt.want)
		}
	}
}

func TestGlyph(t *testing.T) {
	if Glyph(Icon{Name: Magnifier}) != "⌕" {
		t.Fatalf("magnifier glyph = %q", Glyph(Icon{Name: Magnifier}))
	}
	if Glyph(Icon{Name: "SceneTree", Custom: true}) != Glyph(Icon{Name: Dot}) {
		t.Fatal("custom icons should fall back to the dot glyph")
	}
	for name := range glyphs {
		if utf8.RuneCountInString(Glyph(Icon{Name: name})) != 1 {
			t.Fatalf("glyph for %s is not a single rune", name)
		}
	}
}

func TestDrawSceneTree(t *testing.T) {
	var r recorder
	if !Draw(&r, "SceneTree", Rect{0, 0, 14, 14}, color.White) {
		t.Fatal("SceneTree should be known")
	}
	// One trunk plus three branches, each ending in a filled node.
	if got := r.count("line"); got != 4 {
		t.Fatalf("SceneTree lines = %d, want 4", got)
	}
	if got := r.count("fillrect"); got != 3 {
		t.Fatalf("SceneTree nodes = %d, want 3", got)
	}
}

func TestDrawSettingsTeeth(t *testing.T) {
	var r recorder
	Draw(&r, "Settings", Rect{0, 0, 20, 20}, color.White)
	if got := r.count("line"); got != 8 {
		t.Fatalf("Settings teeth = %d, want 8", got)
	}
	if r.count("strokecircle") != 1 || r.count("fillcircle") != 1 {
		t.Fatal("Settings should draw a filled and stroked hub")
	}
}

func TestDrawUnknownFallsBackToCircle(t *testing.T) {
	var r recorder
	if Draw(&r, "Nope", Rect{0, 0, 14, 14}, color.White) {
		t.Fatal("unknown icon should report false")
	}
	if len(r.ops) != 1 || r.ops[0].kind != "fillcircle" {
		t.Fatalf("unknown icon ops = %+v, want one filled circle", r.ops)
	}
}

func TestAllCustomIconsDraw(t *testing.T) {
	for _, name := range Names() {
		var r recorder
		if !Draw(&r, name, Rect{0, 0, 14, 14}, color.White) {
			t.Errorf("%s: Draw reported unknown", name)
		}
		if len(r.ops) == 0 {
			t.Errorf("%s: no primitives drawn", name)
		}
		if !Known(name) {
			t.Errorf("%s: Known() = false", name)
		}
	}
}

func TestRenderBraille(t *testing.T) {
	lines := RenderBraille("Close", 2, 1)
	if len(lines) != 1 {
		t.Fatalf("rows = %d, want 1", len(lines))
	}
	if utf8.RuneCountInString(lines[0]) != 2 {
		t.Fatalf("cols = %d, want 2", utf8.RuneCountInString(lines[0]))
	}
	if strings.Trim(lines[0], "⠀") == "" {
		t.Fatal("Close icon rendered no dots")
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if !WriteSVG(&buf, "Console", 24, color.Black) {
		t.Fatal("Console should be known")
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatalf("not an SVG document: %s", out)
	}
	if !strings.Contains(out, "<polygon") {
		t.Fatal("Console prompt should be a polygon")
	}
}
