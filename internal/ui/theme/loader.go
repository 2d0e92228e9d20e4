package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a theme.
type yamlTheme struct {
	Name    string `yaml:"name"`
	Syntax  string `yaml:"syntax"`
	Base    string `yaml:"base"`
	Mantle  string `yaml:"mantle"`
	Crust   string `yaml:"crust"`
	Surface string `yaml:"surface"`
	Overlay string `yaml:"overlay"`

	Text    string `yaml:"text"`
	Subtext string `yaml:"subtext"`
	Muted   string `yaml:"muted"`

	Accent string `yaml:"accent"`
	Blue   string `yaml:"blue"`
	Green  string `yaml:"green"`
	Yellow string `yaml:"yellow"`
	Peach  string `yaml:"peach"`
	Red    string `yaml:"red"`

	Separator     string `yaml:"separator"`
	SeparatorDrag string `yaml:"separator_drag"`
	Indicator     string `yaml:"indicator"`
}

// LoadCustomTheme loads a theme from a YAML file. Colors left out are taken from
// the default theme.
func LoadCustomTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	t := Default()
	t.Name = yt.Name
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	if yt.Syntax != "" {
		t.Syntax = yt.Syntax
	}
	set(&t.Base, yt.Base)
	set(&t.Mantle, yt.Mantle)
	set(&t.Crust, yt.Crust)
	set(&t.Surface, yt.Surface)
	set(&t.Overlay, yt.Overlay)
	set(&t.Text, yt.Text)
	set(&t.Subtext, yt.Subtext)
	set(&t.Muted, yt.Muted)
	set(&t.Accent, yt.Accent)
	set(&t.Blue, yt.Blue)
	set(&t.Green, yt.Green)
	set(&t.Yellow, yt.Yellow)
	set(&t.Peach, yt.Peach)
	set(&t.Red, yt.Red)
	set(&t.Separator, yt.Separator)
	set(&t.SeparatorDrag, yt.SeparatorDrag)
	set(&t.Indicator, yt.Indicator)
	return t, nil
}

// LoadCustomThemes loads all YAML themes from a directory.
func LoadCustomThemes(dir string) map[string]Theme {
	themes := make(map[string]Theme)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return themes
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadCustomTheme(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		themes[normalizeKey(t.Name)] = t
	}
	return themes
}
