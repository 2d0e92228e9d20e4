package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/memory"
)

// PanelConfig configures the panel on one edge. Sizes are in points.
type PanelConfig struct {
	Size         float64 `yaml:"size"`
	MinSize      float64 `yaml:"min_size"`
	MaxSize      float64 `yaml:"max_size"`
	Fixed        bool    `yaml:"fixed"`
	Collapsed    bool    `yaml:"collapsed"`
	ShowMinimize bool    `yaml:"show_minimize"`
}

// Panels holds one PanelConfig per edge.
type Panels struct {
	Left   PanelConfig `yaml:"left"`
	Right  PanelConfig `yaml:"right"`
	Top    PanelConfig `yaml:"top"`
	Bottom PanelConfig `yaml:"bottom"`
}

// For returns the configuration of side.
func (p Panels) For(side dock.PanelSide) PanelConfig {
	switch side {
	case dock.Right:
		return p.Right
	case dock.Top:
		return p.Top
	case dock.Bottom:
		return p.Bottom
	default:
		return p.Left
	}
}

// Config holds the application configuration.
type Config struct {
	Theme         string  `yaml:"theme"`
	Store         string  `yaml:"store"`
	StorePath     string  `yaml:"store_path"`
	PersistPolicy string  `yaml:"persist_policy"`
	CellWidth     float64 `yaml:"cell_width"`
	CellHeight    float64 `yaml:"cell_height"`
	LogFile       string  `yaml:"log_file"`
	Panels        Panels  `yaml:"panels"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Theme:         "catppuccin-mocha",
		Store:         memory.BackendSQLite,
		PersistPolicy: "on_change",
		CellWidth:     8,
		CellHeight:    16,
		Panels: Panels{
			Left:   PanelConfig{Size: 300, MinSize: 150},
			Right:  PanelConfig{Size: 320, MinSize: 150, ShowMinimize: true},
			Top:    PanelConfig{Size: 128, MinSize: 64, Collapsed: true},
			Bottom: PanelConfig{Size: 160, MinSize: 96},
		},
	}
}

// StoreFile returns where the configured store keeps its data. The in-memory
// store has no file.
func (c Config) StoreFile() string {
	if c.StorePath != "" || c.Store == memory.BackendMemory {
		return c.StorePath
	}
	name := "state.db"
	if c.Store == memory.BackendFile {
		name = "state.yaml"
	}
	return filepath.Join(DataDir(), name)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Store {
	case memory.BackendMemory, memory.BackendSQLite, memory.BackendFile:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	if _, err := dock.ParsePersistPolicy(c.PersistPolicy); err != nil {
		return err
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("cell size must be positive, got %vx%v", c.CellWidth, c.CellHeight)
	}
	for _, side := range dock.Sides {
		p := c.Panels.For(side)
		if p.MaxSize > 0 && p.MaxSize < p.MinSize {
			return fmt.Errorf("panels.%s: max_size %v below min_size %v", side, p.MaxSize, p.MinSize)
		}
	}
	return nil
}

// DataDir is where persistent state lives by default.
func DataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "dockfold")
}
