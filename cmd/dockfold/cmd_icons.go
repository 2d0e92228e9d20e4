package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/sadopc/dockfold/internal/config"
	"github.com/sadopc/dockfold/internal/dock/icons"
	"github.com/sadopc/dockfold/internal/ui/theme"
)

func iconsCmd() {
	fs := flag.NewFlagSet("icons", flag.ExitOnError)
	dirFlag := fs.String("dir", ".", "Output directory (export)")
	sizeFlag := fs.Int("size", 24, "Icon size in pixels (export) or cells (preview)")
	colorFlag := fs.String("color", "", "Icon color as #rrggbb (default: theme text color)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dockfold icons <list|preview|export> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Work with the custom vector icon set.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dockfold icons list\n")
		fmt.Fprintf(os.Stderr, "  dockfold icons preview --size 8\n")
		fmt.Fprintf(os.Stderr, "  dockfold icons export --dir ./icons --size 48\n")
	}

	if len(os.Args) < 3 {
		fs.Usage()
		os.Exit(2)
	}
	action := os.Args[2]
	if err := fs.Parse(os.Args[3:]); err != nil {
		os.Exit(2)
	}

	var err error
	switch action {
	case "list":
		for _, name := range icons.Names() {
			fmt.Println(icons.CustomPrefix + name)
		}
	case "preview":
		previewIcons(os.Stdout, *sizeFlag)
	case "export":
		hex := string(theme.Resolve(config.Load().Theme).Text)
		if *colorFlag != "" {
			hex = *colorFlag
		}
		var c color.Color
		if c, err = parseColor(hex); err != nil {
			break
		}
		var written []string
		written, err = exportIcons(*dirFlag, *sizeFlag, c)
		for _, p := range written {
			fmt.Println(p)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown action %q (use list, preview or export)\n\n", action)
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// previewIcons draws every custom icon as braille art, cols cells wide and half
// as many rows tall.
func previewIcons(w io.Writer, cols int) {
	cols = max(cols, 2)
	rows := max(cols/2, 1)
	for _, name := range icons.Names() {
		fmt.Fprintf(w, "%s\n%s\n\n", name, strings.Join(icons.RenderBraille(name, cols, rows), "\n"))
	}
}

// parseColor reads a #rrggbb color. lipgloss colors resolve through the output's
// color profile and come out black without a TTY, so they are not used here.
func parseColor(hex string) (color.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	return c, nil
}

// exportIcons writes one SVG per custom icon into dir and returns the paths.
func exportIcons(dir string, size int, c color.Color) ([]string, error) {
	if size <= 0 {
		return nil, fmt.Errorf("size must be positive, got %d", size)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	var written []string
	for _, name := range icons.Names() {
		path := filepath.Join(dir, strings.ToLower(name)+".svg")
		f, err := os.Create(path)
		if err != nil {
			return written, err
		}
		icons.WriteSVG(f, name, size, c)
		if err := f.Close(); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
