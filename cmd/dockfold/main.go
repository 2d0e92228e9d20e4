package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/dockfold/internal/app"
	"github.com/sadopc/dockfold/internal/config"
	"github.com/sadopc/dockfold/internal/memory"
)

// Set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "state":
			stateCmd()
			return
		case "icons":
			iconsCmd()
			return
		case "completion":
			completionCmd()
			return
		case "version":
			printVersion()
			return
		case "help":
			printHelp()
			return
		}
	}
	tuiCmd()
}

func printVersion() {
	fmt.Printf("dockfold %s (%s) built %s\n", version, commit, date)
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `dockfold - collapsible docked panels in the terminal

Usage:
  dockfold [flags]                    Launch TUI (interactive mode)
  dockfold <command> [args] [flags]   Run a subcommand

Commands:
  state     Show or reset the persisted panel layout
  icons     List, preview or export the vector icon set
  completion  Generate shell completion scripts (bash, zsh, fish)
  version   Print version information
  help      Show this help message

TUI Flags:
  --store <backend>    State store: memory, sqlite or file
  --store-path <path>  Where the store keeps its data
  --theme <name>       Color theme
  --log <path>         Write a debug log to path
  --version            Print version and exit

Run 'dockfold <command> --help' for more information about a command.
`)
}

func tuiCmd() {
	versionFlag := flag.Bool("version", false, "Print version and exit")
	storeFlag := flag.String("store", "", "State store: memory, sqlite or file")
	storePathFlag := flag.String("store-path", "", "Where the store keeps its data")
	themeFlag := flag.String("theme", "", "Color theme")
	logFlag := flag.String("log", "", "Write a debug log to path")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	cfg := config.Load()
	applyStoreFlags(&cfg, *storeFlag, *storePathFlag)
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}
	if *logFlag != "" {
		cfg.LogFile = *logFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(2)
	}

	// The TUI owns stdout, so logs go to a file or nowhere.
	logOut := io.Discard
	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "dockfold")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)

	store, closer, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening state store: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	model, err := app.New(cfg, store, app.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// applyStoreFlags overrides the configured store with command-line values.
func applyStoreFlags(cfg *config.Config, store, path string) {
	if store != "" {
		cfg.Store = store
	}
	if path != "" {
		cfg.StorePath = path
	}
}

// openStore opens the configured store, creating its directory if needed.
func openStore(cfg config.Config) (memory.Store, io.Closer, error) {
	path := cfg.StoreFile()
	if path != "" && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("creating data directory: %w", err)
		}
	}
	return memory.Open(cfg.Store, path)
}
