package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/tidwall/pretty"

	"github.com/sadopc/dockfold/internal/app"
	"github.com/sadopc/dockfold/internal/config"
	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/memory"
)

func stateCmd() {
	fs := flag.NewFlagSet("state", flag.ExitOnError)
	storeFlag := fs.String("store", "", "State store: memory, sqlite or file")
	storePathFlag := fs.String("store-path", "", "Where the store keeps its data")
	jsonFlag := fs.Bool("json", false, "Print stored values as JSON (show)")
	prefixFlag := fs.String("prefix", app.IDPrefix, "Only keys starting with prefix")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dockfold state <show|reset> [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Inspect or clear the persisted panel layout.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dockfold state show\n")
		fmt.Fprintf(os.Stderr, "  dockfold state show --json\n")
		fmt.Fprintf(os.Stderr, "  dockfold state reset --store file\n")
	}

	if len(os.Args) < 3 {
		fs.Usage()
		os.Exit(2)
	}
	action := os.Args[2]
	if err := fs.Parse(os.Args[3:]); err != nil {
		os.Exit(2)
	}

	cfg := config.Load()
	applyStoreFlags(&cfg, *storeFlag, *storePathFlag)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid config: %v\n", err)
		os.Exit(2)
	}
	store, closer, err := openStore(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening state store: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	switch action {
	case "show":
		err = showState(os.Stdout, store, *prefixFlag, *jsonFlag, time.Now())
	case "reset":
		var n int
		n, err = resetState(store, *prefixFlag)
		if err == nil {
			fmt.Printf("Removed %d keys from %s store\n", n, cfg.Store)
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown action %q (use show or reset)\n\n", action)
		fs.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func browserOf(store memory.Store) (memory.Browser, error) {
	b, ok := store.(memory.Browser)
	if !ok {
		return nil, errors.New("store cannot list keys")
	}
	return b, nil
}

// showState prints one line per stored key followed by a summary of every panel
// state found. With asJSON the raw values are printed instead.
func showState(w io.Writer, store memory.Store, prefix string, asJSON bool, now time.Time) error {
	b, err := browserOf(store)
	if err != nil {
		return err
	}
	entries, err := b.List(prefix)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "No stored layout.")
		return nil
	}

	if asJSON {
		for _, e := range entries {
			fmt.Fprintf(w, "# %s\n%s", e.Key, pretty.Pretty(e.Value))
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "KEY\tSIZE\tUPDATED\tSESSION")
	for _, e := range entries {
		session := e.Session
		if len(session) > 8 {
			session = session[:8]
		}
		if session == "" {
			session = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Key, humanize.Bytes(uint64(len(e.Value))),
			humanize.RelTime(e.UpdatedAt, now, "ago", "from now"), session)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	quiet := slog.New(slog.NewTextHandler(io.Discard, nil))
	for _, e := range entries {
		id, ok := strings.CutSuffix(e.Key, dock.StateKey(""))
		if !ok {
			continue
		}
		st, ok := dock.LoadState(store, id, quiet)
		if !ok {
			fmt.Fprintf(w, "\n%s: unreadable or outdated\n", id)
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", id)
		for _, side := range dock.Sides {
			ps := st.Panel(side)
			status := "expanded"
			if ps.Collapsed {
				status = "collapsed"
			}
			fmt.Fprintf(w, "  %-7s %-9s %.0f\n", side, status, ps.Size)
		}
	}
	return nil
}

// resetState deletes every key under prefix and returns how many were removed.
func resetState(store memory.Store, prefix string) (int, error) {
	b, err := browserOf(store)
	if err != nil {
		return 0, err
	}
	entries, err := b.List(prefix)
	if err != nil {
		return 0, err
	}
	for i, e := range entries {
		if err := b.Delete(e.Key); err != nil {
			return i, fmt.Errorf("deleting %s: %w", e.Key, err)
		}
	}
	return len(entries), nil
}
