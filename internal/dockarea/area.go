// Package dockarea provides a tab container for dock panels.
//
// An Area keeps an ordered list of tabs and the index of the one in front. It draws a
// header row with one button per tab and renders the front tab through the panel's
// TabViewer. The arrangement is JSON-serializable and can be persisted in the same
// store panels use.
package dockarea

import (
	"log/slog"
	"slices"
	"strconv"

	"github.com/sadopc/dockfold/internal/dock"
	"github.com/sadopc/dockfold/internal/memory"
)

// State is the serializable arrangement of an Area.
type State[T comparable] struct {
	Tabs   []T `json:"tabs"`
	Active int `json:"active"`
}

// Option configures an Area.
type Option func(*options)

type options struct {
	store          memory.Store
	log            *slog.Logger
	closeMinimizes bool
}

// WithStore persists the arrangement in store under the container id.
func WithStore(store memory.Store) Option {
	return func(o *options) { o.store = store }
}

// WithLogger sets the logger for store failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// CloseMinimizes turns every tab close button into a request to collapse the
// owning panel. Tabs are never removed.
func CloseMinimizes() Option {
	return func(o *options) { o.closeMinimizes = true }
}

// Area is a flat tab container. The zero value is not usable; call New.
type Area[T comparable] struct {
	state  State[T]
	opts   options
	loaded bool
}

// New creates an area holding tabs, the first one in front.
func New[T comparable](tabs []T, opts ...Option) *Area[T] {
	o := options{log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Area[T]{
		state: State[T]{Tabs: slices.Clone(tabs)},
		opts:  o,
	}
}

// Tabs returns the tabs in display order.
func (a *Area[T]) Tabs() []T {
	return slices.Clone(a.state.Tabs)
}

// Active returns the tab in front.
func (a *Area[T]) Active() (T, bool) {
	var zero T
	if len(a.state.Tabs) == 0 {
		return zero, false
	}
	return a.state.Tabs[a.state.Active], true
}

// ActiveIndex returns the index of the tab in front.
func (a *Area[T]) ActiveIndex() int {
	return a.state.Active
}

// Focus brings tab i to the front. Out-of-range indexes are ignored.
func (a *Area[T]) Focus(i int) {
	if i >= 0 && i < len(a.state.Tabs) {
		a.state.Active = i
	}
}

// FocusTab brings tab to the front if it is open.
func (a *Area[T]) FocusTab(tab T) bool {
	i := slices.Index(a.state.Tabs, tab)
	a.Focus(i)
	return i >= 0
}

// Add opens tab, or focuses it when it is already open.
func (a *Area[T]) Add(tab T) {
	if a.FocusTab(tab) {
		return
	}
	a.state.Tabs = append(a.state.Tabs, tab)
	a.state.Active = len(a.state.Tabs) - 1
}

// Close removes tab i. The front tab moves left when it was the one closed or sat
// to the right of it.
func (a *Area[T]) Close(i int) bool {
	if i < 0 || i >= len(a.state.Tabs) {
		return false
	}
	a.state.Tabs = slices.Delete(a.state.Tabs, i, i+1)
	if a.state.Active >= i && a.state.Active > 0 {
		a.state.Active--
	}
	return true
}

// Snapshot returns a copy of the arrangement.
func (a *Area[T]) Snapshot() State[T] {
	return State[T]{Tabs: slices.Clone(a.state.Tabs), Active: a.state.Active}
}

// Show implements dock.Container.
func (a *Area[T]) Show(s dock.Surface, id string, viewer dock.TabViewer[T]) dock.ContainerResult {
	if !a.loaded {
		a.load(id)
	}
	var res dock.ContainerResult
	if len(a.state.Tabs) == 0 {
		s.Label("No open tabs")
		return res
	}

	before := a.Snapshot()
	focus, closeAt := -1, -1
	s.Row(func(s dock.Surface) {
		for i, tab := range a.state.Tabs {
			n := strconv.Itoa(i)
			if s.Button(id+"/tab_"+n, viewer.Title(tab), i == a.state.Active).Clicked {
				focus = i
			}
			if viewer.Closable(tab) && s.SmallButton(id+"/close_"+n, "×", "Close tab").Clicked {
				closeAt = i
			}
		}
	})
	a.Focus(focus)

	switch {
	case closeAt < 0:
	case a.opts.closeMinimizes || len(a.state.Tabs) == 1:
		// The last tab stays so the panel has something to show when reopened.
		res.Minimize = true
	default:
		a.Close(closeAt)
	}

	viewer.Render(s, a.state.Tabs[a.state.Active])

	if before.Active != a.state.Active || !slices.Equal(before.Tabs, a.state.Tabs) {
		a.save(id)
	}
	return res
}

func (a *Area[T]) load(id string) {
	a.loaded = true
	if a.opts.store == nil {
		return
	}
	var st State[T]
	ok, err := memory.GetJSON(a.opts.store, id, &st)
	if err != nil {
		a.opts.log.Warn("loading tab arrangement failed", "id", id, "err", err)
		return
	}
	if !ok || len(st.Tabs) == 0 {
		return
	}
	if st.Active < 0 || st.Active >= len(st.Tabs) {
		st.Active = 0
	}
	a.state = st
}

func (a *Area[T]) save(id string) {
	if a.opts.store == nil {
		return
	}
	if err := memory.PutJSON(a.opts.store, id, a.state); err != nil {
		a.opts.log.Warn("saving tab arrangement failed", "id", id, "err", err)
	}
}
