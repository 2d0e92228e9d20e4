package dock

import (
	"log/slog"

	"github.com/sadopc/dockfold/internal/memory"
)

// StateVersion tags persisted state. Payloads with any other version are discarded
// on load, which keeps widths written by older layouts (some persisted the collapsed
// strip width instead of the expanded one) from leaking into new sessions.
const StateVersion = 2

// Panel size defaults.
const (
	DefaultSize    = 300.0
	DefaultMinSize = 150.0
)

const stateKeySuffix = "dock_state"

// PanelState is the collapse flag and size negotiation data for one edge.
type PanelState struct {
	Collapsed bool     `json:"collapsed"`
	Size      float64  `json:"size"`
	MinSize   float64  `json:"min_size"`
	MaxSize   *float64 `json:"max_size,omitempty"`
	Resizable bool     `json:"resizable"`
}

// DefaultPanelState returns an expanded, resizable 300-point panel.
func DefaultPanelState() PanelState {
	return PanelState{
		Size:      DefaultSize,
		MinSize:   DefaultMinSize,
		Resizable: true,
	}
}

// Bounds returns the drag-resize bounds. An unset maximum is +Inf.
func (ps PanelState) Bounds() (lo, hi float64) {
	hi = inf
	if ps.MaxSize != nil {
		hi = *ps.MaxSize
	}
	return ps.MinSize, hi
}

// State aggregates the four edges' panel states with the persistence policy.
type State struct {
	Version           int                        `json:"version"`
	Panels            map[PanelSide]*PanelState `json:"panels"`
	AnimationDuration float64                    `json:"animation_duration"`
	PersistState      bool                       `json:"persist_state"`

	log *slog.Logger
}

// NewState returns a state with all four edges at their defaults.
func NewState() State {
	s := State{
		Version:           StateVersion,
		Panels:            make(map[PanelSide]*PanelState, len(Sides)),
		AnimationDuration: AnimationTime.Seconds(),
		PersistState:      true,
	}
	for _, side := range Sides {
		ps := DefaultPanelState()
		s.Panels[side] = &ps
	}
	return s
}

// WithLogger returns a copy of s that reports diagnostics to l.
func (s State) WithLogger(l *slog.Logger) State {
	s.log = l
	return s
}

func (s State) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return slog.Default()
}

func (s State) entry(side PanelSide) *PanelState {
	ps := s.Panels[side]
	if ps == nil {
		s.logger().Warn("dock state has no entry for side", "side", side)
	}
	return ps
}

// Panel returns a copy of side's state, or the default when the entry is missing.
func (s State) Panel(side PanelSide) PanelState {
	if ps := s.entry(side); ps != nil {
		return *ps
	}
	return DefaultPanelState()
}

// IsPanelCollapsed reports whether side is collapsed.
func (s State) IsPanelCollapsed(side PanelSide) bool {
	if ps := s.entry(side); ps != nil {
		return ps.Collapsed
	}
	return false
}

// SetPanelCollapsed sets side's collapse flag.
func (s *State) SetPanelCollapsed(side PanelSide, collapsed bool) {
	if ps := s.entry(side); ps != nil {
		ps.Collapsed = collapsed
	}
}

// TogglePanel flips side's collapse flag.
func (s *State) TogglePanel(side PanelSide) {
	if ps := s.entry(side); ps != nil {
		ps.Collapsed = !ps.Collapsed
	}
}

// SetPanelSize stores size for side, clamped to the maximum when one is set. There is
// no lower clamp: a width dragged below the nominal minimum is kept as is.
func (s *State) SetPanelSize(side PanelSide, size float64) {
	ps := s.entry(side)
	if ps == nil {
		return
	}
	if ps.MaxSize != nil && size > *ps.MaxSize {
		size = *ps.MaxSize
	}
	ps.Size = size
}

// PanelSize returns side's stored size.
func (s State) PanelSize(side PanelSide) float64 {
	if ps := s.entry(side); ps != nil {
		return ps.Size
	}
	return DefaultSize
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := s
	out.Panels = make(map[PanelSide]*PanelState, len(s.Panels))
	for side, ps := range s.Panels {
		if ps == nil {
			continue
		}
		cp := *ps
		if ps.MaxSize != nil {
			m := *ps.MaxSize
			cp.MaxSize = &m
		}
		out.Panels[side] = &cp
	}
	return out
}

// StateKey returns the store key state for id lives under.
func StateKey(id string) string {
	return id + "/" + stateKeySuffix
}

// Save writes the whole aggregate to store under id. It does nothing when
// persistence is disabled. Store failures are logged, never returned.
func (s *State) Save(store memory.Store, id string) {
	if !s.PersistState || store == nil {
		return
	}
	if err := memory.PutJSON(store, StateKey(id), s); err != nil {
		s.logger().Warn("saving dock state failed", "id", id, "err", err)
	}
}

// LoadState reads the aggregate stored under id. It reports false, with a default
// state, when nothing usable is stored.
func LoadState(store memory.Store, id string, log *slog.Logger) (State, bool) {
	def := NewState().WithLogger(log)
	if store == nil {
		return def, false
	}

	var loaded State
	ok, err := memory.GetJSON(store, StateKey(id), &loaded)
	if err != nil {
		def.logger().Warn("loading dock state failed, using defaults", "id", id, "err", err)
		return def, false
	}
	if !ok {
		return def, false
	}
	if loaded.Version != StateVersion {
		def.logger().Warn("discarding dock state with unknown version",
			"id", id, "version", loaded.Version, "want", StateVersion)
		return def, false
	}

	loaded.log = log
	if loaded.Panels == nil {
		loaded.Panels = make(map[PanelSide]*PanelState, len(Sides))
	}
	for _, side := range Sides {
		if loaded.Panels[side] == nil {
			loaded.logger().Warn("dock state missing side, using default", "id", id, "side", side)
			ps := DefaultPanelState()
			loaded.Panels[side] = &ps
		}
	}
	return loaded, true
}
