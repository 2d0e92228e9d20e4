package dock

import (
	"math"
	"time"

	"github.com/sadopc/dockfold/internal/anim"
)

// AnimationTime is how long a collapse or expand transition takes.
const AnimationTime = 200 * time.Millisecond

// Collapsed strip geometry. The strip is exactly one icon button plus padding wide.
const (
	IconSize        = 14.0
	IconPadding     = 6.0
	CollapsedExtent = IconSize + 2*IconPadding
	StripButtonSize = IconSize + IconPadding
	RowButtonSize   = IconSize + 4
	StripSpacing    = 2.0
)

// Size sanity and reconciliation thresholds.
const (
	// MinPlausibleSize is the floor below which a stored expanded size is treated
	// as stale or corrupt.
	MinPlausibleSize = 100.0
	// ResizeHysteresis is how far the realized extent must drift from the stored
	// size before it is taken as a user resize.
	ResizeHysteresis = 5.0
)

// Progress thresholds.
const (
	fullyCollapsed = 0.01
	fullyExpanded  = 0.99
	stripBelow     = 0.3
	contentAbove   = 0.7
)

var inf = math.Inf(1)

// FallbackSize is the size substituted for an implausible stored size.
func FallbackSize(minSize float64) float64 {
	return math.Max(minSize*2, DefaultSize)
}

// ValidSize returns size, or the fallback when size is below MinPlausibleSize. The
// second result reports whether a substitution happened.
func ValidSize(size, minSize float64) (float64, bool) {
	if size < MinPlausibleSize {
		return FallbackSize(minSize), true
	}
	return size, false
}

// InterpolateExtent returns the extent to draw at animation progress a, between the
// collapsed strip and the saved expanded size.
func InterpolateExtent(a, collapsed, saved float64) float64 {
	switch {
	case a < fullyCollapsed:
		return collapsed
	case a > fullyExpanded:
		return saved
	default:
		return anim.Lerp(collapsed, saved, anim.EaseInOutCubic(a))
	}
}

// CanResize reports whether the user may drag the region edge: only once fully
// expanded, so the resize handle never fights the animation.
func CanResize(a float64, resizable, collapsed bool) bool {
	return a > fullyExpanded && resizable && !collapsed
}

// Content says what a region body shows at a given progress.
type Content int

const (
	ContentStrip Content = iota
	ContentBusy
	ContentDock
)

func (c Content) String() string {
	switch c {
	case ContentStrip:
		return "strip"
	case ContentBusy:
		return "busy"
	case ContentDock:
		return "dock"
	default:
		return "unknown"
	}
}

// ContentAt picks the body for progress a. The middle of the transition shows a
// busy indicator instead of half-sized content.
func ContentAt(a float64) Content {
	switch {
	case a < stripBelow:
		return ContentStrip
	case a > contentAbove:
		return ContentDock
	default:
		return ContentBusy
	}
}

// Phase is the panel's place in its collapse/expand cycle.
type Phase int

const (
	Collapsed Phase = iota
	Expanding
	Collapsing
	Expanded
)

func (p Phase) String() string {
	switch p {
	case Collapsed:
		return "collapsed"
	case Expanding:
		return "expanding"
	case Collapsing:
		return "collapsing"
	case Expanded:
		return "expanded"
	default:
		return "unknown"
	}
}

// PhaseAt classifies progress a heading to target (0 or 1).
func PhaseAt(a, target float64) Phase {
	if target > 0.5 {
		if a > fullyExpanded {
			return Expanded
		}
		return Expanding
	}
	if a < fullyCollapsed {
		return Collapsed
	}
	return Collapsing
}
