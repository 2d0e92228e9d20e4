// Package anim provides keyed, time-driven value animation for redraw-every-frame UIs.
//
// An Animator is queried once per frame with the value a track should settle on. The
// first query for an id snaps to the target; later target changes start a linear
// transition from wherever the track currently is, so reversing mid-flight never jumps.
package anim

import "time"

type track struct {
	from   float64
	to     float64
	toggle time.Time
	dur    time.Duration
}

// Animator holds animation tracks keyed by opaque ids.
type Animator struct {
	tracks map[string]*track
}

// New creates an empty animator.
func New() *Animator {
	return &Animator{tracks: make(map[string]*track)}
}

// Value returns the current value of the track id at time now, retargeting it to
// target when the target changed since the previous query.
func (a *Animator) Value(id string, target float64, dur time.Duration, now time.Time) float64 {
	tr, ok := a.tracks[id]
	if !ok {
		a.tracks[id] = &track{from: target, to: target, dur: dur}
		return target
	}

	current := tr.at(now)
	if tr.to != target {
		tr.from = current
		tr.to = target
		tr.toggle = now
		tr.dur = dur
	}
	if dur <= 0 {
		tr.from = target
		tr.to = target
	}
	return current
}

// Active reports whether any track is still moving at time now.
func (a *Animator) Active(now time.Time) bool {
	for _, tr := range a.tracks {
		if tr.at(now) != tr.to {
			return true
		}
	}
	return false
}

// Forget drops the track for id.
func (a *Animator) Forget(id string) {
	delete(a.tracks, id)
}

func (tr *track) at(now time.Time) float64 {
	if tr.dur <= 0 || tr.from == tr.to {
		return tr.to
	}
	elapsed := now.Sub(tr.toggle)
	if elapsed <= 0 {
		return tr.from
	}
	if elapsed >= tr.dur {
		return tr.to
	}
	t := float64(elapsed) / float64(tr.dur)
	return tr.from + (tr.to-tr.from)*t
}
