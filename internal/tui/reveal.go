// apps/go-term/internal/tui/reveal.go
//
// Tile reveal as data. RevealSteps turns a verdict into timed steps; the
// event loop replays them on its frame ticker. The game core never waits.

package tui

import (
	"cmp"
	"slices"
	"time"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
)

const (
	flipStagger   = 250 * time.Millisecond
	paintDelay    = 250 * time.Millisecond
	bounceStagger = 100 * time.Millisecond
	bounceHold    = 100 * time.Millisecond
)

// StepKind is what happens to a tile at a step.
type StepKind int

const (
	StepFlip StepKind = iota
	StepPaint
	StepBounce
)

func (k StepKind) String() string {
	switch k {
	case StepFlip:
		return "flip"
	case StepPaint:
		return "paint"
	case StepBounce:
		return "bounce"
	}
	return "unknown"
}

// Step is one timed change to one tile of the revealed row.
type Step struct {
	At   time.Duration // offset from the start of the reveal
	Kind StepKind
	Col  int
	Mark game.Mark
}

// RevealSteps lists the steps for a verdict, ordered by At. Tile i flips at
// i*250ms and takes its color 250ms later; a winning row then bounces left
// to right, 100ms apart, once every tile is painted.
func RevealSteps(v game.Verdict, won bool) []Step {
	n := len(v)
	steps := make([]Step, 0, 3*n)
	for i, m := range v {
		at := time.Duration(i) * flipStagger
		steps = append(steps,
			Step{At: at, Kind: StepFlip, Col: i, Mark: m},
			Step{At: at + paintDelay, Kind: StepPaint, Col: i, Mark: m},
		)
	}
	if won {
		base := time.Duration(n)*flipStagger + paintDelay
		for i, m := range v {
			steps = append(steps, Step{At: base + time.Duration(i)*bounceStagger, Kind: StepBounce, Col: i, Mark: m})
		}
	}
	slices.SortStableFunc(steps, func(a, b Step) int { return cmp.Compare(a.At, b.At) })
	return steps
}

// RevealDuration is how long the steps take to play out.
func RevealDuration(steps []Step) time.Duration {
	if len(steps) == 0 {
		return 0
	}
	last := steps[len(steps)-1]
	if last.Kind == StepBounce {
		return last.At + bounceHold
	}
	return last.At
}

type tilePhase int

const (
	tileHidden tilePhase = iota // letter shown, color withheld
	tileFlipping
	tilePainted
)

// reveal replays steps against the wall clock.
type reveal struct {
	row    int
	start  time.Time
	steps  []Step
	next   int
	phase  []tilePhase
	bounce []time.Duration // start of each tile's bounce, -1 if none
	end    time.Duration
}

func newReveal(row int, v game.Verdict, won bool, start time.Time) *reveal {
	r := &reveal{
		row:    row,
		start:  start,
		steps:  RevealSteps(v, won),
		phase:  make([]tilePhase, len(v)),
		bounce: make([]time.Duration, len(v)),
	}
	for i := range r.bounce {
		r.bounce[i] = -1
	}
	r.end = RevealDuration(r.steps)
	return r
}

// advance applies every step due at now and reports whether the reveal has
// finished.
func (r *reveal) advance(now time.Time) bool {
	el := now.Sub(r.start)
	for r.next < len(r.steps) && r.steps[r.next].At <= el {
		st := r.steps[r.next]
		switch st.Kind {
		case StepFlip:
			r.phase[st.Col] = tileFlipping
		case StepPaint:
			r.phase[st.Col] = tilePainted
		case StepBounce:
			r.bounce[st.Col] = st.At
		}
		r.next++
	}
	return r.next == len(r.steps) && el >= r.end
}

// bouncing reports whether col is lifted at now.
func (r *reveal) bouncing(col int, now time.Time) bool {
	at := r.bounce[col]
	if at < 0 {
		return false
	}
	el := now.Sub(r.start)
	return el >= at && el < at+bounceHold
}
