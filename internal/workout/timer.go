package workout

import (
	"time"

	"github.com/akyairhashvil/greenbite/internal/config"
	"github.com/akyairhashvil/greenbite/internal/util"
)

// TimerState is the lifecycle position of an exercise countdown.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerExpired
)

func (s TimerState) String() string {
	switch s {
	case TimerRunning:
		return "running"
	case TimerExpired:
		return "expired"
	default:
		return "idle"
	}
}

// Timer is the countdown for the selected exercise. Every Start or Stop bumps
// the generation, so ticks scheduled for an earlier run are ignored and at
// most one tick source ever decrements the count.
type Timer struct {
	seconds    int
	remaining  int
	state      TimerState
	generation int
	exercise   string
}

// NewTimer returns an idle timer. Non-positive durations use the default 30s.
func NewTimer(d time.Duration) Timer {
	secs := int(d / time.Second)
	if secs <= 0 {
		secs = config.DefaultExerciseSeconds
	}
	return Timer{seconds: secs, remaining: secs}
}

// Select makes name the current exercise and resets to idle.
func (t *Timer) Select(name string) {
	t.exercise = name
	t.Stop()
}

// Start cancels any running countdown, resets the count and begins a new run.
// It returns the generation that ticks for this run must carry.
func (t *Timer) Start() int {
	t.generation++
	t.remaining = t.seconds
	t.state = TimerRunning
	return t.generation
}

// Stop cancels any pending tick and returns to idle with a full count.
func (t *Timer) Stop() {
	t.generation++
	t.remaining = t.seconds
	t.state = TimerIdle
}

// Tick applies one second of a run. Ticks from a stale generation or while
// not running are ignored. It reports true exactly once per run, on the tick
// that reaches zero.
func (t *Timer) Tick(generation int) bool {
	if generation != t.generation || t.state != TimerRunning {
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.state = TimerExpired
	t.generation++
	return true
}

func (t Timer) State() TimerState { return t.state }
func (t Timer) Remaining() int    { return t.remaining }
func (t Timer) Generation() int   { return t.generation }
func (t Timer) Exercise() string  { return t.exercise }
func (t Timer) Duration() int     { return t.seconds }
func (t Timer) Running() bool     { return t.state == TimerRunning }

// Display renders the remaining time as MM:SS.
func (t Timer) Display() string {
	return util.FormatClock(t.remaining)
}
