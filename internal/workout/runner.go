package workout

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/akyairhashvil/greenbite/internal/clock"
	"github.com/akyairhashvil/greenbite/internal/config"
)

// Update is a snapshot of the timer after it changed.
type Update struct {
	Exercise  string
	Remaining int
	Display   string
	State     TimerState
}

// Runner drives a Timer from a real (or fake) tick source on its own
// goroutine. Starting a run always tears down the previous tick source first.
// Cancelling the context passed to Start ends the run like Stop.
type Runner struct {
	// OnUpdate receives a snapshot after every applied tick. It runs on the
	// runner goroutine and must not call Start, Stop or Select.
	OnUpdate func(Update)
	// OnExpire is called once when a run reaches zero. Errors are logged and
	// otherwise ignored.
	OnExpire func(exercise string) error

	clock clock.Clock

	opMu   sync.Mutex // serializes Start/Stop
	mu     sync.Mutex // guards timer and the fields below
	timer  Timer
	ticker clock.Ticker
	cancel context.CancelFunc
	done   chan struct{}
}

func NewRunner(c clock.Clock, d time.Duration) *Runner {
	if c == nil {
		c = clock.RealClock{}
	}
	return &Runner{clock: c, timer: NewTimer(d)}
}

// Select changes the current exercise, cancelling any run in progress.
func (r *Runner) Select(name string) {
	r.opMu.Lock()
	defer r.opMu.Unlock()
	r.halt()
	r.mu.Lock()
	r.timer.Select(name)
	r.mu.Unlock()
}

// Start begins a fresh countdown. Any previous run is cancelled before the new
// tick source is created.
func (r *Runner) Start(ctx context.Context) {
	r.opMu.Lock()
	defer r.opMu.Unlock()
	r.halt()

	r.mu.Lock()
	gen := r.timer.Start()
	ticker := r.clock.NewTicker(config.TickInterval)
	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	r.ticker, r.cancel, r.done = ticker, cancel, done
	r.mu.Unlock()

	go r.loop(runCtx, ticker, gen, done)
}

// Stop cancels the current run and resets the display to the full duration.
func (r *Runner) Stop() {
	r.opMu.Lock()
	defer r.opMu.Unlock()
	r.halt()
	r.mu.Lock()
	r.timer.Stop()
	r.mu.Unlock()
}

// Snapshot returns the current timer state.
func (r *Runner) Snapshot() Update {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Runner) snapshotLocked() Update {
	return Update{
		Exercise:  r.timer.Exercise(),
		Remaining: r.timer.Remaining(),
		Display:   r.timer.Display(),
		State:     r.timer.State(),
	}
}

// halt cancels the live tick source and waits for its goroutine to exit.
// Callers hold opMu.
func (r *Runner) halt() {
	r.mu.Lock()
	ticker, cancel, done := r.ticker, r.cancel, r.done
	r.ticker, r.cancel, r.done = nil, nil, nil
	r.mu.Unlock()

	if ticker != nil {
		ticker.Stop()
	}
	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

func (r *Runner) loop(ctx context.Context, ticker clock.Ticker, gen int, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			ticker.Stop()
			r.mu.Lock()
			if r.timer.Generation() == gen && r.timer.State() == TimerRunning {
				r.timer.Stop()
			}
			r.mu.Unlock()
			return
		case <-ticker.C():
			r.mu.Lock()
			expired := r.timer.Tick(gen)
			snap := r.snapshotLocked()
			stale := snap.State != TimerRunning && !expired
			if expired {
				ticker.Stop()
			}
			r.mu.Unlock()

			if stale {
				return
			}
			if r.OnUpdate != nil {
				r.OnUpdate(snap)
			}
			if expired {
				if r.OnExpire != nil {
					if err := r.OnExpire(snap.Exercise); err != nil {
						log.Printf("exercise timer expiry: %v", err)
					}
				}
				return
			}
		}
	}
}
