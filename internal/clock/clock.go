// Package clock abstracts wall time and repeating tick sources so timers can
// be driven deterministically in tests.
package clock

import (
	"sync"
	"time"
)

// Clock provides the current time and repeating tick sources.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

// Ticker is a repeating tick source that can be cancelled.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// RealClock implements Clock using the system time.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

func (RealClock) NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

type realTicker struct {
	t *time.Ticker
}

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

// FakeClock implements Clock with a manually advanced time.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	tickers []*fakeTicker
}

// NewFakeClock creates a new FakeClock with the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *FakeClock) NewTicker(d time.Duration) Ticker {
	c.mu.Lock()
	defer c.mu.Unlock()
	ft := &fakeTicker{
		period: d,
		next:   c.current.Add(d),
		ch:     make(chan time.Time),
		quit:   make(chan struct{}),
	}
	c.tickers = append(c.tickers, ft)
	return ft
}

// Advance moves time forward and fires every live ticker whose deadline
// passed, in deadline order. Each fire blocks until the receiver takes the
// tick or the ticker is stopped.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.current.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due *fakeTicker
		for _, ft := range c.tickers {
			if ft.stopped() {
				continue
			}
			if !ft.next.After(target) && (due == nil || ft.next.Before(due.next)) {
				due = ft
			}
		}
		if due == nil {
			c.current = target
			c.mu.Unlock()
			return
		}
		c.current = due.next
		due.next = due.next.Add(due.period)
		now := c.current
		c.mu.Unlock()
		due.fire(now)
	}
}

// ActiveTickers reports how many tick sources have not been stopped.
func (c *FakeClock) ActiveTickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, ft := range c.tickers {
		if !ft.stopped() {
			n++
		}
	}
	return n
}

type fakeTicker struct {
	period time.Duration
	next   time.Time
	ch     chan time.Time
	quit   chan struct{}
	once   sync.Once
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {
	f.once.Do(func() { close(f.quit) })
}

func (f *fakeTicker) stopped() bool {
	select {
	case <-f.quit:
		return true
	default:
		return false
	}
}

// fire hands the tick to the receiver, giving up if the ticker is stopped
// while waiting.
func (f *fakeTicker) fire(now time.Time) {
	select {
	case f.ch <- now:
	case <-f.quit:
	}
}
