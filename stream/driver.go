package stream

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phanxgames/tempo"
)

// ErrDriverStopped is returned by Do once Run has returned.
var ErrDriverStopped = errors.New("stream: driver stopped")

// Driver owns a root timeline and advances it on a fixed tick from a single
// goroutine. Other goroutines reach the tree only through Do, which runs
// commands on the driver goroutine between ticks.
type Driver struct {
	root     *tempo.Timeline
	interval time.Duration
	cmds     chan command
	stopped  chan struct{}
	logger   *slog.Logger
}

type command struct {
	fn   func(*tempo.Timeline)
	done chan error
}

// NewDriver creates a driver ticking root tickRate times per second.
// Non-positive rates use DefaultTickRate.
func NewDriver(root *tempo.Timeline, tickRate float64) *Driver {
	if !(tickRate > 0) {
		tickRate = DefaultTickRate
	}
	return &Driver{
		root:     root,
		interval: time.Duration(float64(time.Second) / tickRate),
		cmds:     make(chan command),
		stopped:  make(chan struct{}),
		logger:   slog.New(slog.DiscardHandler),
	}
}

// SetLogger sets the driver's logger. Call before Run.
func (d *Driver) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	d.logger = l
}

// Interval returns the tick period.
func (d *Driver) Interval() time.Duration {
	return d.interval
}

// Run ticks the root timeline until ctx is cancelled. Each tick passes the
// elapsed monotonic time since the previous tick to Update, so a late tick
// does not slow the timeline down. Run returns ctx.Err().
func (d *Driver) Run(ctx context.Context) error {
	defer close(d.stopped)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.logger.Info("stream: driver started", "timeline", d.root.Name, "interval", d.interval)
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			d.logger.Info("stream: driver stopped", "timeline", d.root.Name)
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			d.root.Update(dt)
		case c := <-d.cmds:
			c.done <- d.exec(c.fn)
		}
	}
}

// Do runs fn against the root timeline on the driver goroutine and waits for
// it to finish. It returns ctx.Err() if ctx ends first, ErrDriverStopped if
// Run has returned, or an error if fn panicked.
func (d *Driver) Do(ctx context.Context, fn func(*tempo.Timeline)) error {
	c := command{fn: fn, done: make(chan error, 1)}
	select {
	case d.cmds <- c:
	case <-d.stopped:
		return ErrDriverStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-c.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Driver) exec(fn func(*tempo.Timeline)) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("stream: command panicked", "panic", r)
			err = fmt.Errorf("stream: command panicked: %v", r)
		}
	}()
	fn(d.root)
	return nil
}
