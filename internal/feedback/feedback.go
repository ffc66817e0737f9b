// Package feedback implements the transient "Copied" confirmation shown after
// a value is copied to the clipboard.
package feedback

import (
	"sync"
	"time"
)

// ResetAfter is how long the flag stays set after a copy.
const ResetAfter = 2 * time.Second

// Button labels for each state.
const (
	LabelIdle   = "Copy"
	LabelCopied = "Copied"
)

// State of the copy confirmation control.
type State int

const (
	Idle State = iota
	Copied
)

func (s State) String() string {
	if s == Copied {
		return "copied"
	}
	return "idle"
}

// Scheduler runs f once after d. time.AfterFunc satisfies it via
// TimeScheduler.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// TimeScheduler schedules callbacks with the runtime timer.
type TimeScheduler struct{}

// AfterFunc implements Scheduler.
func (TimeScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Flag is the copy feedback flag. Every Trigger schedules its own reset and
// earlier resets are never cancelled, so a reset from an older copy may end
// the Copied state of a newer one.
type Flag struct {
	mu       sync.Mutex
	state    State
	sched    Scheduler
	after    time.Duration
	onChange func(State)
}

// Option configures a Flag.
type Option func(*Flag)

// WithScheduler replaces the timer used for resets.
func WithScheduler(s Scheduler) Option {
	return func(f *Flag) { f.sched = s }
}

// WithResetAfter changes the reset delay.
func WithResetAfter(d time.Duration) Option {
	return func(f *Flag) { f.after = d }
}

// New creates an idle flag. onChange, if not nil, is called after every
// transition and may run on a timer goroutine.
func New(onChange func(State), opts ...Option) *Flag {
	f := &Flag{
		sched:    TimeScheduler{},
		after:    ResetAfter,
		onChange: onChange,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// Trigger sets the flag and schedules its reset.
func (f *Flag) Trigger() {
	f.set(Copied)
	f.sched.AfterFunc(f.after, func() { f.set(Idle) })
}

// State returns the current state.
func (f *Flag) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Copied reports whether the flag is set.
func (f *Flag) Copied() bool {
	return f.State() == Copied
}

// Label returns the button text for the current state.
func (f *Flag) Label() string {
	return LabelFor(f.State())
}

// LabelFor returns the button text for s.
func LabelFor(s State) string {
	if s == Copied {
		return LabelCopied
	}
	return LabelIdle
}

func (f *Flag) set(s State) {
	f.mu.Lock()
	f.state = s
	cb := f.onChange
	f.mu.Unlock()

	if cb != nil {
		cb(s)
	}
}
