package timer

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// State is the timer lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// Engine is a cancellable countdown timer. At most one countdown is
// active at a time; Start fails while a countdown is running or paused.
type Engine struct {
	mu        sync.Mutex
	state     State
	total     time.Duration
	remaining time.Duration
	stop      chan struct{}

	interval   time.Duration
	onTick     func(remaining time.Duration)
	onComplete func()
}

// NewEngine creates an idle countdown engine ticking once per second.
func NewEngine() *Engine {
	return &Engine{interval: time.Second}
}

// OnTick registers a callback invoked after every tick with the time
// remaining. Must be set before Start.
func (e *Engine) OnTick(fn func(remaining time.Duration)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onTick = fn
}

// OnComplete registers a callback invoked once when the countdown
// reaches zero. Must be set before Start.
func (e *Engine) OnComplete(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onComplete = fn
}

// Start begins a countdown of the given duration.
func (e *Engine) Start(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("timer duration must be positive, got %v", d)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateIdle {
		return fmt.Errorf("timer already %s", e.state)
	}

	e.state = StateRunning
	e.total = d
	e.remaining = d
	e.stop = make(chan struct{})
	go e.run(e.stop)
	return nil
}

// Pause suspends a running countdown, keeping the remaining time.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StateRunning {
		return fmt.Errorf("cannot pause %s timer", e.state)
	}
	e.state = StatePaused
	close(e.stop)
	e.stop = nil
	return nil
}

// Resume restarts a paused countdown from its remaining time.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state != StatePaused {
		return fmt.Errorf("cannot resume %s timer", e.state)
	}
	e.state = StateRunning
	e.stop = make(chan struct{})
	go e.run(e.stop)
	return nil
}

// Stop cancels the countdown and returns the engine to idle.
// Stopping an idle engine is a no-op.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stop != nil {
		close(e.stop)
		e.stop = nil
	}
	e.state = StateIdle
	e.total = 0
	e.remaining = 0
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Remaining returns the time left on the countdown.
func (e *Engine) Remaining() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// Elapsed returns how much of the countdown has passed.
func (e *Engine) Elapsed() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.total - e.remaining
}

func (e *Engine) run(stop chan struct{}) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
		}

		e.mu.Lock()
		// A Pause/Stop/Resume may have raced the tick; only the
		// goroutine owning the current stop channel may count down.
		if e.stop != stop || e.state != StateRunning {
			e.mu.Unlock()
			return
		}
		e.remaining -= e.interval
		if e.remaining < 0 {
			e.remaining = 0
		}
		remaining := e.remaining
		done := remaining == 0
		onTick := e.onTick
		onComplete := e.onComplete
		if done {
			e.state = StateIdle
			e.stop = nil
		}
		e.mu.Unlock()

		if onTick != nil {
			onTick(remaining)
		}
		if done {
			if onComplete != nil {
				onComplete()
			}
			return
		}
	}
}

// Efficiency scores a session by how much of the planned time elapsed
// before it ended, as a percentage capped at 100.
func Efficiency(elapsed, total time.Duration) int {
	if total <= 0 {
		return 0
	}
	ratio := elapsed.Seconds() / total.Seconds()
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	return int(math.Round(ratio * 100))
}

// FormatRemaining renders a duration as MM:SS for countdown display.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
