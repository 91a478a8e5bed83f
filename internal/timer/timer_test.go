package timer

import (
	"sync"
	"testing"
	"time"
)

func fastEngine() *Engine {
	return &Engine{interval: time.Millisecond}
}

func TestStartValidation(t *testing.T) {
	e := NewEngine()
	if err := e.Start(0); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if err := e.Start(-time.Minute); err == nil {
		t.Fatal("expected error for negative duration")
	}
	if e.State() != StateIdle {
		t.Fatalf("state = %v, want idle", e.State())
	}
}

func TestOnlyOneActiveCountdown(t *testing.T) {
	e := fastEngine()
	if err := e.Start(time.Second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer e.Stop()

	if err := e.Start(time.Second); err == nil {
		t.Fatal("expected error starting a running timer")
	}

	if err := e.Pause(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := e.Start(time.Second); err == nil {
		t.Fatal("expected error starting a paused timer")
	}
}

func TestCountdownCompletes(t *testing.T) {
	e := fastEngine()

	var mu sync.Mutex
	var ticks []time.Duration
	done := make(chan struct{})

	e.OnTick(func(remaining time.Duration) {
		mu.Lock()
		ticks = append(ticks, remaining)
		mu.Unlock()
	})
	e.OnComplete(func() { close(done) })

	if err := e.Start(5 * time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("countdown did not complete")
	}

	if e.State() != StateIdle {
		t.Fatalf("state after completion = %v, want idle", e.State())
	}

	mu.Lock()
	defer mu.Unlock()
	if len(ticks) != 5 {
		t.Fatalf("expected 5 ticks, got %d", len(ticks))
	}
	if ticks[len(ticks)-1] != 0 {
		t.Fatalf("final tick remaining = %v, want 0", ticks[len(ticks)-1])
	}
}

func TestPauseKeepsRemaining(t *testing.T) {
	e := fastEngine()
	if err := e.Start(time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if err := e.Pause(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	remaining := e.Remaining()
	if remaining >= time.Hour || remaining <= 0 {
		t.Fatalf("remaining = %v after pause", remaining)
	}

	// Paused timers do not count down.
	time.Sleep(10 * time.Millisecond)
	if got := e.Remaining(); got != remaining {
		t.Fatalf("remaining changed while paused: %v -> %v", remaining, got)
	}

	if err := e.Resume(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer e.Stop()

	time.Sleep(10 * time.Millisecond)
	if got := e.Remaining(); got >= remaining {
		t.Fatalf("remaining did not decrease after resume: %v -> %v", remaining, got)
	}
}

func TestStopReturnsToIdle(t *testing.T) {
	e := fastEngine()
	if err := e.Start(time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e.Stop()

	if e.State() != StateIdle {
		t.Fatalf("state = %v, want idle", e.State())
	}
	if e.Remaining() != 0 {
		t.Fatalf("remaining = %v, want 0", e.Remaining())
	}

	// Stopping again is harmless.
	e.Stop()

	// The engine is reusable after a stop.
	if err := e.Start(time.Hour); err != nil {
		t.Fatalf("unexpected error restarting: %v", err)
	}
	e.Stop()
}

func TestResumeRequiresPaused(t *testing.T) {
	e := fastEngine()
	if err := e.Resume(); err == nil {
		t.Fatal("expected error resuming idle timer")
	}

	if err := e.Start(time.Hour); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer e.Stop()
	if err := e.Resume(); err == nil {
		t.Fatal("expected error resuming running timer")
	}
}

func TestEfficiency(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  time.Duration
		total    time.Duration
		expected int
	}{
		{"full session", 25 * time.Minute, 25 * time.Minute, 100},
		{"half session", 10 * time.Minute, 20 * time.Minute, 50},
		{"overrun capped", 30 * time.Minute, 25 * time.Minute, 100},
		{"rounds to nearest", time.Minute, 3 * time.Minute, 33},
		{"zero total", 5 * time.Minute, 0, 0},
		{"nothing elapsed", 0, 25 * time.Minute, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Efficiency(tt.elapsed, tt.total); got != tt.expected {
				t.Errorf("Efficiency(%v, %v) = %d, want %d", tt.elapsed, tt.total, got, tt.expected)
			}
		})
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d        time.Duration
		expected string
	}{
		{25 * time.Minute, "25:00"},
		{90 * time.Second, "01:30"},
		{5 * time.Second, "00:05"},
		{0, "00:00"},
		{-time.Second, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatRemaining(tt.d); got != tt.expected {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.expected)
		}
	}
}
