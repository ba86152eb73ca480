package ratelimit

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)

	var calls atomic.Int32
	var mu sync.Mutex
	var lastArg int

	var lastTrigger time.Time
	for i := 1; i <= 5; i++ {
		arg := i
		d.Trigger(func() {
			calls.Add(1)
			mu.Lock()
			lastArg = arg
			mu.Unlock()
		})
		lastTrigger = time.Now()
		time.Sleep(10 * time.Millisecond)
	}

	deadline := time.After(2 * time.Second)
	for calls.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("debounced callback never ran")
		case <-time.After(5 * time.Millisecond):
		}
	}
	elapsed := time.Since(lastTrigger)

	if got := calls.Load(); got != 1 {
		t.Errorf("expected exactly 1 call, got %d", got)
	}
	if elapsed < 90*time.Millisecond {
		t.Errorf("callback ran %v after last trigger, want >= ~100ms", elapsed)
	}
	mu.Lock()
	if lastArg != 5 {
		t.Errorf("expected the final call's argument (5), got %d", lastArg)
	}
	mu.Unlock()

	// The burst is done; nothing further should fire.
	time.Sleep(150 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("expected no trailing calls, got %d total", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Cancel()

	time.Sleep(120 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("expected cancelled callback not to run, got %d calls", got)
	}
}

func TestDebouncer_ZeroWindowDefault(t *testing.T) {
	d := NewDebouncer(0)
	if d.Duration() != DefaultDebounceWindow {
		t.Errorf("Duration() = %v, want %v", d.Duration(), DefaultDebounceWindow)
	}
}

func TestThrottler_ZeroWindowDefault(t *testing.T) {
	th := NewThrottler(0)
	if th.Duration() != DefaultThrottleWindow {
		t.Errorf("Duration() = %v, want %v", th.Duration(), DefaultThrottleWindow)
	}
}

func TestThrottler_LeadingEdge(t *testing.T) {
	th := NewThrottler(100 * time.Millisecond)

	var calls atomic.Int32
	for i := 0; i < 3; i++ {
		th.Trigger(func() { calls.Add(1) })
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected exactly 1 immediate call, got %d", got)
	}

	time.Sleep(150 * time.Millisecond)
	if !th.Trigger(func() { calls.Add(1) }) {
		t.Error("expected trigger after the window to run")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("expected 2 calls total, got %d", got)
	}
}

func TestThrottler_Cancel(t *testing.T) {
	th := NewThrottler(time.Minute)

	var calls atomic.Int32
	th.Trigger(func() { calls.Add(1) })
	if th.Trigger(func() { calls.Add(1) }) {
		t.Fatal("expected second trigger inside the window to drop")
	}

	th.Cancel()
	if !th.Trigger(func() { calls.Add(1) }) {
		t.Error("expected trigger after Cancel to run")
	}
	if got := calls.Load(); got != 2 {
		t.Errorf("expected 2 calls total, got %d", got)
	}
}
