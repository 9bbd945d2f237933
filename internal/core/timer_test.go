package core

import (
	"testing"
	"time"
)

func TestFixedStepAccumulates(t *testing.T) {
	fs := NewFixedStep(5)
	if fs.Interval() != 200*time.Millisecond {
		t.Fatalf("interval = %v, want 200ms", fs.Interval())
	}
	if n := fs.Advance(150 * time.Millisecond); n != 0 {
		t.Fatalf("expected no tick after 150ms, got %d", n)
	}
	if n := fs.Advance(60 * time.Millisecond); n != 1 {
		t.Fatalf("expected one tick after 210ms total, got %d", n)
	}
	// 10ms carried over
	if n := fs.Advance(390 * time.Millisecond); n != 2 {
		t.Fatalf("expected two ticks after another 390ms, got %d", n)
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	fs := NewFixedStep(10)
	if n := fs.Advance(10 * time.Second); n != maxCatchUp {
		t.Fatalf("expected catch-up cap %d, got %d", maxCatchUp, n)
	}
	if n := fs.Advance(0); n != 0 {
		t.Fatalf("backlog should be dropped after the cap, got %d", n)
	}
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != time.Second/60 {
		t.Fatalf("expected 60 TPS default, got %v", fs.Interval())
	}
	if n := fs.Ticks(); n != 0 {
		t.Fatalf("first Ticks call should only start the clock, got %d", n)
	}
}
