package core

import (
	"testing"
	"time"
)

func TestFixedStepFirstPollSteps(t *testing.T) {
	fs := NewFixedStep(10)
	now := time.Unix(100, 0)
	if !fs.ShouldStepAt(now) {
		t.Fatal("first poll should step immediately")
	}
	if fs.ShouldStepAt(now.Add(50 * time.Millisecond)) {
		t.Fatal("stepped before a full interval elapsed")
	}
	if !fs.ShouldStepAt(now.Add(100 * time.Millisecond)) {
		t.Fatal("expected a step after one interval")
	}
}

func TestFixedStepResetWaitsFullInterval(t *testing.T) {
	fs := NewFixedStep(4)
	now := time.Unix(0, 0)
	fs.ShouldStepAt(now)
	fs.Reset()
	if fs.ShouldStepAt(now.Add(time.Hour)) {
		t.Fatal("first poll after Reset should not step")
	}
	if !fs.ShouldStepAt(now.Add(time.Hour + 250*time.Millisecond)) {
		t.Fatal("expected a step one interval after Reset")
	}
}

func TestFixedStepDefaults(t *testing.T) {
	fs := NewFixedStep(0)
	if got, want := fs.Interval(), time.Second/60; got != want {
		t.Fatalf("Interval() = %v, want %v", got, want)
	}
	fs.SetTPS(-1)
	if got, want := fs.Interval(), time.Second/60; got != want {
		t.Fatalf("Interval() after SetTPS(-1) = %v, want %v", got, want)
	}
}
