// ABOUTME: Tests for the latency and failure simulator
// ABOUTME: Covers sampler probability edges, context-aware waits, latency scaling
package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRandomSamplerProbabilityEdges(t *testing.T) {
	s := NewRandomSampler()
	for i := 0; i < 100; i++ {
		if s.ShouldFail(0) {
			t.Fatal("probability 0 must never fail")
		}
		if !s.ShouldFail(1) {
			t.Fatal("probability 1 must always fail")
		}
	}
}

func TestFlaky(t *testing.T) {
	sim := testSimulator(true)
	if err := sim.Flaky(); !errors.Is(err, ErrSimulatedNetwork) {
		t.Fatalf("expected ErrSimulatedNetwork, got %v", err)
	}

	sim = testSimulator(false)
	if err := sim.Flaky(); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
}

func TestWaitHonorsContext(t *testing.T) {
	sim := NewSimulator()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sim.Wait(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWaitZeroDuration(t *testing.T) {
	sim := NewSimulator()
	if err := sim.Wait(context.Background(), 0); err != nil {
		t.Fatalf("zero wait must return immediately: %v", err)
	}
}

func TestLatenciesScale(t *testing.T) {
	scaled := DefaultLatencies().Scale(0)
	if scaled.Patch != 0 || scaled.SeedFetch != 0 {
		t.Errorf("scale 0 must zero all delays: %+v", scaled)
	}

	doubled := DefaultLatencies().Scale(2)
	if doubled.Patch != 1400*time.Millisecond {
		t.Errorf("expected 1400ms patch latency, got %s", doubled.Patch)
	}
}
