// ABOUTME: Mock latency and failure injection for the in-memory backend
// ABOUTME: Context-aware waits plus a pluggable failure sampler
package store

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// FailureSampler decides whether a simulated call should fail given a
// failure probability. Pluggable so tests can force either outcome.
type FailureSampler interface {
	ShouldFail(probability float64) bool
}

// RandomSampler fails with the given probability using its own seeded
// source, mirroring a flaky backend.
type RandomSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomSampler() *RandomSampler {
	return &RandomSampler{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (s *RandomSampler) ShouldFail(probability float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64() < probability
}

// FixedSampler always returns the same verdict. Used by tests and by the
// "force success" scenarios.
type FixedSampler struct {
	Fail bool
}

func (s FixedSampler) ShouldFail(float64) bool {
	return s.Fail
}

// Latencies holds the simulated delays for each backend operation.
type Latencies struct {
	SeedFetch  time.Duration // first LoadAll, includes the "network" fetch
	CachedLoad time.Duration // subsequent LoadAll calls
	Patch      time.Duration // lead updates
	OppAdd     time.Duration // opportunity append
	OppList    time.Duration // opportunity listing
}

// DefaultLatencies mirrors the delays of the mocked backend: 400ms seed
// fetch, 100ms cached load, 700ms patch, 200ms add, 100ms list.
func DefaultLatencies() Latencies {
	return Latencies{
		SeedFetch:  400 * time.Millisecond,
		CachedLoad: 100 * time.Millisecond,
		Patch:      700 * time.Millisecond,
		OppAdd:     200 * time.Millisecond,
		OppList:    100 * time.Millisecond,
	}
}

// Scale multiplies every latency by factor. Factor 0 disables delays,
// which is what tests use.
func (l Latencies) Scale(factor float64) Latencies {
	scale := func(d time.Duration) time.Duration {
		return time.Duration(float64(d) * factor)
	}
	return Latencies{
		SeedFetch:  scale(l.SeedFetch),
		CachedLoad: scale(l.CachedLoad),
		Patch:      scale(l.Patch),
		OppAdd:     scale(l.OppAdd),
		OppList:    scale(l.OppList),
	}
}

// Simulator emulates unreliable I/O without a real network. It never
// retries; retry policy belongs to callers, and this system performs
// none.
type Simulator struct {
	Latencies Latencies
	FailProb  float64
	Sampler   FailureSampler
}

// NewSimulator uses the default latencies and a ~25% patch failure rate,
// matching the mocked backend's behavior.
func NewSimulator() *Simulator {
	return &Simulator{
		Latencies: DefaultLatencies(),
		FailProb:  0.25,
		Sampler:   NewRandomSampler(),
	}
}

// Wait suspends for approximately d, or less if the context ends first.
// It always succeeds; context expiry is reported so callers can abandon
// a load, but in-flight writes are never cancelled mid-mutation.
func (s *Simulator) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Flaky fails with ErrSimulatedNetwork with the configured probability.
func (s *Simulator) Flaky() error {
	if s.Sampler.ShouldFail(s.FailProb) {
		return ErrSimulatedNetwork
	}
	return nil
}
