// ABOUTME: In-memory lead repository with simulated latency and failure
// ABOUTME: Lazy seed fetch, cached loads, atomic patch-by-id semantics
package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

// LeadStore holds the authoritative in-memory copy of the lead
// collection. The cache starts absent (not empty) and is populated by
// the first successful LoadAll; it then lives for the process lifetime.
// All returned slices are defensive copies; callers never see or mutate
// store-owned memory.
type LeadStore struct {
	mu   sync.Mutex
	sim  *Simulator
	seed SeedSource
	data []models.Lead // nil until first successful load
}

func NewLeadStore(sim *Simulator, seed SeedSource) *LeadStore {
	return &LeadStore{sim: sim, seed: seed}
}

// LoadAll returns a copy of the full lead collection. The first call
// waits the seed-fetch latency and pulls from the seed source; later
// calls wait the shorter cached latency and never re-fetch. A seed
// failure surfaces as ErrLoad and leaves the cache unpopulated, so a
// manual retry re-invokes the fetch.
func (s *LeadStore) LoadAll(ctx context.Context) ([]models.Lead, error) {
	s.mu.Lock()
	loaded := s.data != nil
	s.mu.Unlock()

	if loaded {
		if err := s.sim.Wait(ctx, s.sim.Latencies.CachedLoad); err != nil {
			return nil, err
		}
		return s.snapshot(), nil
	}

	if err := s.sim.Wait(ctx, s.sim.Latencies.SeedFetch); err != nil {
		return nil, err
	}
	leads, err := s.seed.Leads()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	s.mu.Lock()
	// Another caller may have won the race; keep the first result.
	if s.data == nil {
		s.data = append([]models.Lead(nil), leads...)
	}
	s.mu.Unlock()

	return s.snapshot(), nil
}

// Patch merges the present fields of patch into the lead matching id.
// The injected failure fires before any mutation, so a failed patch is
// atomic: either the full merge happened or nothing did. An id absent
// from the collection is an explicit ErrNotFound, never a silent no-op.
func (s *LeadStore) Patch(ctx context.Context, id string, patch models.LeadPatch) error {
	// The cache must be populated before a patch can target it.
	s.mu.Lock()
	loaded := s.data != nil
	s.mu.Unlock()
	if !loaded {
		if _, err := s.LoadAll(ctx); err != nil {
			return err
		}
	}

	if err := s.sim.Wait(ctx, s.sim.Latencies.Patch); err != nil {
		return err
	}
	if err := s.sim.Flaky(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data {
		if s.data[i].ID == id {
			s.data[i] = patch.Apply(s.data[i])
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Loaded reports whether the cache has been populated.
func (s *LeadStore) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data != nil
}

func (s *LeadStore) snapshot() []models.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Lead(nil), s.data...)
}
