// ABOUTME: In-memory opportunity repository
// ABOUTME: Append and list with simulated latency, no failure injection
package store

import (
	"context"
	"sync"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

// OpportunityStore holds converted opportunities in insertion order.
// Conversion is modeled as reliable, so there is no failure injection
// here, only latency.
type OpportunityStore struct {
	mu   sync.Mutex
	sim  *Simulator
	data []models.Opportunity
}

func NewOpportunityStore(sim *Simulator) *OpportunityStore {
	return &OpportunityStore{sim: sim}
}

// Add appends an opportunity after a short simulated delay.
func (s *OpportunityStore) Add(ctx context.Context, opp models.Opportunity) error {
	if err := s.sim.Wait(ctx, s.sim.Latencies.OppAdd); err != nil {
		return err
	}
	s.mu.Lock()
	s.data = append(s.data, opp)
	s.mu.Unlock()
	return nil
}

// List returns a copy of the opportunities in insertion order.
func (s *OpportunityStore) List(ctx context.Context) ([]models.Opportunity, error) {
	if err := s.sim.Wait(ctx, s.sim.Latencies.OppList); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Opportunity(nil), s.data...), nil
}
