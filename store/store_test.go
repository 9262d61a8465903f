// ABOUTME: Shared test fixtures for the store package
// ABOUTME: Zero-latency simulator and deterministic seed sources
package store

import (
	"github.com/jeremiasmarinho/mini-seller-console/models"
)

// testSimulator returns a simulator with no delays and a forced sampler
// verdict, keeping store tests instant and deterministic.
func testSimulator(fail bool) *Simulator {
	return &Simulator{
		Latencies: Latencies{},
		FailProb:  0.25,
		Sampler:   FixedSampler{Fail: fail},
	}
}

func seedLeads() []models.Lead {
	return []models.Lead{
		{ID: "1", Name: "Ann Lee", Company: "Acme", Email: "a@x.com", Source: "Web", Score: 50, Status: models.StatusNew},
		{ID: "2", Name: "Bob Reyes", Company: "Globex", Email: "bob@globex.com", Source: "Referral", Score: 80, Status: models.StatusContacted},
		{ID: "3", Name: "Cara Singh", Company: "Initech", Email: "cara@initech.io", Source: "Event", Score: 65, Status: models.StatusQualified},
	}
}

// countingSource wraps StaticSource and counts fetches so tests can
// assert the cache never re-fetches.
type countingSource struct {
	records []models.Lead
	err     error
	calls   int
}

func (s *countingSource) Leads() ([]models.Lead, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return append([]models.Lead(nil), s.records...), nil
}
