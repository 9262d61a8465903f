// ABOUTME: Seed dataset sources for the lead store
// ABOUTME: JSON file and in-memory sources with ingestion-boundary validation
package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

// SeedSource supplies the initial lead dataset. The lead store fetches it
// once, on the first successful LoadAll.
type SeedSource interface {
	Leads() ([]models.Lead, error)
}

// JSONFileSource reads leads from a JSON array on disk, the stand-in for
// the static leads.json resource.
type JSONFileSource struct {
	Path string
}

func (s JSONFileSource) Leads() ([]models.Lead, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return DecodeLeads(data)
}

// BytesSource serves an already-loaded JSON payload, used for the
// embedded sample dataset.
type BytesSource struct {
	Data []byte
}

func (s BytesSource) Leads() ([]models.Lead, error) {
	return DecodeLeads(s.Data)
}

// StaticSource returns a fixed slice. Tests use it to skip JSON entirely.
type StaticSource struct {
	Records []models.Lead
	Err     error
}

func (s StaticSource) Leads() ([]models.Lead, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return append([]models.Lead(nil), s.Records...), nil
}

// DecodeLeads parses a JSON array of leads and enforces the ingestion
// invariants: known status values and unique ids.
func DecodeLeads(data []byte) ([]models.Lead, error) {
	var raw []struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		Company string `json:"company"`
		Email   string `json:"email"`
		Source  string `json:"source"`
		Score   int    `json:"score"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode leads: %w", err)
	}

	leads := make([]models.Lead, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, r := range raw {
		if r.ID == "" {
			return nil, fmt.Errorf("lead %d: missing id", i)
		}
		if seen[r.ID] {
			return nil, fmt.Errorf("lead %d: duplicate id %q", i, r.ID)
		}
		seen[r.ID] = true

		status, err := models.ParseLeadStatus(r.Status)
		if err != nil {
			return nil, fmt.Errorf("lead %q: %w", r.ID, err)
		}

		leads = append(leads, models.Lead{
			ID:      r.ID,
			Name:    r.Name,
			Company: r.Company,
			Email:   r.Email,
			Source:  r.Source,
			Score:   r.Score,
			Status:  status,
		})
	}
	return leads, nil
}
