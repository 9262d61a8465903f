// ABOUTME: Data models for lead-management entities
// ABOUTME: Defines Lead, Opportunity, patch and filter types with status enums
package models

import (
	"fmt"
	"regexp"
	"strings"
)

// LeadStatus is the qualification state of a lead. Only the four known
// values are accepted at ingestion; anything else is rejected by
// ParseLeadStatus.
type LeadStatus string

const (
	StatusNew         LeadStatus = "New"
	StatusContacted   LeadStatus = "Contacted"
	StatusQualified   LeadStatus = "Qualified"
	StatusUnqualified LeadStatus = "Unqualified"
)

// LeadStatuses lists all valid statuses in display order.
var LeadStatuses = []LeadStatus{StatusNew, StatusContacted, StatusQualified, StatusUnqualified}

// ParseLeadStatus validates a raw status string at the data boundary.
func ParseLeadStatus(s string) (LeadStatus, error) {
	for _, status := range LeadStatuses {
		if LeadStatus(s) == status {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown lead status %q", s)
}

type Lead struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	Company string     `json:"company"`
	Email   string     `json:"email"`
	Source  string     `json:"source"`
	Score   int        `json:"score"`
	Status  LeadStatus `json:"status"`
}

// LeadPatch is a partial update to a lead's mutable fields. Nil means
// "leave unchanged".
type LeadPatch struct {
	Email  *string     `json:"email,omitempty"`
	Status *LeadStatus `json:"status,omitempty"`
}

// Apply merges the present fields of the patch into a copy of the lead.
func (p LeadPatch) Apply(lead Lead) Lead {
	if p.Email != nil {
		lead.Email = *p.Email
	}
	if p.Status != nil {
		lead.Status = *p.Status
	}
	return lead
}

// IsZero reports whether the patch carries no fields.
func (p LeadPatch) IsZero() bool {
	return p.Email == nil && p.Status == nil
}

// OppStage is the pipeline stage of an opportunity.
type OppStage string

const (
	StageNew         OppStage = "New"
	StageNegotiation OppStage = "Negotiation"
	StageWon         OppStage = "Won"
	StageLost        OppStage = "Lost"
)

// Opportunity is a sales-pipeline record derived from a converted lead.
// No live link to the source lead is kept; later lead edits do not
// propagate here.
type Opportunity struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	AccountName string   `json:"account_name"`
	Stage       OppStage `json:"stage"`
	Amount      *float64 `json:"amount,omitempty"`
}

// StatusAll is the sentinel filter value matching every status.
const StatusAll = "All"

// FilterCriteria selects the subset of leads shown in the table.
type FilterCriteria struct {
	Search string `json:"search"`
	Status string `json:"status"` // a LeadStatus or StatusAll
}

// DefaultFilters returns the criteria used on first run and after reset.
func DefaultFilters() FilterCriteria {
	return FilterCriteria{Search: "", Status: StatusAll}
}

// Normalize coerces unknown status values back to StatusAll so stale or
// corrupt persisted filters degrade instead of filtering everything out.
func (c FilterCriteria) Normalize() FilterCriteria {
	if c.Status == StatusAll {
		return c
	}
	if _, err := ParseLeadStatus(c.Status); err != nil {
		c.Status = StatusAll
	}
	return c
}

// Active reports whether the criteria restrict the lead list at all.
func (c FilterCriteria) Active() bool {
	return strings.TrimSpace(c.Search) != "" || c.Status != StatusAll
}

// Statistics summarizes the lead funnel for the console header.
type Statistics struct {
	Total          int `json:"total"`
	Qualified      int `json:"qualified"`
	Contacted      int `json:"contacted"`
	Opportunities  int `json:"opportunities"`
	ConversionRate int `json:"conversion_rate"` // rounded percent
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the local-part@domain.tld shape used before any
// email edit is persisted.
func ValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
