// ABOUTME: Pure filtering, sorting and statistics over lead collections
// ABOUTME: Case-insensitive search, status filter, score-descending order
package leads

import (
	"math"
	"sort"
	"strings"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

// FilterLeads maps the full lead collection and the filter criteria to
// the displayed subset. A non-empty search term keeps leads whose name,
// company or email contains the trimmed term case-insensitively; a
// status other than All keeps only matching leads. The result is ordered
// by score descending; ties keep their input order (stable sort is the
// tie-break). The input slice is never mutated.
func FilterLeads(leads []models.Lead, criteria models.FilterCriteria) []models.Lead {
	criteria = criteria.Normalize()
	term := strings.ToLower(strings.TrimSpace(criteria.Search))

	filtered := make([]models.Lead, 0, len(leads))
	for _, lead := range leads {
		if term != "" && !matchesSearch(lead, term) {
			continue
		}
		if criteria.Status != models.StatusAll && string(lead.Status) != criteria.Status {
			continue
		}
		filtered = append(filtered, lead)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})
	return filtered
}

func matchesSearch(lead models.Lead, term string) bool {
	return strings.Contains(strings.ToLower(lead.Name), term) ||
		strings.Contains(strings.ToLower(lead.Company), term) ||
		strings.Contains(strings.ToLower(lead.Email), term)
}

// ComputeStatistics summarizes a lead collection and the opportunity
// count: totals per status plus a rounded conversion percentage.
func ComputeStatistics(leads []models.Lead, opportunities int) models.Statistics {
	stats := models.Statistics{
		Total:         len(leads),
		Opportunities: opportunities,
	}
	for _, lead := range leads {
		switch lead.Status {
		case models.StatusQualified:
			stats.Qualified++
		case models.StatusContacted:
			stats.Contacted++
		}
	}
	if stats.Total > 0 {
		stats.ConversionRate = int(math.Round(float64(opportunities) / float64(stats.Total) * 100))
	}
	return stats
}
