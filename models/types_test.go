// ABOUTME: Tests for lead-management data models
// ABOUTME: Covers status parsing, patch merging, filter normalization, email shape
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLeadStatus(t *testing.T) {
	for _, valid := range []string{"New", "Contacted", "Qualified", "Unqualified"} {
		status, err := ParseLeadStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, LeadStatus(valid), status)
	}

	for _, invalid := range []string{"", "new", "NEW", "Converted", "All"} {
		_, err := ParseLeadStatus(invalid)
		assert.Error(t, err, "expected %q to be rejected", invalid)
	}
}

func TestLeadPatchApply(t *testing.T) {
	lead := Lead{
		ID:      "1",
		Name:    "Ann Lee",
		Company: "Acme",
		Email:   "a@x.com",
		Source:  "Web",
		Score:   50,
		Status:  StatusNew,
	}

	email := "ann@acme.com"
	patched := LeadPatch{Email: &email}.Apply(lead)
	assert.Equal(t, "ann@acme.com", patched.Email)
	assert.Equal(t, StatusNew, patched.Status, "absent fields stay untouched")
	assert.Equal(t, "a@x.com", lead.Email, "Apply must not mutate its input")

	status := StatusQualified
	patched = LeadPatch{Status: &status}.Apply(lead)
	assert.Equal(t, StatusQualified, patched.Status)
	assert.Equal(t, "a@x.com", patched.Email)

	assert.True(t, LeadPatch{}.IsZero())
	assert.False(t, LeadPatch{Email: &email}.IsZero())
}

func TestFilterCriteriaNormalize(t *testing.T) {
	c := FilterCriteria{Search: "acme", Status: "Qualified"}.Normalize()
	assert.Equal(t, "Qualified", c.Status)

	c = FilterCriteria{Status: "Bogus"}.Normalize()
	assert.Equal(t, StatusAll, c.Status)

	c = FilterCriteria{Status: StatusAll}.Normalize()
	assert.Equal(t, StatusAll, c.Status)
}

func TestFilterCriteriaActive(t *testing.T) {
	assert.False(t, DefaultFilters().Active())
	assert.True(t, FilterCriteria{Search: "ann", Status: StatusAll}.Active())
	assert.True(t, FilterCriteria{Status: "New"}.Active())
	assert.False(t, FilterCriteria{Search: "   ", Status: StatusAll}.Active())
}

func TestValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "ann.lee@acme.io", "a+b@sub.domain.org"}
	for _, email := range valid {
		assert.True(t, ValidEmail(email), email)
	}

	invalid := []string{"", "not-an-email", "a@b", "a b@x.com", "@x.com", "a@@x.com"}
	for _, email := range invalid {
		assert.False(t, ValidEmail(email), email)
	}
}
