// ABOUTME: Tests for the lead-to-opportunity conversion workflow
// ABOUTME: Covers field derivation, amount handling, conversion independence
package leads

import (
	"context"
	"testing"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

func TestConvertDerivesOpportunity(t *testing.T) {
	c := newTestController(t, quietSimulator(false))
	ctx := context.Background()

	amount := 5000.0
	lead := leadByID(t, c.Leads(), "2")
	opp, err := c.Convert(ctx, lead, &amount)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if opp.ID == "" {
		t.Error("opportunity id must be generated")
	}
	if opp.Name != "Bob Reyes" || opp.AccountName != "Globex" {
		t.Errorf("name/account not copied: %+v", opp)
	}
	if opp.Stage != models.StageNew {
		t.Errorf("stage must be New at creation, got %s", opp.Stage)
	}
	if opp.Amount == nil || *opp.Amount != 5000.0 {
		t.Errorf("amount not recorded: %v", opp.Amount)
	}

	// The source lead is untouched and still in the collection.
	if got := leadByID(t, c.Leads(), "2"); got != lead {
		t.Errorf("convert must not mutate the source lead: %+v", got)
	}
}

func TestConvertGeneratesUniqueIDs(t *testing.T) {
	c := newTestController(t, quietSimulator(false))
	ctx := context.Background()
	lead := leadByID(t, c.Leads(), "1")

	first, err := c.Convert(ctx, lead, nil)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	second, err := c.Convert(ctx, lead, nil)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if first.ID == second.ID {
		t.Errorf("ids must never repeat: %s", first.ID)
	}
}

func TestConversionIndependence(t *testing.T) {
	c := newTestController(t, quietSimulator(false))
	ctx := context.Background()

	lead := leadByID(t, c.Leads(), "1")
	opp, err := c.Convert(ctx, lead, nil)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	// Mutate the source lead after conversion.
	status := models.StatusUnqualified
	email := "changed@x.com"
	if err := c.Save(ctx, "1", models.LeadPatch{Email: &email, Status: &status}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	listed, err := c.Opportunities(ctx)
	if err != nil {
		t.Fatalf("Opportunities failed: %v", err)
	}
	if listed[0] != opp {
		t.Errorf("opportunity changed after lead edit: %+v vs %+v", listed[0], opp)
	}
	if listed[0].Name != "Ann Lee" || listed[0].AccountName != "Acme" {
		t.Errorf("opportunity fields must be frozen at conversion: %+v", listed[0])
	}
}
