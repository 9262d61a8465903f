// ABOUTME: Lead-to-opportunity conversion workflow
// ABOUTME: Derives an opportunity from a lead and appends it to the store
package leads

import (
	"context"

	"github.com/google/uuid"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

// Convert builds an opportunity from a lead and appends it to the
// opportunity store. The opportunity starts in stage New with a fresh
// id; amount is recorded only when supplied. The source lead is not
// mutated or removed, and later edits to it never propagate to the
// opportunity.
func (c *Controller) Convert(ctx context.Context, lead models.Lead, amount *float64) (models.Opportunity, error) {
	opp := models.Opportunity{
		ID:          uuid.New().String(),
		Name:        lead.Name,
		AccountName: lead.Company,
		Stage:       models.StageNew,
	}
	if amount != nil {
		value := *amount
		opp.Amount = &value
	}

	if err := c.opps.Add(ctx, opp); err != nil {
		return models.Opportunity{}, err
	}

	c.mu.Lock()
	c.oppN++
	c.mu.Unlock()
	c.feed.Record(VerbConverted, lead.ID, "converted to opportunity "+opp.ID)
	return opp, nil
}

// Opportunities lists the converted opportunities in insertion order.
func (c *Controller) Opportunities(ctx context.Context) ([]models.Opportunity, error) {
	return c.opps.List(ctx)
}
