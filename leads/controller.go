// ABOUTME: Optimistic mutation controller for lead edits
// ABOUTME: Applies edits to visible state immediately and rolls back on failure
package leads

import (
	"context"
	"fmt"
	"sync"

	"github.com/jeremiasmarinho/mini-seller-console/models"
	"github.com/jeremiasmarinho/mini-seller-console/store"
)

// Controller owns the visible lead list the UI renders. Edits go through
// Save, which applies the change to visible state before the backend
// call resolves and restores the pre-edit entry if that call fails.
//
// Rollback is entity-level: Save snapshots only the affected lead, so
// overlapping edits to different leads cannot clobber each other's
// committed state the way a whole-collection snapshot would.
type Controller struct {
	mu      sync.Mutex
	store   *store.LeadStore
	opps    *store.OpportunityStore
	feed    *ActivityFeed
	visible []models.Lead
	oppN    int
}

func NewController(leadStore *store.LeadStore, oppStore *store.OpportunityStore) *Controller {
	return &Controller{
		store: leadStore,
		opps:  oppStore,
		feed:  NewActivityFeed(),
	}
}

// Load populates the visible list from the store and returns a copy.
// The store caches after the first successful call, so a retry after an
// ErrLoad re-fetches while a routine reload does not.
func (c *Controller) Load(ctx context.Context) ([]models.Lead, error) {
	leads, err := c.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.visible = append([]models.Lead(nil), leads...)
	c.mu.Unlock()
	return leads, nil
}

// Leads returns a copy of the current visible state, including any
// optimistic edits still in flight.
func (c *Controller) Leads() []models.Lead {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.Lead(nil), c.visible...)
}

// Save runs one edit through the Validating, OptimisticallyApplied and
// Committed/RolledBack states:
//
//  1. A malformed email fails with ValidationError before any state
//     change; the optimistic step is never entered.
//  2. The affected entry is snapshotted and the merged entry replaces it
//     in one step, so the visible list only ever shows the pre-edit or
//     the fully-patched lead, never a partial merge.
//  3. The store patch runs with its simulated latency and failure.
//  4. On success the optimistic state stands as-is. On failure the
//     snapshot entry is restored exactly and the original error is
//     returned so the UI can keep the edit form open for retry.
func (c *Controller) Save(ctx context.Context, id string, patch models.LeadPatch) error {
	if patch.Email != nil && !models.ValidEmail(*patch.Email) {
		return store.ValidationError{Field: "email", Message: "must look like local@domain.tld"}
	}

	c.mu.Lock()
	idx := -1
	for i := range c.visible {
		if c.visible[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		c.mu.Unlock()
		return fmt.Errorf("%w: %s", store.ErrNotFound, id)
	}
	snapshot := c.visible[idx]
	c.visible[idx] = patch.Apply(snapshot)
	c.mu.Unlock()

	if err := c.store.Patch(ctx, id, patch); err != nil {
		c.mu.Lock()
		for i := range c.visible {
			if c.visible[i].ID == id {
				c.visible[i] = snapshot
				break
			}
		}
		c.mu.Unlock()
		c.feed.Record(VerbRolledBack, id, fmt.Sprintf("edit failed: %v", err))
		return err
	}

	c.feed.Record(VerbUpdated, id, describePatch(patch))
	return nil
}

// Activity returns the newest-first activity feed entries.
func (c *Controller) Activity() []Activity {
	return c.feed.List()
}

// Statistics summarizes the visible leads and the running opportunity
// count for the console header.
func (c *Controller) Statistics() models.Statistics {
	c.mu.Lock()
	leads := append([]models.Lead(nil), c.visible...)
	oppN := c.oppN
	c.mu.Unlock()
	return ComputeStatistics(leads, oppN)
}

func describePatch(patch models.LeadPatch) string {
	switch {
	case patch.Email != nil && patch.Status != nil:
		return fmt.Sprintf("email -> %s, status -> %s", *patch.Email, *patch.Status)
	case patch.Email != nil:
		return fmt.Sprintf("email -> %s", *patch.Email)
	case patch.Status != nil:
		return fmt.Sprintf("status -> %s", *patch.Status)
	}
	return "no changes"
}
