// ABOUTME: Tests for the in-memory lead repository
// ABOUTME: Covers lazy load, cache idempotence, atomic patch, error taxonomy
package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jeremiasmarinho/mini-seller-console/models"
)

func TestLoadAllFetchesOnce(t *testing.T) {
	src := &countingSource{records: seedLeads()}
	ls := NewLeadStore(testSimulator(false), src)
	ctx := context.Background()

	first, err := ls.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(first) != 3 {
		t.Fatalf("expected 3 leads, got %d", len(first))
	}

	second, err := ls.LoadAll(ctx)
	if err != nil {
		t.Fatalf("second LoadAll failed: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("expected exactly 1 seed fetch, got %d", src.calls)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("load %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestLoadAllReturnsDefensiveCopy(t *testing.T) {
	ls := NewLeadStore(testSimulator(false), StaticSource{Records: seedLeads()})
	ctx := context.Background()

	leads, err := ls.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	leads[0].Email = "tampered@evil.com"

	reloaded, err := ls.LoadAll(ctx)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded[0].Email != "a@x.com" {
		t.Errorf("store state leaked: email = %q", reloaded[0].Email)
	}
}

func TestLoadAllSeedFailure(t *testing.T) {
	src := &countingSource{err: errors.New("disk on fire")}
	ls := NewLeadStore(testSimulator(false), src)
	ctx := context.Background()

	_, err := ls.LoadAll(ctx)
	if !errors.Is(err, ErrLoad) {
		t.Fatalf("expected ErrLoad, got %v", err)
	}
	if ls.Loaded() {
		t.Error("cache must stay unpopulated after a failed fetch")
	}

	// A manual retry re-invokes the fetch.
	src.err = nil
	src.records = seedLeads()
	leads, err := ls.LoadAll(ctx)
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(leads) != 3 {
		t.Errorf("expected 3 leads after retry, got %d", len(leads))
	}
	if src.calls != 2 {
		t.Errorf("expected 2 fetch attempts, got %d", src.calls)
	}
}

func TestPatchMergesPresentFieldsOnly(t *testing.T) {
	ls := NewLeadStore(testSimulator(false), StaticSource{Records: seedLeads()})
	ctx := context.Background()

	status := models.StatusQualified
	if err := ls.Patch(ctx, "1", models.LeadPatch{Status: &status}); err != nil {
		t.Fatalf("Patch failed: %v", err)
	}

	leads, err := ls.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if leads[0].Status != models.StatusQualified {
		t.Errorf("expected status Qualified, got %s", leads[0].Status)
	}
	if leads[0].Email != "a@x.com" {
		t.Errorf("email must be untouched, got %q", leads[0].Email)
	}
	if leads[1] != seedLeads()[1] || leads[2] != seedLeads()[2] {
		t.Error("other entries must be untouched")
	}
}

func TestPatchImplicitlyLoads(t *testing.T) {
	src := &countingSource{records: seedLeads()}
	ls := NewLeadStore(testSimulator(false), src)
	ctx := context.Background()

	email := "new@x.com"
	if err := ls.Patch(ctx, "2", models.LeadPatch{Email: &email}); err != nil {
		t.Fatalf("Patch failed: %v", err)
	}
	if src.calls != 1 {
		t.Errorf("patch on an unpopulated store must trigger one load, got %d", src.calls)
	}

	leads, _ := ls.LoadAll(ctx)
	if leads[1].Email != "new@x.com" {
		t.Errorf("expected patched email, got %q", leads[1].Email)
	}
}

func TestPatchFailureIsAtomic(t *testing.T) {
	ls := NewLeadStore(testSimulator(false), StaticSource{Records: seedLeads()})
	ctx := context.Background()
	if _, err := ls.LoadAll(ctx); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	// Force the injected failure for the patch only.
	ls.sim.Sampler = FixedSampler{Fail: true}
	email := "never@applied.com"
	err := ls.Patch(ctx, "1", models.LeadPatch{Email: &email})
	if !errors.Is(err, ErrSimulatedNetwork) {
		t.Fatalf("expected ErrSimulatedNetwork, got %v", err)
	}

	ls.sim.Sampler = FixedSampler{Fail: false}
	leads, _ := ls.LoadAll(ctx)
	if leads[0].Email != "a@x.com" {
		t.Errorf("failed patch must not mutate anything, got email %q", leads[0].Email)
	}
}

func TestPatchUnknownID(t *testing.T) {
	ls := NewLeadStore(testSimulator(false), StaticSource{Records: seedLeads()})
	ctx := context.Background()

	email := "ghost@x.com"
	err := ls.Patch(ctx, "999", models.LeadPatch{Email: &email})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
