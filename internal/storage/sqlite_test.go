//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"cicadasim/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "cicadasim.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSQLiteStoreScenarioRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	input := testScenario("s1")
	if err := store.SaveScenario(ctx, input); err != nil {
		t.Fatalf("save scenario: %v", err)
	}

	output, ok, err := store.GetScenario(ctx, "s1")
	if err != nil {
		t.Fatalf("get scenario: %v", err)
	}
	if !ok {
		t.Fatal("expected scenario to exist")
	}
	if !reflect.DeepEqual(input, output) {
		t.Fatalf("scenario mismatch: %v vs %v", input, output)
	}

	if _, ok, err := store.GetScenario(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing scenario: ok=%v err=%v", ok, err)
	}
}

func TestSQLiteStoreUpsertsScenario(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	scenario := testScenario("s1")
	if err := store.SaveScenario(ctx, scenario); err != nil {
		t.Fatalf("save scenario: %v", err)
	}
	scenario.Years = 500
	if err := store.SaveScenario(ctx, scenario); err != nil {
		t.Fatalf("resave scenario: %v", err)
	}

	output, _, err := store.GetScenario(ctx, "s1")
	if err != nil {
		t.Fatalf("get scenario: %v", err)
	}
	if output.Years != 500 {
		t.Fatalf("years = %d, want 500", output.Years)
	}
}

func TestSQLiteStoreCensusHistoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	input := []model.Census{
		{Generation: 0, Series: []model.CohortSeries{{Period: 3, Counts: []float64{0, 0, 12}}}},
		{Generation: 100, Series: []model.CohortSeries{{Period: 3, Counts: []float64{4, 8, 16}}}},
	}
	if err := store.SaveCensusHistory(ctx, "run-1", input); err != nil {
		t.Fatalf("save history: %v", err)
	}

	output, ok, err := store.GetCensusHistory(ctx, "run-1")
	if err != nil {
		t.Fatalf("get history: %v", err)
	}
	if !ok {
		t.Fatal("expected history to exist")
	}
	if !reflect.DeepEqual(input, output) {
		t.Fatalf("history mismatch: %v vs %v", input, output)
	}
}

func TestSQLiteStoreRunSummariesAndReset(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	for _, id := range []string{"run-b", "run-a"} {
		summary := model.RunSummary{
			VersionedRecord: Stamp(),
			RunID:           id,
			Breeder:         "hybrid",
			Years:           100,
			YearsExecuted:   100,
		}
		if err := store.SaveRunSummary(ctx, summary); err != nil {
			t.Fatalf("save summary %s: %v", id, err)
		}
	}

	all, err := store.ListRunSummaries(ctx)
	if err != nil {
		t.Fatalf("list summaries: %v", err)
	}
	if len(all) != 2 || all[0].RunID != "run-a" || all[1].RunID != "run-b" {
		t.Fatalf("list order = %v", all)
	}

	if err := store.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	all, err = store.ListRunSummaries(ctx)
	if err != nil {
		t.Fatalf("list after reset: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty list after reset, got %v", all)
	}
}
