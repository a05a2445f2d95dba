package cicada

import (
	"context"
	"strings"
	"testing"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := New(context.Background(), Options{StoreKind: "memory"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}

func doublingRequest(runID string) RunRequest {
	return RunRequest{
		RunID:                runID,
		Breeder:              "proportional",
		Periods:              []int{1},
		LarvalSurvivalRate:   1,
		EmergenceSuccessRate: 1,
		ClutchRate:           2,
		InitialSize:          4,
		Years:                5,
		Seed:                 1,
	}
}

func TestRunScenarioRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	summary, err := client.RunScenario(ctx, doublingRequest("pkg-run"))
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.RunID != "pkg-run" || summary.Extinct {
		t.Fatalf("summary = %+v", summary)
	}
	if summary.TotalFinal != 128 {
		t.Fatalf("TotalFinal = %v, want 128", summary.TotalFinal)
	}

	history, err := client.CensusHistory(ctx, "pkg-run")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 6 {
		t.Fatalf("len(history) = %d, want 6", len(history))
	}
	if history[0].Generation != 0 || history[5].Generation != 5 {
		t.Fatalf("generations = %d..%d", history[0].Generation, history[5].Generation)
	}

	stored, err := client.RunSummary(ctx, "pkg-run")
	if err != nil {
		t.Fatalf("summary lookup: %v", err)
	}
	if stored.TotalFinal != summary.TotalFinal || stored.Breeder != "proportional" {
		t.Fatalf("stored summary = %+v", stored)
	}
}

func TestRunScenarioObserver(t *testing.T) {
	client := newTestClient(t)

	var seen int
	req := doublingRequest("pkg-observed")
	req.Observer = func(census Census) {
		seen++
		if len(census.Series) != 1 || census.Series[0].Period != 1 {
			t.Errorf("census = %+v", census)
		}
	}
	if _, err := client.RunScenario(context.Background(), req); err != nil {
		t.Fatalf("run: %v", err)
	}
	if seen != 6 {
		t.Fatalf("observer saw %d records, want 6", seen)
	}
}

func TestRunSummariesListsAllRuns(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	for _, id := range []string{"pkg-b", "pkg-a"} {
		if _, err := client.RunScenario(ctx, doublingRequest(id)); err != nil {
			t.Fatalf("run %s: %v", id, err)
		}
	}

	summaries, err := client.RunSummaries(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("len(summaries) = %d, want 2", len(summaries))
	}
	if summaries[0].RunID != "pkg-a" || summaries[1].RunID != "pkg-b" {
		t.Fatalf("order = %s, %s", summaries[0].RunID, summaries[1].RunID)
	}
}

func TestLookupsReportMissingRuns(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	if _, err := client.CensusHistory(ctx, "ghost"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("history err = %v", err)
	}
	if _, err := client.RunSummary(ctx, "ghost"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("summary err = %v", err)
	}
}

func TestRunScenarioRejectsUnknownBreeder(t *testing.T) {
	client := newTestClient(t)

	req := doublingRequest("pkg-bad")
	req.Breeder = "telepathy"
	if _, err := client.RunScenario(context.Background(), req); err == nil {
		t.Fatal("expected unknown breeder error")
	}
}
