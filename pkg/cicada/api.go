package cicada

import (
	"context"
	"fmt"

	"cicadasim/internal/model"
	"cicadasim/internal/sim"
	"cicadasim/internal/storage"
)

const defaultDBPath = "cicadasim.db"

type Options struct {
	StoreKind string
	DBPath    string
}

// Client is the embedding-friendly front door: it owns a store and runs
// scenarios against it.
type Client struct {
	store storage.Store
}

// RunRequest describes one simulation run.
type RunRequest struct {
	RunID                string
	Breeder              string
	Periods              []int
	LarvalSurvivalRate   float64
	EmergenceSuccessRate float64
	ClutchRate           float64
	InitialSize          float64
	InitialSaturated     bool
	InitialRandom        bool
	Years                int
	Seed                 int64
	Observer             func(Census)
}

// CohortSeries is one genotype's cohort counts, most mature cohort first.
type CohortSeries struct {
	Period int
	Counts []float64
}

// Census is a read-only snapshot of the ecosystem at one generation.
type Census struct {
	Generation int
	Series     []CohortSeries
}

// RunSummary reports the outcome of a completed run.
type RunSummary struct {
	RunID          string
	Breeder        string
	Seed           int64
	Years          int
	YearsExecuted  int
	Extinct        bool
	Survivors      []int
	DominantPeriod int
	DominantCount  float64
	TotalFinal     float64
}

func New(ctx context.Context, opts Options) (*Client, error) {
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	store, err := storage.NewStore(opts.StoreKind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, err
	}
	return &Client{store: store}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// RunScenario executes a run and persists its artifacts.
func (c *Client) RunScenario(ctx context.Context, req RunRequest) (RunSummary, error) {
	var observer func(model.Census)
	if req.Observer != nil {
		observer = func(census model.Census) {
			req.Observer(fromModelCensus(census))
		}
	}

	result, err := sim.Run(ctx, sim.Config{
		RunID: req.RunID,
		Scenario: model.Scenario{
			ID:                   req.RunID,
			Breeder:              req.Breeder,
			Periods:              append([]int(nil), req.Periods...),
			LarvalSurvivalRate:   req.LarvalSurvivalRate,
			EmergenceSuccessRate: req.EmergenceSuccessRate,
			ClutchRate:           req.ClutchRate,
			InitialSize:          req.InitialSize,
			InitialSaturated:     req.InitialSaturated,
			InitialRandom:        req.InitialRandom,
			Years:                req.Years,
			Seed:                 req.Seed,
		},
		Store:    c.store,
		Observer: observer,
	})
	if err != nil {
		return RunSummary{}, err
	}
	return fromModelSummary(result.Summary), nil
}

// CensusHistory returns the recorded census time series for a run.
func (c *Client) CensusHistory(ctx context.Context, runID string) ([]Census, error) {
	history, ok, err := c.store.GetCensusHistory(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("census history not found: %s", runID)
	}
	out := make([]Census, 0, len(history))
	for _, census := range history {
		out = append(out, fromModelCensus(census))
	}
	return out, nil
}

// RunSummary returns the persisted summary for a run.
func (c *Client) RunSummary(ctx context.Context, runID string) (RunSummary, error) {
	summary, ok, err := c.store.GetRunSummary(ctx, runID)
	if err != nil {
		return RunSummary{}, err
	}
	if !ok {
		return RunSummary{}, fmt.Errorf("run summary not found: %s", runID)
	}
	return fromModelSummary(summary), nil
}

// RunSummaries lists every persisted run summary.
func (c *Client) RunSummaries(ctx context.Context) ([]RunSummary, error) {
	summaries, err := c.store.ListRunSummaries(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]RunSummary, 0, len(summaries))
	for _, summary := range summaries {
		out = append(out, fromModelSummary(summary))
	}
	return out, nil
}

func fromModelCensus(census model.Census) Census {
	series := make([]CohortSeries, 0, len(census.Series))
	for _, s := range census.Series {
		series = append(series, CohortSeries{
			Period: s.Period,
			Counts: append([]float64(nil), s.Counts...),
		})
	}
	return Census{Generation: census.Generation, Series: series}
}

func fromModelSummary(summary model.RunSummary) RunSummary {
	return RunSummary{
		RunID:          summary.RunID,
		Breeder:        summary.Breeder,
		Seed:           summary.Seed,
		Years:          summary.Years,
		YearsExecuted:  summary.YearsExecuted,
		Extinct:        summary.Extinct,
		Survivors:      append([]int(nil), summary.Survivors...),
		DominantPeriod: summary.DominantPeriod,
		DominantCount:  summary.DominantCount,
		TotalFinal:     summary.TotalFinal,
	}
}
