package storage

import (
	"context"

	"cicadasim/internal/model"
)

// Store persists simulation run artifacts: the scenario that produced a run,
// its census time series, and its summary. Gets report absence with a false
// second return rather than an error.
type Store interface {
	Init(ctx context.Context) error
	SaveScenario(ctx context.Context, scenario model.Scenario) error
	GetScenario(ctx context.Context, id string) (model.Scenario, bool, error)
	SaveCensusHistory(ctx context.Context, runID string, history []model.Census) error
	GetCensusHistory(ctx context.Context, runID string) ([]model.Census, bool, error)
	SaveRunSummary(ctx context.Context, summary model.RunSummary) error
	GetRunSummary(ctx context.Context, runID string) (model.RunSummary, bool, error)
	ListRunSummaries(ctx context.Context) ([]model.RunSummary, error)
}

// Resetter is implemented by stores that can drop all persisted artifacts.
type Resetter interface {
	Reset(ctx context.Context) error
}
