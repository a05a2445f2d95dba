package sim

import (
	"context"
	"fmt"

	"cicadasim/internal/breed"
	"cicadasim/internal/eco"
	"cicadasim/internal/model"
	"cicadasim/internal/rng"
	"cicadasim/internal/storage"
)

// Reporting cadence: short runs record every year, long runs every 97th,
// and the final state is always recorded.
const longRunThreshold = 200
const longRunCadence = 97

// Config describes one simulation run. Store is optional; without it no
// artifacts are persisted. Observer, when set, receives every recorded
// census as the run progresses.
type Config struct {
	RunID    string
	Scenario model.Scenario
	Store    storage.Store
	Observer func(model.Census)
}

// Result carries the recorded artifacts of a completed run.
type Result struct {
	RunID   string
	Final   model.Census
	History []model.Census
	Summary model.RunSummary
}

// Run executes a scenario year by year: it wires the seeded random source,
// the named breeding policy, and the ecosystem, records census snapshots at
// the reporting cadence, and stops early on cancellation or total extinction.
func Run(ctx context.Context, cfg Config) (Result, error) {
	scenario := cfg.Scenario
	if scenario.Years <= 0 {
		return Result{}, fmt.Errorf("scenario years must be positive: %d", scenario.Years)
	}

	breeder, err := breed.New(scenario.Breeder, scenario.ClutchRate)
	if err != nil {
		return Result{}, err
	}
	source := rng.New(scenario.Seed)

	world, err := eco.New(eco.Config{
		Periods:              scenario.Periods,
		LarvalSurvivalRate:   scenario.LarvalSurvivalRate,
		EmergenceSuccessRate: scenario.EmergenceSuccessRate,
		InitialSize:          scenario.InitialSize,
		InitialSaturated:     scenario.InitialSaturated,
		InitialRandom:        scenario.InitialRandom,
	}, breeder, source)
	if err != nil {
		return Result{}, err
	}

	runID := cfg.RunID
	if runID == "" {
		runID = fmt.Sprintf("run:%s:%d", scenario.Breeder, scenario.Seed)
	}

	cadence := 1
	if scenario.Years > longRunThreshold {
		cadence = longRunCadence
	}

	var history []model.Census
	record := func(c model.Census) {
		history = append(history, c)
		if cfg.Observer != nil {
			cfg.Observer(c)
		}
	}

	extinct := false
	yearsExecuted := 0
	for year := 0; year < scenario.Years; year++ {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		if year%cadence == 0 {
			record(world.Census())
		}
		if err := world.Tick(); err != nil {
			return Result{}, err
		}
		yearsExecuted++

		if world.TotalPopulation() == 0 {
			extinct = true
			break
		}
	}

	final := world.Census()
	record(final)

	summary := summarize(runID, scenario, final, yearsExecuted, extinct)
	result := Result{
		RunID:   runID,
		Final:   final,
		History: history,
		Summary: summary,
	}

	if cfg.Store != nil {
		scenario.VersionedRecord = storage.Stamp()
		if scenario.ID == "" {
			scenario.ID = runID
		}
		if err := cfg.Store.SaveScenario(ctx, scenario); err != nil {
			return Result{}, err
		}
		if err := cfg.Store.SaveCensusHistory(ctx, runID, history); err != nil {
			return Result{}, err
		}
		if err := cfg.Store.SaveRunSummary(ctx, summary); err != nil {
			return Result{}, err
		}
	}

	return result, nil
}

func summarize(runID string, scenario model.Scenario, final model.Census, yearsExecuted int, extinct bool) model.RunSummary {
	summary := model.RunSummary{
		VersionedRecord: storage.Stamp(),
		RunID:           runID,
		ScenarioID:      scenario.ID,
		Breeder:         scenario.Breeder,
		Seed:            scenario.Seed,
		Years:           scenario.Years,
		YearsExecuted:   yearsExecuted,
		Extinct:         extinct,
	}
	if summary.ScenarioID == "" {
		summary.ScenarioID = runID
	}

	for _, series := range final.Series {
		seriesTotal := 0.0
		for _, count := range series.Counts {
			seriesTotal += count
		}
		summary.TotalFinal += seriesTotal
		if seriesTotal > 0 {
			summary.Survivors = append(summary.Survivors, series.Period)
		}
		if seriesTotal > summary.DominantCount {
			summary.DominantCount = seriesTotal
			summary.DominantPeriod = series.Period
		}
	}
	summary.Extinct = extinct || summary.TotalFinal == 0
	return summary
}
