package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cicadasim/internal/breed"
	"cicadasim/internal/model"
	"cicadasim/internal/render"
	"cicadasim/internal/sim"
	"cicadasim/internal/storage"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "reset":
		return runReset(ctx, args[1:])
	case "run":
		return runRun(ctx, args[1:])
	case "census":
		return runCensus(ctx, args[1:])
	case "summary":
		return runSummary(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "scenarios":
		return runScenarios(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "cicadasim.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.Init(ctx); err != nil {
		return err
	}

	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "cicadasim.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.Init(ctx); err != nil {
		return err
	}
	if resetter, ok := store.(storage.Resetter); ok {
		if err := resetter.Reset(ctx); err != nil {
			return err
		}
	}

	fmt.Printf("reset store=%s\n", *storeKind)
	return nil
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	scenarioName := fs.String("scenario", "random-pair-primes", "built-in scenario name")
	configPath := fs.String("config", "", "optional scenario config JSON path")
	runID := fs.String("run-id", "", "explicit run id (optional)")
	breederName := fs.String("breeder", "", "breeding policy: "+strings.Join(breed.Names(), "|"))
	periodsSpec := fs.String("periods", "", "genotype periods, e.g. 1-12 or 3,5,7")
	larvalSurvival := fs.Float64("larval-survival", 0, "larval survival rate per year [0,1]")
	emergenceSuccess := fs.Float64("emergence-success", 0, "emergence success rate [0,1]")
	clutchRate := fs.Float64("clutch", 0, "clutch rate")
	initialSize := fs.Float64("initial-size", 0, "initial population per genotype")
	saturated := fs.Bool("saturated", false, "spread the initial population across all age slots")
	randomInitial := fs.Bool("random-initial", false, "draw initial sizes from a normal distribution")
	years := fs.Int("years", 0, "simulation length in years")
	seed := fs.Int64("seed", 0, "rng seed")
	quiet := fs.Bool("quiet", false, "suppress census output during the run")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "cicadasim.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	var scenario model.Scenario
	var err error
	if *configPath != "" {
		scenario, err = loadScenarioFromConfig(*configPath)
	} else {
		scenario, err = scenarioByName(*scenarioName)
	}
	if err != nil {
		return err
	}

	if setFlags["breeder"] {
		scenario.Breeder = *breederName
	}
	if setFlags["periods"] {
		scenario.Periods, err = parsePeriods(*periodsSpec)
		if err != nil {
			return err
		}
	}
	if setFlags["larval-survival"] {
		scenario.LarvalSurvivalRate = *larvalSurvival
	}
	if setFlags["emergence-success"] {
		scenario.EmergenceSuccessRate = *emergenceSuccess
	}
	if setFlags["clutch"] {
		scenario.ClutchRate = *clutchRate
	}
	if setFlags["initial-size"] {
		scenario.InitialSize = *initialSize
	}
	if setFlags["saturated"] {
		scenario.InitialSaturated = *saturated
	}
	if setFlags["random-initial"] {
		scenario.InitialRandom = *randomInitial
	}
	if setFlags["years"] {
		scenario.Years = *years
	}
	if setFlags["seed"] {
		scenario.Seed = *seed
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	var observer func(model.Census)
	if !*quiet {
		observer = func(census model.Census) {
			fmt.Print(render.Census(census))
			fmt.Println()
		}
	}

	result, err := sim.Run(ctx, sim.Config{
		RunID:    *runID,
		Scenario: scenario,
		Store:    store,
		Observer: observer,
	})
	if err != nil {
		return err
	}

	fmt.Print(render.Summary(result.Summary))
	return nil
}

func runCensus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("census", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id to inspect")
	lastOnly := fs.Bool("last", false, "print only the final census")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "cicadasim.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return usageError("census requires -run-id")
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	history, ok, err := store.GetCensusHistory(ctx, *runID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("census history not found: %s", *runID)
	}

	if *lastOnly && len(history) > 0 {
		history = history[len(history)-1:]
	}
	for _, census := range history {
		fmt.Print(render.Census(census))
		fmt.Println()
	}
	return nil
}

func runSummary(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id to inspect")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "cicadasim.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return usageError("summary requires -run-id")
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	summary, ok, err := store.GetRunSummary(ctx, *runID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("run summary not found: %s", *runID)
	}

	fmt.Print(render.Summary(summary))
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "cicadasim.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	summaries, err := store.ListRunSummaries(ctx)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}
	for _, summary := range summaries {
		fmt.Print(render.Summary(summary))
	}
	return nil
}

func runScenarios(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("scenarios", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, name := range scenarioNames() {
		scenario, err := scenarioByName(name)
		if err != nil {
			return err
		}
		fmt.Printf("%s: breeder=%s periods=%d-%d years=%d\n",
			name, scenario.Breeder, scenario.Periods[0], scenario.Periods[len(scenario.Periods)-1], scenario.Years)
	}
	fmt.Printf("breeders: %s\n", strings.Join(breed.Names(), " "))
	return nil
}

// parsePeriods accepts "lo-hi" ranges and comma-separated lists.
func parsePeriods(spec string) ([]int, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, fmt.Errorf("periods spec is empty")
	}

	if lo, hi, ok := strings.Cut(spec, "-"); ok {
		from, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("bad periods range %q: %w", spec, err)
		}
		to, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("bad periods range %q: %w", spec, err)
		}
		if to < from {
			return nil, fmt.Errorf("bad periods range %q: end before start", spec)
		}
		return periodRange(from, to), nil
	}

	parts := strings.Split(spec, ",")
	periods := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("bad period %q: %w", part, err)
		}
		periods = append(periods, n)
	}
	return periods, nil
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: cicadactl <init|reset|run|census|summary|runs|scenarios> [flags]", msg)
}
