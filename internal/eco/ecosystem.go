package eco

import (
	"fmt"
	"math"
	"sort"

	"cicadasim/internal/breed"
	"cicadasim/internal/model"
	"cicadasim/internal/rng"
)

// Config carries the construction parameters for an ecosystem. Rates are
// fractions in [0,1]; InitialSize is the target population per genotype.
type Config struct {
	Periods              []int
	LarvalSurvivalRate   float64
	EmergenceSuccessRate float64
	InitialSize          float64
	InitialSaturated     bool
	InitialRandom        bool
}

// Ecosystem owns one cohort queue per genotype and advances them a year at a
// time. Index 0 of a queue is the cohort about to emerge; the last index is
// the cohort born this year. A queue's length always equals its period.
type Ecosystem struct {
	periods []int
	counts  map[int][]float64
	gen     int

	larvalSurvivalRate   float64
	emergenceSuccessRate float64

	breeder breed.Breeder
	rng     rng.Source
}

// New validates the configuration and builds the initial cohort queues.
// With InitialRandom the per-genotype size is drawn from a normal
// distribution centered at InitialSize with a 5% standard deviation and
// floored; with InitialSaturated the size is spread evenly (fractionally)
// across all age slots, otherwise it is placed in the oldest slot alone.
func New(cfg Config, breeder breed.Breeder, source rng.Source) (*Ecosystem, error) {
	if len(cfg.Periods) == 0 {
		return nil, fmt.Errorf("at least one genotype period is required")
	}
	seen := make(map[int]struct{}, len(cfg.Periods))
	for _, period := range cfg.Periods {
		if period <= 0 {
			return nil, fmt.Errorf("genotype period must be positive: %d", period)
		}
		if _, dup := seen[period]; dup {
			return nil, fmt.Errorf("duplicate genotype period: %d", period)
		}
		seen[period] = struct{}{}
	}
	if cfg.LarvalSurvivalRate < 0 || cfg.LarvalSurvivalRate > 1 {
		return nil, fmt.Errorf("larval survival rate out of range [0,1]: %v", cfg.LarvalSurvivalRate)
	}
	if cfg.EmergenceSuccessRate < 0 || cfg.EmergenceSuccessRate > 1 {
		return nil, fmt.Errorf("emergence success rate out of range [0,1]: %v", cfg.EmergenceSuccessRate)
	}
	if cfg.InitialSize <= 0 {
		return nil, fmt.Errorf("initial size must be positive: %v", cfg.InitialSize)
	}
	if breeder == nil {
		return nil, fmt.Errorf("breeder is required")
	}
	if source == nil {
		return nil, fmt.Errorf("random source is required")
	}

	periods := append([]int(nil), cfg.Periods...)
	sort.Ints(periods)

	counts := make(map[int][]float64, len(periods))
	for _, period := range periods {
		size := cfg.InitialSize
		if cfg.InitialRandom {
			size = math.Floor(source.Normal(size, 0.05*size))
			if size < 0 {
				size = 0
			}
		}
		queue := make([]float64, period)
		if cfg.InitialSaturated {
			share := size / float64(period)
			for i := range queue {
				queue[i] = share
			}
		} else {
			queue[period-1] = size
		}
		counts[period] = queue
	}

	return &Ecosystem{
		periods:              periods,
		counts:               counts,
		larvalSurvivalRate:   cfg.LarvalSurvivalRate,
		emergenceSuccessRate: cfg.EmergenceSuccessRate,
		breeder:              breeder,
		rng:                  source,
	}, nil
}

// Tick advances the ecosystem by one year: the mature cohort of every
// genotype attempts emergence, the remaining cohorts age with larval
// mortality, emergent adults breed, and each queue gains the resulting
// offspring cohort at its tail.
func (e *Ecosystem) Tick() error {
	e.gen++

	emergent := make([]breed.Emergent, 0, len(e.periods))
	for _, period := range e.periods {
		queue := e.counts[period]
		surfaced := math.Floor(queue[0] * e.emergenceSuccessRate)
		queue = queue[1:]
		if surfaced > 0 {
			emergent = append(emergent, breed.Emergent{Period: period, Count: surfaced})
		}
		for i := range queue {
			queue[i] = math.Floor(queue[i] * e.larvalSurvivalRate)
		}
		e.counts[period] = queue
	}

	offspring, err := e.breeder.Breed(e.rng, emergent)
	if err != nil {
		return fmt.Errorf("breed generation %d: %w", e.gen, err)
	}

	for _, period := range e.periods {
		e.counts[period] = append(e.counts[period], offspring.At(period))
	}
	return nil
}

// Generation returns the number of years elapsed.
func (e *Ecosystem) Generation() int {
	return e.gen
}

// Census returns a deep-copy snapshot of the current state, series in
// ascending period order. Reading it never mutates the ecosystem.
func (e *Ecosystem) Census() model.Census {
	series := make([]model.CohortSeries, 0, len(e.periods))
	for _, period := range e.periods {
		series = append(series, model.CohortSeries{
			Period: period,
			Counts: append([]float64(nil), e.counts[period]...),
		})
	}
	return model.Census{Generation: e.gen, Series: series}
}

// TotalPopulation sums every cohort of every genotype.
func (e *Ecosystem) TotalPopulation() float64 {
	total := 0.0
	for _, queue := range e.counts {
		for _, count := range queue {
			total += count
		}
	}
	return total
}
