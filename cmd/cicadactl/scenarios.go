package main

import (
	"fmt"
	"sort"

	"cicadasim/internal/model"
)

// Built-in scenarios. The hybrid preset follows Yoshimura et al's parameters
// and does not reliably produce prime dominance; the other two do.
func builtinScenarios() map[string]model.Scenario {
	return map[string]model.Scenario{
		"hybrid-yoshimura": {
			Breeder:              "hybrid",
			Periods:              periodRange(1, 20),
			LarvalSurvivalRate:   0.99,
			EmergenceSuccessRate: 0.15,
			ClutchRate:           5,
			InitialSize:          1000,
			InitialSaturated:     true,
			Years:                100,
			Seed:                 1,
		},
		"proportional-primes": {
			Breeder:              "proportional",
			Periods:              periodRange(1, 10),
			LarvalSurvivalRate:   1,
			EmergenceSuccessRate: 0.5,
			ClutchRate:           3,
			InitialSize:          10,
			InitialRandom:        true,
			Years:                100,
			Seed:                 1,
		},
		"random-pair-primes": {
			Breeder:              "random_pair",
			Periods:              periodRange(1, 12),
			LarvalSurvivalRate:   1,
			EmergenceSuccessRate: 0.5,
			ClutchRate:           6,
			InitialSize:          12,
			Years:                100,
			Seed:                 1,
		},
	}
}

func scenarioByName(name string) (model.Scenario, error) {
	scenario, ok := builtinScenarios()[name]
	if !ok {
		return model.Scenario{}, fmt.Errorf("unknown scenario: %s (have %v)", name, scenarioNames())
	}
	return scenario, nil
}

func scenarioNames() []string {
	scenarios := builtinScenarios()
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func periodRange(from, to int) []int {
	periods := make([]int, 0, to-from+1)
	for p := from; p <= to; p++ {
		periods = append(periods, p)
	}
	return periods
}
