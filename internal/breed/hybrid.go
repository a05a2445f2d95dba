package breed

import (
	"math"

	"cicadasim/internal/rng"
)

// HybridBreeder pairs every emergent adult with every other in proportion to
// population share (Yoshimura et al, 2008). All pairs breed; hybrid offspring
// take the shorter of the two parent periods, and clutch size scales with the
// child's own period. Best used with a larval survival rate below 1.
type HybridBreeder struct {
	ClutchRate float64
}

func (HybridBreeder) Name() string {
	return "hybrid"
}

func (b HybridBreeder) Breed(_ rng.Source, emergent []Emergent) (Offspring, error) {
	offspring := make(Offspring)
	total := totalEmergent(emergent)
	if total <= 0 {
		return offspring, nil
	}

	for _, first := range emergent {
		for _, second := range emergent {
			childPeriod := first.Period
			if second.Period < childPeriod {
				childPeriod = second.Period
			}
			breedingPairs := first.Count * second.Count / total
			offspring[childPeriod] += math.Floor(breedingPairs * b.ClutchRate * float64(childPeriod))
		}
	}
	return offspring, nil
}
