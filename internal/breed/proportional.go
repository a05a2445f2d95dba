package breed

import (
	"math"

	"cicadasim/internal/rng"
)

// ProportionalBreeder gives each genotype breeding success proportional to
// the square of its share of the emergent adults. Only matched genotypes
// breed, so dominant periods compound and no hybrids appear.
type ProportionalBreeder struct {
	ClutchRate float64
}

func (ProportionalBreeder) Name() string {
	return "proportional"
}

func (b ProportionalBreeder) Breed(_ rng.Source, emergent []Emergent) (Offspring, error) {
	offspring := make(Offspring)
	total := totalEmergent(emergent)
	if total <= 0 {
		return offspring, nil
	}

	for _, e := range emergent {
		offspring[e.Period] += math.Floor(e.Count * (e.Count / total) * b.ClutchRate)
	}
	return offspring, nil
}
