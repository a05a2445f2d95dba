package breed

import (
	"cicadasim/internal/rng"
)

// Emergent is one genotype's adults surfacing this year. The engine only
// reports genotypes whose emergent count is strictly positive.
type Emergent struct {
	Period int
	Count  float64
}

// Offspring maps genotype period to offspring count. Absent periods mean
// zero; use At for lookups.
type Offspring map[int]float64

// At returns the offspring count for a period, defaulting to zero.
func (o Offspring) At(period int) float64 {
	if o == nil {
		return 0
	}
	return o[period]
}

// Breeder turns one breeding season's emergent adults into offspring counts.
// Implementations are stateless across calls and must return an empty mapping
// for an empty or zero-total emergent set rather than fault.
type Breeder interface {
	Name() string
	Breed(rng rng.Source, emergent []Emergent) (Offspring, error)
}

func totalEmergent(emergent []Emergent) float64 {
	total := 0.0
	for _, e := range emergent {
		total += e.Count
	}
	return total
}
