package breed

import (
	"fmt"
	"math"

	"cicadasim/internal/rng"
)

// RandomPairBreeder models literal mate-finding: every emergent adult enters
// a single pool, the pool is shuffled, and each adult in the first half is
// paired with its counterpart in the second half. Only pairs with matching
// periods breed, each contributing one clutch. An odd adult is left unpaired.
type RandomPairBreeder struct {
	ClutchRate float64
}

func (RandomPairBreeder) Name() string {
	return "random_pair"
}

func (b RandomPairBreeder) Breed(source rng.Source, emergent []Emergent) (Offspring, error) {
	offspring := make(Offspring)
	if len(emergent) == 0 {
		return offspring, nil
	}
	if source == nil {
		return nil, fmt.Errorf("random source is required")
	}

	adults := make([]int, 0, int(totalEmergent(emergent)))
	for _, e := range emergent {
		for i := 0; i < int(e.Count); i++ {
			adults = append(adults, e.Period)
		}
	}
	source.Shuffle(len(adults), func(i, j int) {
		adults[i], adults[j] = adults[j], adults[i]
	})

	half := len(adults) / 2
	pairs := make(map[int]float64)
	for i := 0; i < half; i++ {
		if adults[i] == adults[i+half] {
			pairs[adults[i]]++
		}
	}
	for period, n := range pairs {
		offspring[period] = math.Floor(n * b.ClutchRate)
	}
	return offspring, nil
}
