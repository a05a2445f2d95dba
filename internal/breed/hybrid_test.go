package breed

import "testing"

func TestHybridBreederPairEnumeration(t *testing.T) {
	b := HybridBreeder{ClutchRate: 2}
	emergent := []Emergent{
		{Period: 3, Count: 10},
		{Period: 5, Count: 6},
	}

	offspring, err := b.Breed(nil, emergent)
	if err != nil {
		t.Fatalf("breed: %v", err)
	}

	// T = 16. Self pair (3,3): floor(100/16 * 2 * 3) = 37. Cross pairs
	// (3,5) and (5,3): floor(60/16 * 2 * 3) = 22 each. Self pair (5,5):
	// floor(36/16 * 2 * 5) = 22.
	if got := offspring.At(3); got != 81 {
		t.Fatalf("offspring[3] = %v, want 81", got)
	}
	if got := offspring.At(5); got != 22 {
		t.Fatalf("offspring[5] = %v, want 22", got)
	}
}

func TestHybridBreederHybridsTakeShorterPeriod(t *testing.T) {
	b := HybridBreeder{ClutchRate: 1}
	offspring, err := b.Breed(nil, []Emergent{
		{Period: 13, Count: 4},
		{Period: 17, Count: 4},
	})
	if err != nil {
		t.Fatalf("breed: %v", err)
	}

	// T = 8. Cross pairs contribute to period 13 only; period 17 keeps
	// just its self pair: floor(16/8 * 1 * 17) = 34.
	if got := offspring.At(17); got != 34 {
		t.Fatalf("offspring[17] = %v, want 34", got)
	}
	want := 26.0 + 26 + 26 // self pair plus both cross directions
	if got := offspring.At(13); got != want {
		t.Fatalf("offspring[13] = %v, want %v", got, want)
	}
}

func TestHybridBreederEmptyEmergent(t *testing.T) {
	b := HybridBreeder{ClutchRate: 5}
	offspring, err := b.Breed(nil, nil)
	if err != nil {
		t.Fatalf("breed: %v", err)
	}
	if len(offspring) != 0 {
		t.Fatalf("expected empty offspring, got %v", offspring)
	}
	if got := offspring.At(3); got != 0 {
		t.Fatalf("default lookup = %v, want 0", got)
	}
}
