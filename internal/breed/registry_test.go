package breed

import (
	"errors"
	"testing"
)

func TestNewConstructsEachPolicy(t *testing.T) {
	for _, name := range Names() {
		breeder, err := New(name, 2.0)
		if err != nil {
			t.Fatalf("new %s: %v", name, err)
		}
		if breeder.Name() != name {
			t.Fatalf("breeder name = %s, want %s", breeder.Name(), name)
		}
	}
}

func TestNewUnknownBreeder(t *testing.T) {
	_, err := New("parthenogenesis", 1.0)
	if !errors.Is(err, ErrBreederNotFound) {
		t.Fatalf("expected ErrBreederNotFound, got %v", err)
	}
}

func TestNewRejectsNegativeClutch(t *testing.T) {
	if _, err := New("hybrid", -1); err == nil {
		t.Fatal("expected negative clutch rate error")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	want := []string{"hybrid", "proportional", "random_pair"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
}
