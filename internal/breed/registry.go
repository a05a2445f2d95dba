package breed

import (
	"errors"
	"fmt"
	"sort"
)

var ErrBreederNotFound = errors.New("breeder not found")

type constructor func(clutchRate float64) Breeder

var breederRegistry = map[string]constructor{
	"hybrid":       func(clutch float64) Breeder { return HybridBreeder{ClutchRate: clutch} },
	"proportional": func(clutch float64) Breeder { return ProportionalBreeder{ClutchRate: clutch} },
	"random_pair":  func(clutch float64) Breeder { return RandomPairBreeder{ClutchRate: clutch} },
}

// New constructs a registered breeding policy by name.
func New(name string, clutchRate float64) (Breeder, error) {
	if clutchRate < 0 {
		return nil, fmt.Errorf("clutch rate must be non-negative: %v", clutchRate)
	}
	build, ok := breederRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBreederNotFound, name)
	}
	return build(clutchRate), nil
}

// Names lists the registered breeding policies in sorted order.
func Names() []string {
	names := make([]string, 0, len(breederRegistry))
	for name := range breederRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
