package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"cicadasim/internal/model"
)

// loadScenarioFromConfig reads a JSON scenario file. A config may start from
// a built-in preset via "scenario" and override individual fields; absent
// fields keep the preset's values.
func loadScenarioFromConfig(path string) (model.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Scenario{}, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Scenario{}, fmt.Errorf("parse scenario config %s: %w", path, err)
	}

	var scenario model.Scenario
	if name, ok := asString(raw["scenario"]); ok {
		scenario, err = scenarioByName(name)
		if err != nil {
			return model.Scenario{}, err
		}
	}

	if v, ok := asString(raw["id"]); ok {
		scenario.ID = v
	}
	if v, ok := asString(raw["breeder"]); ok {
		scenario.Breeder = v
	}
	if v, ok := asIntSlice(raw["periods"]); ok {
		scenario.Periods = v
	}
	if v, ok := asFloat64(raw["larval_survival_rate"]); ok {
		scenario.LarvalSurvivalRate = v
	}
	if v, ok := asFloat64(raw["emergence_success_rate"]); ok {
		scenario.EmergenceSuccessRate = v
	}
	if v, ok := asFloat64(raw["clutch_rate"]); ok {
		scenario.ClutchRate = v
	}
	if v, ok := asFloat64(raw["initial_size"]); ok {
		scenario.InitialSize = v
	}
	if v, ok := asBool(raw["initial_saturated"]); ok {
		scenario.InitialSaturated = v
	}
	if v, ok := asBool(raw["initial_random"]); ok {
		scenario.InitialRandom = v
	}
	if v, ok := asInt(raw["years"]); ok {
		scenario.Years = v
	}
	if v, ok := asInt64(raw["seed"]); ok {
		scenario.Seed = v
	}

	if scenario.Breeder == "" {
		return model.Scenario{}, fmt.Errorf("scenario config %s: breeder is required", path)
	}
	if len(scenario.Periods) == 0 {
		return model.Scenario{}, fmt.Errorf("scenario config %s: periods are required", path)
	}
	return scenario, nil
}

func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

func asFloat64(v any) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func asInt(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func asInt64(v any) (int64, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, false
	}
	return int64(f), true
}

func asIntSlice(v any) ([]int, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		n, ok := asInt(item)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
