package storage

import (
	"context"
	"errors"
	"sort"
	"sync"

	"cicadasim/internal/model"
)

type MemoryStore struct {
	mu          sync.RWMutex
	initialized bool
	scenarios   map[string]model.Scenario
	histories   map[string][]model.Census
	summaries   map[string]model.RunSummary
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.scenarios = make(map[string]model.Scenario)
	s.histories = make(map[string][]model.Census)
	s.summaries = make(map[string]model.RunSummary)
	return nil
}

func (s *MemoryStore) Reset(ctx context.Context) error {
	return s.Init(ctx)
}

func (s *MemoryStore) SaveScenario(_ context.Context, scenario model.Scenario) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.scenarios[scenario.ID] = scenario
	return nil
}

func (s *MemoryStore) GetScenario(_ context.Context, id string) (model.Scenario, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	scenario, ok := s.scenarios[id]
	return scenario, ok, nil
}

func (s *MemoryStore) SaveCensusHistory(_ context.Context, runID string, history []model.Census) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.histories[runID] = append([]model.Census(nil), history...)
	return nil
}

func (s *MemoryStore) GetCensusHistory(_ context.Context, runID string) ([]model.Census, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.histories[runID]
	if !ok {
		return nil, false, nil
	}
	return append([]model.Census(nil), history...), true, nil
}

func (s *MemoryStore) SaveRunSummary(_ context.Context, summary model.RunSummary) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return errors.New("store is not initialized")
	}
	s.summaries[summary.RunID] = summary
	return nil
}

func (s *MemoryStore) GetRunSummary(_ context.Context, runID string) (model.RunSummary, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	summary, ok := s.summaries[runID]
	return summary, ok, nil
}

func (s *MemoryStore) ListRunSummaries(_ context.Context) ([]model.RunSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RunSummary, 0, len(s.summaries))
	for _, summary := range s.summaries {
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].RunID < out[j].RunID
	})
	return out, nil
}
