package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// Scenario holds everything needed to reproduce a simulation run.
type Scenario struct {
	VersionedRecord
	ID                   string  `json:"id"`
	Breeder              string  `json:"breeder"`
	Periods              []int   `json:"periods"`
	LarvalSurvivalRate   float64 `json:"larval_survival_rate"`
	EmergenceSuccessRate float64 `json:"emergence_success_rate"`
	ClutchRate           float64 `json:"clutch_rate"`
	InitialSize          float64 `json:"initial_size"`
	InitialSaturated     bool    `json:"initial_saturated"`
	InitialRandom        bool    `json:"initial_random"`
	Years                int     `json:"years"`
	Seed                 int64   `json:"seed"`
}

// CohortSeries is one genotype's cohort counts ordered from the most mature
// cohort (index 0, emerging next tick) to the newest (age zero).
type CohortSeries struct {
	Period int       `json:"period"`
	Counts []float64 `json:"counts"`
}

// Census is a point-in-time snapshot of the whole ecosystem, series sorted by
// ascending period.
type Census struct {
	Generation int            `json:"generation"`
	Series     []CohortSeries `json:"series"`
}

// RunSummary records the outcome of one completed simulation run.
type RunSummary struct {
	VersionedRecord
	RunID          string  `json:"run_id"`
	ScenarioID     string  `json:"scenario_id"`
	Breeder        string  `json:"breeder"`
	Seed           int64   `json:"seed"`
	Years          int     `json:"years"`
	YearsExecuted  int     `json:"years_executed"`
	Extinct        bool    `json:"extinct"`
	Survivors      []int   `json:"survivors"`
	DominantPeriod int     `json:"dominant_period"`
	DominantCount  float64 `json:"dominant_count"`
	TotalFinal     float64 `json:"total_final"`
}
