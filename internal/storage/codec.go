package storage

import (
	"encoding/json"
	"errors"

	"cicadasim/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeScenario(s model.Scenario) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeScenario(data []byte) (model.Scenario, error) {
	var scenario model.Scenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return model.Scenario{}, err
	}
	if err := checkVersion(scenario.VersionedRecord); err != nil {
		return model.Scenario{}, err
	}
	return scenario, nil
}

func EncodeCensusHistory(history []model.Census) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeCensusHistory(data []byte) ([]model.Census, error) {
	var history []model.Census
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func EncodeRunSummary(s model.RunSummary) ([]byte, error) {
	return json.Marshal(s)
}

func DecodeRunSummary(data []byte) (model.RunSummary, error) {
	var summary model.RunSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return model.RunSummary{}, err
	}
	if err := checkVersion(summary.VersionedRecord); err != nil {
		return model.RunSummary{}, err
	}
	return summary, nil
}

// Stamp sets the current schema and codec versions on a versioned record.
func Stamp() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: CurrentSchemaVersion,
		CodecVersion:  CurrentCodecVersion,
	}
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
