package storage

import (
	"errors"
	"reflect"
	"testing"

	"cicadasim/internal/model"
)

func TestScenarioCodecRoundTrip(t *testing.T) {
	input := testScenario("s1")
	data, err := EncodeScenario(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeScenario(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(input, output) {
		t.Fatalf("round trip mismatch: %v vs %v", input, output)
	}
}

func TestDecodeScenarioVersionMismatch(t *testing.T) {
	scenario := testScenario("s1")
	scenario.SchemaVersion = CurrentSchemaVersion + 1
	data, err := EncodeScenario(scenario)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeScenario(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestCensusHistoryCodecRoundTrip(t *testing.T) {
	input := []model.Census{
		{Generation: 0, Series: []model.CohortSeries{{Period: 5, Counts: []float64{2.5, 2.5, 2.5, 2.5, 2.5}}}},
		{Generation: 97, Series: []model.CohortSeries{{Period: 5, Counts: []float64{0, 0, 0, 0, 30}}}},
	}
	data, err := EncodeCensusHistory(input)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	output, err := DecodeCensusHistory(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(input, output) {
		t.Fatalf("round trip mismatch: %v vs %v", input, output)
	}
}

func TestRunSummaryCodecVersionMismatch(t *testing.T) {
	summary := model.RunSummary{
		VersionedRecord: model.VersionedRecord{SchemaVersion: CurrentSchemaVersion, CodecVersion: CurrentCodecVersion + 1},
		RunID:           "run-1",
	}
	data, err := EncodeRunSummary(summary)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeRunSummary(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestStamp(t *testing.T) {
	v := Stamp()
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		t.Fatalf("stamp = %+v", v)
	}
}
