package driftdiff

import (
	"encoding/json"
	"math"
	"testing"
)

func TestRecordMarshalJSON(t *testing.T) {
	recs := Records{
		{Kind: RecordNumberMismatch, Path: "root.n", A: Number(1), B: Number(2.5), Delta: 1.5},
		{Kind: RecordKeyAdded, Path: "root", Key: "extra"},
		{Kind: RecordStatsMismatch, Path: "root.a", Stats: []StatDelta{
			{Name: "count", A: 3, B: 4, Delta: 1},
		}},
	}

	data, err := json.Marshal(recs)
	if err != nil {
		t.Fatal(err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 3 {
		t.Fatalf("want 3 records, got %d", len(decoded))
	}

	if decoded[0]["kind"] != "number-mismatch" {
		t.Errorf("kind: want number-mismatch, got %v", decoded[0]["kind"])
	}
	if decoded[0]["delta"] != 1.5 {
		t.Errorf("delta: want 1.5, got %v", decoded[0]["delta"])
	}
	if decoded[1]["key"] != "extra" {
		t.Errorf("key: want extra, got %v", decoded[1]["key"])
	}
	if _, ok := decoded[1]["a"]; ok {
		t.Error("key records should not carry values")
	}
	if _, ok := decoded[2]["stats"]; !ok {
		t.Error("stats record missing its stat deltas")
	}
	for _, d := range decoded {
		if d["message"] == "" {
			t.Errorf("record %v missing rendered message", d["kind"])
		}
	}
}

func TestRecordMarshalJSONNonFinite(t *testing.T) {
	recs := Records{{Kind: RecordNonFinite, Path: "root.n", A: Number(math.NaN()), B: Number(1)}}

	data, err := json.Marshal(recs)
	if err != nil {
		t.Fatalf("non-finite values must not break record encoding: %s", err)
	}

	var decoded []map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded[0]["a"] != "NaN" {
		t.Errorf("want NaN rendered as a string, got %v", decoded[0]["a"])
	}
}
