package migration

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/seed"
)

var base = seed.Default(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

func TestDecodeLegacyDocumentFillsMissingKeys(t *testing.T) {
	legacy := `{
		"tasks": [{"id": "t1", "title": "Tahajjud", "timeOfDay": "Morning", "completed": true}],
		"lastResetDate": "2026-03-09"
	}`

	out, err := Decode([]byte(legacy), base)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if out.SchemaVersion != seed.SchemaVersion {
		t.Errorf("SchemaVersion = %d", out.SchemaVersion)
	}
	if len(out.Tasks) != len(base.Tasks) {
		t.Fatalf("tasks = %d, want %d after merge", len(out.Tasks), len(base.Tasks))
	}
	if !out.Tasks[0].Completed || out.Tasks[0].ID != "t1" {
		t.Errorf("persisted t1 lost: %+v", out.Tasks[0])
	}
	if out.Tasks[1].ID != "t2" {
		t.Errorf("seed entries not appended in order: got %s", out.Tasks[1].ID)
	}
	if len(out.HeartDiseases) != 3 || len(out.WiridLogs) != 3 || len(out.NetworkProtocols) != 6 {
		t.Error("absent catalogs not taken from the seed")
	}
	if out.LastResetDate != "2026-03-09" {
		t.Errorf("LastResetDate = %q", out.LastResetDate)
	}
	if out.UserStats == nil || out.UserStats.Level != 1 {
		t.Errorf("UserStats = %+v", out.UserStats)
	}
}

func TestDecodeKeepsUnknownIDs(t *testing.T) {
	doc := `{"schemaVersion": 1, "heartDiseases": [{"id": "h9", "name": "Riya", "level": 3}, {"id": "h2", "name": "Ujub", "level": 5}]}`

	out, err := Decode([]byte(doc), base)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	ids := []string{}
	for _, h := range out.HeartDiseases {
		ids = append(ids, h.ID)
	}
	want := []string{"h9", "h2", "h1", "h3"}
	if len(ids) != len(want) {
		t.Fatalf("ids = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("ids = %v, want %v", ids, want)
		}
	}
	if out.HeartDiseases[1].Level != 5 {
		t.Errorf("persisted level overwritten: %d", out.HeartDiseases[1].Level)
	}
}

func TestDecodeDropsRepeatedIDs(t *testing.T) {
	doc := `{"schemaVersion": 1, "tasks": [
		{"id": "t1", "title": "Tahajjud", "completed": true},
		{"id": "t1", "title": "Tahajjud", "completed": false},
		{"id": "t9", "title": "Extra"},
		{"id": "t9", "title": "Extra again"}
	]}`

	out, err := Decode([]byte(doc), base)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	counts := map[string]int{}
	for _, task := range out.Tasks {
		counts[task.ID]++
	}
	for id, n := range counts {
		if n != 1 {
			t.Errorf("id %s appears %d times", id, n)
		}
	}
	if len(out.Tasks) != len(base.Tasks)+1 {
		t.Errorf("tasks = %d, want %d", len(out.Tasks), len(base.Tasks)+1)
	}
	if !out.Tasks[0].Completed {
		t.Error("first t1 entry not kept")
	}
	if out.Tasks[1].Title != "Extra" {
		t.Errorf("first t9 entry not kept: %+v", out.Tasks[1])
	}
}

func TestDecodeRoundTripsCurrentDocument(t *testing.T) {
	in := base.Clone()
	in.Tasks[4].Completed = true
	in.WiridLogs[2].Count = 33
	in.LastResetDate = "2026-03-10"
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	out, err := Decode(data, base)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !out.Tasks[4].Completed || out.WiridLogs[2].Count != 33 {
		t.Error("values lost in round trip")
	}
	if len(out.Tasks) != len(in.Tasks) {
		t.Errorf("tasks = %d, want %d", len(out.Tasks), len(in.Tasks))
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{tasks:`},
		{"null", `null`},
		{"array", `[]`},
		{"newer version", `{"schemaVersion": 99}`},
		{"wrong type", `{"tasks": "nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc), base)
			if !errors.Is(err, errors.ErrFormat) {
				t.Errorf("err = %v, want ErrFormat", err)
			}
		})
	}
}

func TestDecodeDoesNotMutateBase(t *testing.T) {
	b := base.Clone()
	if _, err := Decode([]byte(`{"tasks": [{"id": "t1", "completed": true}]}`), b); err != nil {
		t.Fatal(err)
	}
	if b.Tasks[0].Completed {
		t.Error("base mutated")
	}
}
