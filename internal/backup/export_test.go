package backup

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/seed"
)

func TestExportFileName(t *testing.T) {
	if got := ExportFileName("2026-03-10"); got != "bidaya-backup-2026-03-10.json" {
		t.Errorf("ExportFileName = %q", got)
	}
}

func TestExportImport(t *testing.T) {
	base := seed.Default(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	state := base.Clone()
	state.HeartDiseases[2].Level = 9
	state.WiridLogs[0].Count = 42

	var buf bytes.Buffer
	if err := Export(state, &buf); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(buf.String(), "\n  \"tasks\"") {
		t.Error("export is not indented")
	}

	got, err := Import(&buf, base)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if got.HeartDiseases[2].Level != 9 || got.WiridLogs[0].Count != 42 {
		t.Error("imported values differ from export")
	}
}

func TestImportRejectsIncompleteFiles(t *testing.T) {
	base := seed.Default(time.Now())
	tests := []struct {
		name string
		doc  string
	}{
		{"garbage", "hello"},
		{"missing wirid", `{"tasks": [], "bodyScans": [], "heartDiseases": [], "networkProtocols": []}`},
		{"tasks not array", `{"tasks": {}, "bodyScans": [], "heartDiseases": [], "wiridLogs": [], "networkProtocols": []}`},
		{"null catalog", `{"tasks": null, "bodyScans": [], "heartDiseases": [], "wiridLogs": [], "networkProtocols": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Import(strings.NewReader(tt.doc), base)
			if !errors.Is(err, errors.ErrFormat) {
				t.Errorf("err = %v, want ErrFormat", err)
			}
			if len(out.Tasks) != len(base.Tasks) {
				t.Error("base not returned on failure")
			}
		})
	}
}
