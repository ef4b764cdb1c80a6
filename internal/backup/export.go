// Package backup exports and imports the state document as a portable
// JSON file and keeps rotating snapshots of it under the home directory.
package backup

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/julianstephens/bidaya/internal/constants"
	"github.com/julianstephens/bidaya/internal/errors"
	"github.com/julianstephens/bidaya/internal/migration"
	"github.com/julianstephens/bidaya/internal/models"
)

// requiredCatalogs must be present as arrays in any importable file
var requiredCatalogs = []string{"tasks", "bodyScans", "heartDiseases", "wiridLogs", "networkProtocols"}

// Export writes state as indented JSON
func Export(state models.AppState, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(state); err != nil {
		return fmt.Errorf("failed to export state: %w", err)
	}
	return nil
}

// ExportFileName is the suggested file name of an export made on today
func ExportFileName(today string) string {
	return constants.ExportFilePrefix + today + ".json"
}

// Validate checks that data is a JSON object carrying every catalog array
func Validate(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
		return fmt.Errorf("%w: not a JSON object", errors.ErrFormat)
	}
	for _, key := range requiredCatalogs {
		raw, ok := fields[key]
		if !ok {
			return fmt.Errorf("%w: missing %s", errors.ErrFormat, key)
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil || items == nil {
			return fmt.Errorf("%w: %s is not an array", errors.ErrFormat, key)
		}
	}
	return nil
}

// Import reads an exported file and lays it over base. The result has not
// been rolled over or saved; on error nothing should be written.
func Import(r io.Reader, base models.AppState) (models.AppState, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return base, fmt.Errorf("failed to read import: %w", err)
	}
	if err := Validate(data); err != nil {
		return base, err
	}
	return migration.Decode(data, base)
}
