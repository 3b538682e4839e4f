package export

import (
	"encoding/json"
	"io"

	"github.com/k0ns0l/configdrift/internal/document"
	"github.com/k0ns0l/configdrift/internal/drift"
)

// jsonRecord mirrors the CSV column set. Absent values are rendered as an
// explicit null rather than omitted, so every element carries all four
// fields.
type jsonRecord struct {
	KeyPath       string          `json:"key_path"`
	ChangeType    string          `json:"change_type"`
	BaselineValue json.RawMessage `json:"baseline_value"`
	TargetValue   json.RawMessage `json:"target_value"`
}

// WriteJSON writes the report as an indented JSON array of records. An
// empty report writes an empty array, not null.
func WriteJSON(report drift.Report, w io.Writer) error {
	records := make([]jsonRecord, 0, len(report))
	for _, rec := range report {
		records = append(records, jsonRecord{
			KeyPath:       rec.Path.String(),
			ChangeType:    string(rec.Type),
			BaselineValue: rawValue(rec.Baseline),
			TargetValue:   rawValue(rec.Target),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func rawValue(v *document.Value) json.RawMessage {
	if v == nil {
		return json.RawMessage("null")
	}
	return json.RawMessage(v.JSON())
}
