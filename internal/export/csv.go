package export

import (
	"encoding/csv"
	"io"

	"github.com/k0ns0l/configdrift/internal/document"
	"github.com/k0ns0l/configdrift/internal/drift"
)

// WriteCSV writes the report as CSV with one row per record. Absent values
// (the target side of missing keys, the baseline side of new keys) render
// as empty strings; present values render as compact JSON.
func WriteCSV(report drift.Report, w io.Writer) error {
	writer := csv.NewWriter(w)

	header := []string{"key_path", "change_type", "baseline_value", "target_value"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, rec := range report {
		row := []string{
			rec.Path.String(),
			string(rec.Type),
			valueCell(rec.Baseline),
			valueCell(rec.Target),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func valueCell(v *document.Value) string {
	if v == nil {
		return ""
	}
	return v.JSON()
}
