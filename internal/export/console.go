package export

import (
	"fmt"
	"io"

	"github.com/k0ns0l/configdrift/internal/document"
	"github.com/k0ns0l/configdrift/internal/drift"
)

// WriteConsole renders the report as human-readable lines, one block per
// record. A drift at the document root (kind mismatch between the two
// roots) displays as "(root)".
func WriteConsole(report drift.Report, w io.Writer) error {
	if !report.HasDrift() {
		_, err := fmt.Fprintln(w, "No drift detected.")
		return err
	}

	for _, rec := range report {
		path := displayPath(rec.Path)
		switch rec.Type {
		case drift.ChangeTypeMissing:
			if _, err := fmt.Fprintf(w, "Missing key: %s\n", path); err != nil {
				return err
			}
		case drift.ChangeTypeNew:
			if _, err := fmt.Fprintf(w, "New key: %s\n", path); err != nil {
				return err
			}
		case drift.ChangeTypeModified:
			if _, err := fmt.Fprintf(w, "Modified value: %s\n", path); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "  baseline: %s\n", valueCell(rec.Baseline)); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "  target:   %s\n", valueCell(rec.Target)); err != nil {
				return err
			}
		}
	}

	s := report.Summarize()
	_, err := fmt.Fprintf(w, "\n%d drift record(s): %d missing, %d new, %d modified\n",
		s.Total, s.Missing, s.New, s.Modified)
	return err
}

func displayPath(p document.Path) string {
	if p.IsRoot() {
		return "(root)"
	}
	return p.String()
}
