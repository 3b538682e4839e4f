// Package export renders drift reports as console text, CSV, and JSON.
package export

import (
	"fmt"
	"io"
	"os"

	"github.com/k0ns0l/configdrift/internal/drift"
	"github.com/k0ns0l/configdrift/internal/errors"
)

// Format identifies an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// WriteFile writes the report to path in the given format. The write is
// whole-file: a fresh file is created (or truncated) and written in one
// pass, with no partial-write recovery.
func WriteFile(report drift.Report, format Format, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeOutput, "EXPORT_FAILED",
			fmt.Sprintf("failed to create %s report %s", format, path)).
			WithGuidance("Check permissions and free space on the destination directory")
	}

	if err := writeFormat(report, format, f); err != nil {
		f.Close()
		return errors.WrapError(err, errors.ErrorTypeOutput, "EXPORT_FAILED",
			fmt.Sprintf("failed to write %s report %s", format, path))
	}

	if err := f.Close(); err != nil {
		return errors.WrapError(err, errors.ErrorTypeOutput, "EXPORT_FAILED",
			fmt.Sprintf("failed to write %s report %s", format, path))
	}

	return nil
}

func writeFormat(report drift.Report, format Format, w io.Writer) error {
	switch format {
	case FormatCSV:
		return WriteCSV(report, w)
	case FormatJSON:
		return WriteJSON(report, w)
	default:
		return fmt.Errorf("unsupported export format: %s", format)
	}
}
