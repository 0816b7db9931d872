// Package results writes completed runs to tabular and JSON sinks.
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/fieldsim/fieldsim/sim"
)

// Header names the six columns of a result row.
var Header = []string{"MeanInter", "MeanComplex", "BufferSize", "DiscardRate", "Util_Encoder", "Util_Storage"}

// CSVWriter writes one row per completed run, in the order Write is called.
type CSVWriter struct {
	w *csv.Writer
}

// NewCSVWriter writes the header row to w and returns a writer for result rows.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := &CSVWriter{w: csv.NewWriter(w)}
	if err := cw.w.Write(Header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	return cw, nil
}

// Write appends the row for r.
func (cw *CSVWriter) Write(r sim.Result) error {
	if err := cw.w.Write(Row(r)); err != nil {
		return fmt.Errorf("write csv row: %w", err)
	}
	return nil
}

// Flush writes any buffered rows to the underlying writer.
func (cw *CSVWriter) Flush() error {
	cw.w.Flush()
	return cw.w.Error()
}

// Row formats r as the six header columns.
func Row(r sim.Result) []string {
	return []string{
		formatFloat(r.MeanInterArrival),
		formatFloat(r.MeanComplexity),
		strconv.Itoa(r.BufferCapacity),
		formatFloat(r.DiscardRate),
		formatFloat(r.EncoderUtilization),
		formatFloat(r.StorageUtilization),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
