package feed

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"payments-engine/models"
)

// SummaryHeader is the column layout of the report.
var SummaryHeader = []string{"client", "available", "held", "total", "locked"}

// Writer renders client summaries as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter returns a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteAll writes the header followed by one row per summary and flushes.
func (w *Writer) WriteAll(summaries []models.ClientSummary) error {
	if err := w.csv.Write(SummaryHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(SummaryHeader))
	for _, s := range summaries {
		row[0] = strconv.FormatUint(uint64(s.Client), 10)
		row[1] = s.Available.String()
		row[2] = s.Held.String()
		row[3] = s.Total.String()
		row[4] = strconv.FormatBool(s.Locked)
		if err := w.csv.Write(row); err != nil {
			return fmt.Errorf("write client %d: %w", s.Client, err)
		}
	}
	w.csv.Flush()
	return w.csv.Error()
}
