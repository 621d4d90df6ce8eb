package profiler

import (
	"encoding/csv"
	"io"
	"strconv"
)

// csvHeader is the byte-exact export contract: consumers parse the CSV by
// these names in this order.
var csvHeader = []string{"Timestamp", "RequestPath", "HTTPMethod", "StatusCode", "TotalTimeMs", "CPUTimeMs"}

// WriteCSV serializes a snapshot of the store as CSV. An empty store yields
// only the header row. Every row carries all six columns; a missing status
// is an empty cell, not an omitted one. Paths containing commas, quotes or
// newlines are escaped by encoding/csv.
func (s *Store) WriteCSV(w io.Writer) error {
	entries := s.Snapshot()

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, e := range entries {
		status := ""
		if e.StatusCode != 0 {
			status = strconv.Itoa(e.StatusCode)
		}

		row := []string{
			e.Timestamp.Format(TimestampLayout),
			e.Path,
			e.Method,
			status,
			strconv.FormatFloat(e.TotalTimeMs, 'f', 3, 64),
			strconv.FormatFloat(e.CPUTimeMs, 'f', 3, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
