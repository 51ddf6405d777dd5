package clean

import (
	"strings"

	"github.com/gyeh/apptclean/internal/model"
	"github.com/gyeh/apptclean/internal/normalize"
)

// CoerceTimestamps parses every designated timestamp column into typed time
// values. Unparseable cells become the missing sentinel; rows are never
// dropped. Columns absent from the dataset are skipped. Returns the new
// dataset and per-column counts of non-empty values that failed to parse.
func CoerceTimestamps(ds *model.Dataset, cols []string) (*model.Dataset, map[string]int64) {
	out := ds.Clone()
	unparsed := make(map[string]int64)

	for _, col := range cols {
		if !out.Cols.Has(col) {
			continue
		}
		for i := range out.Rows {
			ts := out.Rows[i].TimestampField(col)
			if ts == nil {
				continue
			}
			ts.Time = normalize.ParseTimestamp(ts.Raw)
			if ts.Time == nil && strings.TrimSpace(ts.Raw) != "" {
				unparsed[col]++
			}
		}
	}
	return out, unparsed
}
