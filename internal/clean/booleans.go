package clean

import (
	"github.com/gyeh/apptclean/internal/model"
	"github.com/gyeh/apptclean/internal/normalize"
)

// ParseBooleans resolves the boolean-ish columns to tri-state values.
// Ambiguous input stays unknown (Value nil); nothing raises. Returns the new
// dataset and per-column counts of non-empty values that stayed unknown.
func ParseBooleans(ds *model.Dataset) (*model.Dataset, map[string]int64) {
	out := ds.Clone()
	unknown := make(map[string]int64)

	for _, col := range model.BooleanColumns {
		if !out.Cols.Has(col) {
			continue
		}
		for i := range out.Rows {
			fl := out.Rows[i].FlagField(col)
			if fl == nil {
				continue
			}
			fl.Value = normalize.ParseBoolish(fl.Raw)
			if fl.Value == nil && normalize.Text(fl.Raw) != "" {
				unknown[col]++
			}
		}
	}
	return out, unknown
}
