package clean

import (
	"github.com/gyeh/apptclean/internal/model"
	"github.com/gyeh/apptclean/internal/normalize"
)

// AuditReport lists, per categorical column, the observed raw values that do
// not belong to the column's canonical vocabulary. Offline diagnostic only;
// it never alters cleaning behavior.
type AuditReport struct {
	// Unexpected maps column name to the sorted distinct offending values.
	Unexpected map[string][]string
}

// Audit computes the set-difference of observed non-empty raw values against
// each categorical column's allowed canonical set.
func Audit(ds *model.Dataset) *AuditReport {
	report := &AuditReport{Unexpected: make(map[string][]string)}

	for _, col := range model.CategoricalColumns {
		if !ds.Cols.Has(col) {
			continue
		}
		observed := make([]string, 0, len(ds.Rows))
		for i := range ds.Rows {
			if cat := ds.Rows[i].CategoryField(col); cat != nil {
				observed = append(observed, cat.Raw)
			}
		}
		if diff := normalize.Unexpected(observed, canonicalSets[col]); len(diff) > 0 {
			report.Unexpected[col] = diff
		}
	}
	return report
}
