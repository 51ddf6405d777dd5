package clean

import (
	"github.com/gyeh/apptclean/internal/model"
	"github.com/gyeh/apptclean/internal/normalize"
)

// synonymTables pairs each categorical column with its synonym table.
var synonymTables = map[string]map[string]string{
	model.ColStatus:          normalize.StatusSynonyms,
	model.ColAppointmentType: normalize.AppointmentTypeSynonyms,
	model.ColInsuranceType:   normalize.InsuranceTypeSynonyms,
	model.ColVisitModality:   normalize.ModalitySynonyms,
}

// canonicalSets pairs each categorical column with its closed vocabulary.
var canonicalSets = map[string]map[string]bool{
	model.ColStatus:          normalize.CanonicalStatus,
	model.ColAppointmentType: normalize.CanonicalAppointmentType,
	model.ColInsuranceType:   normalize.CanonicalInsuranceType,
	model.ColVisitModality:   normalize.CanonicalModality,
}

// MapCategories resolves every categorical column to its canonical
// vocabulary. Unrecognized values stay unresolved (Canonical nil) with the
// raw text preserved for auditing; nothing raises. Returns the new dataset
// and per-column counts of non-empty values that did not map.
func MapCategories(ds *model.Dataset) (*model.Dataset, map[string]int64) {
	out := ds.Clone()
	unmapped := make(map[string]int64)

	for _, col := range model.CategoricalColumns {
		if !out.Cols.Has(col) {
			continue
		}
		table := synonymTables[col]
		for i := range out.Rows {
			cat := out.Rows[i].CategoryField(col)
			if cat == nil {
				continue
			}
			cat.Canonical = normalize.MapCategory(cat.Raw, table)
			if cat.Canonical == nil && normalize.Text(cat.Raw) != "" {
				unmapped[col]++
			}
		}
	}
	return out, unmapped
}
