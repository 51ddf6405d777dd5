package clean

import (
	"sort"
	"time"

	"github.com/gyeh/apptclean/internal/model"
)

// Dedupe collapses rows sharing an appointment_id down to one, keeping the
// row with the greatest created_at. Missing created_at ranks lowest, so a
// row with a real timestamp always beats one without. When created_at values
// tie exactly, the row that sorts last under the stable (appointment_id,
// created_at) ordering wins; dedupe_test.go pins that behavior down. If the
// id column is absent the dataset passes through unchanged.
//
// Assumes created_at has already been coerced.
func Dedupe(ds *model.Dataset) (*model.Dataset, int64) {
	if !ds.Cols.Has(model.ColAppointmentID) {
		return ds.Clone(), 0
	}

	out := ds.Clone()
	hasCreatedAt := out.Cols.Has(model.ColCreatedAt)

	sort.SliceStable(out.Rows, func(i, j int) bool {
		a, b := &out.Rows[i], &out.Rows[j]
		if a.AppointmentID != b.AppointmentID {
			return a.AppointmentID < b.AppointmentID
		}
		if !hasCreatedAt {
			return false
		}
		return timeLess(a.CreatedAt.Time, b.CreatedAt.Time)
	})

	// The latest created_at now sorts last within each id group; keep only
	// the final row of every group.
	kept := make([]model.Appointment, 0, len(out.Rows))
	for i := range out.Rows {
		if i+1 < len(out.Rows) && out.Rows[i+1].AppointmentID == out.Rows[i].AppointmentID {
			continue
		}
		kept = append(kept, out.Rows[i])
	}

	removed := int64(len(out.Rows) - len(kept))
	out.Rows = kept
	return out, removed
}

// timeLess orders nullable timestamps with nil ranking lowest.
func timeLess(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}
