package clean

import (
	"time"

	"github.com/gyeh/apptclean/internal/model"
)

// DeriveFeatures computes the elapsed-minute metrics for the three fixed
// timestamp pairs. A derived column is created only when both source columns
// exist in the dataset; a row missing either operand gets a nil value. The
// sign is deliberately not forced positive: a negative delta is a
// data-quality signal worth keeping.
func DeriveFeatures(ds *model.Dataset) *model.Dataset {
	out := ds.Clone()

	// Lead time: scheduled_start - created_at
	if out.Cols.HasAll(model.ColScheduledStart, model.ColCreatedAt) {
		out.Cols.Add(model.ColLeadTimeMinutes)
		for i := range out.Rows {
			r := &out.Rows[i]
			r.LeadTimeMinutes = minutesBetween(r.CreatedAt.Time, r.ScheduledStart.Time)
		}
	}

	// Wait time: visit_start_time - scheduled_start
	if out.Cols.HasAll(model.ColVisitStartTime, model.ColScheduledStart) {
		out.Cols.Add(model.ColWaitTimeMinutes)
		for i := range out.Rows {
			r := &out.Rows[i]
			r.WaitTimeMinutes = minutesBetween(r.ScheduledStart.Time, r.VisitStartTime.Time)
		}
	}

	// Visit duration: visit_end_time - visit_start_time
	if out.Cols.HasAll(model.ColVisitEndTime, model.ColVisitStartTime) {
		out.Cols.Add(model.ColVisitDurationMinutes)
		for i := range out.Rows {
			r := &out.Rows[i]
			r.VisitDurationMinutes = minutesBetween(r.VisitStartTime.Time, r.VisitEndTime.Time)
		}
	}

	return out
}

// minutesBetween returns (to - from) in minutes, or nil if either operand is
// missing.
func minutesBetween(from, to *time.Time) *float64 {
	if from == nil || to == nil {
		return nil
	}
	m := to.Sub(*from).Minutes()
	return &m
}
