package clean

import (
	"testing"
	"time"

	"github.com/gyeh/apptclean/internal/model"
)

func TestDeriveFeatures_AllPairs(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	scheduled := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	visitStart := time.Date(2024, 1, 2, 10, 12, 30, 0, time.UTC)
	visitEnd := time.Date(2024, 1, 2, 10, 55, 0, 0, time.UTC)

	ds := &model.Dataset{
		Cols: model.NewColumnSet(
			model.ColScheduledStart, model.ColCreatedAt,
			model.ColVisitStartTime, model.ColVisitEndTime,
		),
		Rows: []model.Appointment{{
			ScheduledStart: model.Timestamp{Time: tptr(scheduled)},
			CreatedAt:      model.Timestamp{Time: tptr(created)},
			VisitStartTime: model.Timestamp{Time: tptr(visitStart)},
			VisitEndTime:   model.Timestamp{Time: tptr(visitEnd)},
		}},
	}

	out := DeriveFeatures(ds)
	for _, col := range model.DerivedColumns {
		if !out.Cols.Has(col) {
			t.Errorf("derived column %s not created", col)
		}
	}

	r := out.Rows[0]
	if r.LeadTimeMinutes == nil || *r.LeadTimeMinutes != 25*60 {
		t.Errorf("lead_time_minutes = %v, want %v", r.LeadTimeMinutes, 25*60)
	}
	if r.WaitTimeMinutes == nil || *r.WaitTimeMinutes != 12.5 {
		t.Errorf("wait_time_minutes = %v, want 12.5", r.WaitTimeMinutes)
	}
	if r.VisitDurationMinutes == nil || *r.VisitDurationMinutes != 42.5 {
		t.Errorf("visit_duration_minutes = %v, want 42.5", r.VisitDurationMinutes)
	}
}

// A visit that started before its scheduled time yields a negative wait; the
// sign is a data-quality signal and must not be clamped.
func TestDeriveFeatures_NegativePreserved(t *testing.T) {
	scheduled := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	early := scheduled.Add(-15 * time.Minute)

	ds := &model.Dataset{
		Cols: model.NewColumnSet(model.ColScheduledStart, model.ColVisitStartTime),
		Rows: []model.Appointment{{
			ScheduledStart: model.Timestamp{Time: tptr(scheduled)},
			VisitStartTime: model.Timestamp{Time: tptr(early)},
		}},
	}

	out := DeriveFeatures(ds)
	got := out.Rows[0].WaitTimeMinutes
	if got == nil || *got != -15 {
		t.Errorf("wait_time_minutes = %v, want -15", got)
	}
}

func TestDeriveFeatures_MissingOperandIsNil(t *testing.T) {
	visitStart := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

	ds := &model.Dataset{
		Cols: model.NewColumnSet(model.ColVisitStartTime, model.ColVisitEndTime),
		Rows: []model.Appointment{
			{VisitStartTime: model.Timestamp{Time: tptr(visitStart)}}, // end missing
			{
				VisitStartTime: model.Timestamp{Time: tptr(visitStart)},
				VisitEndTime:   model.Timestamp{Time: tptr(visitStart.Add(30 * time.Minute))},
			},
		},
	}

	out := DeriveFeatures(ds)
	if !out.Cols.Has(model.ColVisitDurationMinutes) {
		t.Fatal("visit_duration_minutes column not created")
	}
	if out.Rows[0].VisitDurationMinutes != nil {
		t.Errorf("row with missing end = %v, want nil", *out.Rows[0].VisitDurationMinutes)
	}
	if out.Rows[1].VisitDurationMinutes == nil || *out.Rows[1].VisitDurationMinutes != 30 {
		t.Errorf("row with both operands = %v, want 30", out.Rows[1].VisitDurationMinutes)
	}
}

// When a source column is absent from the dataset the derived column must
// not be created at all.
func TestDeriveFeatures_AbsentColumnSkipsDerivation(t *testing.T) {
	ds := &model.Dataset{
		Cols: model.NewColumnSet(model.ColScheduledStart), // no created_at
		Rows: []model.Appointment{{
			ScheduledStart: model.Timestamp{Time: tptr(time.Now())},
		}},
	}

	out := DeriveFeatures(ds)
	for _, col := range model.DerivedColumns {
		if out.Cols.Has(col) {
			t.Errorf("derived column %s created without its sources", col)
		}
	}
	if out.Rows[0].LeadTimeMinutes != nil {
		t.Error("lead_time_minutes set without created_at column")
	}
}
