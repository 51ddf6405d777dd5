package clean

import (
	"testing"
	"time"

	"github.com/gyeh/apptclean/internal/model"
)

func TestCoerceTimestamps_MixedFormats(t *testing.T) {
	ds := &model.Dataset{
		Cols: model.NewColumnSet(model.ColScheduledStart),
		Rows: []model.Appointment{
			{ScheduledStart: model.Timestamp{Raw: "2024-01-02 10:30:00"}},
			{ScheduledStart: model.Timestamp{Raw: "01/02/2024 10:30"}},
			{ScheduledStart: model.Timestamp{Raw: "not a date"}},
			{ScheduledStart: model.Timestamp{Raw: ""}},
		},
	}

	out, unparsed := CoerceTimestamps(ds, model.TimestampColumns)

	if len(out.Rows) != 4 {
		t.Fatalf("rows = %d, want 4 (coercion must not drop rows)", len(out.Rows))
	}

	want := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		got := out.Rows[i].ScheduledStart.Time
		if got == nil || !got.Equal(want) {
			t.Errorf("row %d: scheduled_start = %v, want %v", i, got, want)
		}
	}
	if out.Rows[2].ScheduledStart.Time != nil {
		t.Error("unparseable value should coerce to the missing sentinel")
	}
	if out.Rows[3].ScheduledStart.Time != nil {
		t.Error("empty value should coerce to the missing sentinel")
	}

	// Only the garbage value counts as unparsed; blanks are ordinary missing.
	if unparsed[model.ColScheduledStart] != 1 {
		t.Errorf("unparsed count = %d, want 1", unparsed[model.ColScheduledStart])
	}

	// Input untouched.
	if ds.Rows[0].ScheduledStart.Time != nil {
		t.Error("input dataset was mutated")
	}
}

func TestCoerceTimestamps_AbsentColumnSkipped(t *testing.T) {
	ds := &model.Dataset{
		Cols: model.NewColumnSet(model.ColScheduledStart), // created_at absent
		Rows: []model.Appointment{
			{CreatedAt: model.Timestamp{Raw: "2024-01-02 10:30:00"}},
		},
	}

	out, _ := CoerceTimestamps(ds, model.TimestampColumns)
	if out.Rows[0].CreatedAt.Time != nil {
		t.Error("absent column was coerced")
	}
}

func TestCoerceTimestamps_NarrowedColumns(t *testing.T) {
	ds := &model.Dataset{
		Cols: model.NewColumnSet(model.ColScheduledStart, model.ColCreatedAt),
		Rows: []model.Appointment{{
			ScheduledStart: model.Timestamp{Raw: "2024-01-02 10:30:00"},
			CreatedAt:      model.Timestamp{Raw: "2024-01-01 08:00:00"},
		}},
	}

	out, _ := CoerceTimestamps(ds, []string{model.ColCreatedAt})
	if out.Rows[0].CreatedAt.Time == nil {
		t.Error("designated column not coerced")
	}
	if out.Rows[0].ScheduledStart.Time != nil {
		t.Error("column outside the designated list was coerced")
	}
}
