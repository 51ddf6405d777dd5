package model

import "time"

// Timestamp is a date/time cell. Raw preserves the loaded text; Time is set
// by the coercion stage and stays nil when the text is empty or unparseable.
// A nil Time is the missing-timestamp sentinel throughout the pipeline.
type Timestamp struct {
	Raw  string
	Time *time.Time
}

// Missing reports whether the cell holds no parsed timestamp.
func (t Timestamp) Missing() bool {
	return t.Time == nil
}

// Category is a categorical cell. Raw preserves the loaded text for auditing;
// Canonical is set by the mapping stage to a vocabulary value, and stays nil
// for both missing input and unrecognized values.
type Category struct {
	Raw       string
	Canonical *string
}

// Known reports whether the cell mapped to a canonical vocabulary value.
func (c Category) Known() bool {
	return c.Canonical != nil
}

// Flag is a tri-state boolean cell: Value nil means unknown, distinct from
// an explicit false.
type Flag struct {
	Raw   string
	Value *bool
}

// Appointment is one record of the appointments table. Text fields that pass
// through cleaning unmodified are plain strings; everything the pipeline
// touches carries its raw text alongside the typed value.
type Appointment struct {
	SourceRowNumber int64

	AppointmentID string
	PatientID     string
	ProviderID    string
	ClinicID      string

	ScheduledStart Timestamp
	ScheduledEnd   Timestamp
	CreatedAt      Timestamp
	CheckInTime    Timestamp
	VisitStartTime Timestamp
	VisitEndTime   Timestamp
	CanceledAt     Timestamp

	Status          Category
	AppointmentType Category
	InsuranceType   Category
	VisitModality   Category

	FollowUpNeeded    Flag
	FollowUpScheduled Flag

	CancelReason   string
	StatusDetail   string
	ReferralSource string
	Language       string
	Zip3           string
	AgeBand        string

	LeadTimeMinutes      *float64
	WaitTimeMinutes      *float64
	VisitDurationMinutes *float64
}

// TimestampField returns a pointer to the Timestamp cell for the named
// column, or nil if the name is not a timestamp column.
func (a *Appointment) TimestampField(col string) *Timestamp {
	switch col {
	case ColScheduledStart:
		return &a.ScheduledStart
	case ColScheduledEnd:
		return &a.ScheduledEnd
	case ColCreatedAt:
		return &a.CreatedAt
	case ColCheckInTime:
		return &a.CheckInTime
	case ColVisitStartTime:
		return &a.VisitStartTime
	case ColVisitEndTime:
		return &a.VisitEndTime
	case ColCanceledAt:
		return &a.CanceledAt
	}
	return nil
}

// CategoryField returns a pointer to the Category cell for the named column,
// or nil if the name is not a categorical column.
func (a *Appointment) CategoryField(col string) *Category {
	switch col {
	case ColStatus:
		return &a.Status
	case ColAppointmentType:
		return &a.AppointmentType
	case ColInsuranceType:
		return &a.InsuranceType
	case ColVisitModality:
		return &a.VisitModality
	}
	return nil
}

// FlagField returns a pointer to the Flag cell for the named column, or nil
// if the name is not a boolean column.
func (a *Appointment) FlagField(col string) *Flag {
	switch col {
	case ColFollowUpNeeded:
		return &a.FollowUpNeeded
	case ColFollowUpScheduled:
		return &a.FollowUpScheduled
	}
	return nil
}

// Dataset is a whole appointments table held in memory: the rows plus the
// ColumnSet describing which columns this instance carries. Pipeline stages
// take a Dataset and return a new one; inputs are never mutated.
type Dataset struct {
	Cols ColumnSet
	Rows []Appointment
}

// Clone returns a deep-enough copy for copy-on-transform stages: the row
// slice and column set are fresh, row structs are copied by value.
func (d *Dataset) Clone() *Dataset {
	rows := make([]Appointment, len(d.Rows))
	copy(rows, d.Rows)
	return &Dataset{Cols: d.Cols.Clone(), Rows: rows}
}
