package model

// Column names for the raw appointments CSV. These are the on-disk header
// spellings; the loader matches them case-insensitively.
const (
	ColAppointmentID     = "appointment_id"
	ColPatientID         = "patient_id"
	ColProviderID        = "provider_id"
	ColClinicID          = "clinic_id"
	ColScheduledStart    = "scheduled_start"
	ColScheduledEnd      = "scheduled_end"
	ColCreatedAt         = "created_at"
	ColCheckInTime       = "check_in_time"
	ColVisitStartTime    = "visit_start_time"
	ColVisitEndTime      = "visit_end_time"
	ColCanceledAt        = "canceled_at"
	ColCancelReason      = "cancel_reason"
	ColStatus            = "status"
	ColStatusDetail      = "status_detail"
	ColFollowUpNeeded    = "follow_up_needed"
	ColFollowUpScheduled = "follow_up_scheduled"
	ColAppointmentType   = "appointment_type"
	ColVisitModality     = "visit_modality"
	ColInsuranceType     = "insurance_type"
	ColReferralSource    = "referral_source"
	ColLanguage          = "language"
	ColZip3              = "zip3"
	ColAgeBand           = "age_band"

	// Derived columns, created by the feature deriver.
	ColLeadTimeMinutes      = "lead_time_minutes"
	ColWaitTimeMinutes      = "wait_time_minutes"
	ColVisitDurationMinutes = "visit_duration_minutes"
)

// RequiredColumns lists every column the raw CSV must carry, in canonical
// output order. Loading fails if any of these is absent.
var RequiredColumns = []string{
	ColAppointmentID,
	ColPatientID,
	ColProviderID,
	ColClinicID,
	ColScheduledStart,
	ColScheduledEnd,
	ColCreatedAt,
	ColCheckInTime,
	ColVisitStartTime,
	ColVisitEndTime,
	ColCanceledAt,
	ColCancelReason,
	ColStatus,
	ColStatusDetail,
	ColFollowUpNeeded,
	ColFollowUpScheduled,
	ColAppointmentType,
	ColVisitModality,
	ColInsuranceType,
	ColReferralSource,
	ColLanguage,
	ColZip3,
	ColAgeBand,
}

// TimestampColumns lists the columns coerced to timestamps, in coercion order.
var TimestampColumns = []string{
	ColScheduledStart,
	ColScheduledEnd,
	ColCreatedAt,
	ColCheckInTime,
	ColVisitStartTime,
	ColVisitEndTime,
	ColCanceledAt,
}

// CategoricalColumns lists the columns mapped to canonical vocabularies.
var CategoricalColumns = []string{
	ColStatus,
	ColAppointmentType,
	ColInsuranceType,
	ColVisitModality,
}

// BooleanColumns lists the tri-state boolean columns.
var BooleanColumns = []string{
	ColFollowUpNeeded,
	ColFollowUpScheduled,
}

// DerivedColumns lists the minute-delta columns in output order.
var DerivedColumns = []string{
	ColLeadTimeMinutes,
	ColWaitTimeMinutes,
	ColVisitDurationMinutes,
}

// OutputColumns returns the full canonical column order for written datasets:
// the required input columns followed by the derived columns.
func OutputColumns() []string {
	out := make([]string, 0, len(RequiredColumns)+len(DerivedColumns))
	out = append(out, RequiredColumns...)
	out = append(out, DerivedColumns...)
	return out
}

// IsTimestampColumn reports whether name is one of the designated timestamp
// columns.
func IsTimestampColumn(name string) bool {
	for _, c := range TimestampColumns {
		if c == name {
			return true
		}
	}
	return false
}

// ColumnSet describes which columns a Dataset instance actually carries.
// Stage functions consult it instead of probing individual rows, so skip
// logic is a capability check rather than a per-row membership test.
type ColumnSet map[string]struct{}

// NewColumnSet builds a ColumnSet from the given column names.
func NewColumnSet(cols ...string) ColumnSet {
	cs := make(ColumnSet, len(cols))
	for _, c := range cols {
		cs[c] = struct{}{}
	}
	return cs
}

// Has reports whether the set carries the named column.
func (cs ColumnSet) Has(name string) bool {
	_, ok := cs[name]
	return ok
}

// HasAll reports whether the set carries every named column.
func (cs ColumnSet) HasAll(names ...string) bool {
	for _, n := range names {
		if !cs.Has(n) {
			return false
		}
	}
	return true
}

// Add includes the named column in the set.
func (cs ColumnSet) Add(name string) {
	cs[name] = struct{}{}
}

// Clone returns an independent copy of the set.
func (cs ColumnSet) Clone() ColumnSet {
	out := make(ColumnSet, len(cs))
	for c := range cs {
		out[c] = struct{}{}
	}
	return out
}
