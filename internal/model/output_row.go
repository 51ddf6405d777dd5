package model

import "time"

// OutputRow mirrors the cleaned-dataset schema for Parquet writing. Optional
// columns are pointers so missing values survive the round trip as nulls
// instead of zero values.
type OutputRow struct {
	AppointmentID string `parquet:"appointment_id"`
	PatientID     string `parquet:"patient_id"`
	ProviderID    string `parquet:"provider_id"`
	ClinicID      string `parquet:"clinic_id"`

	ScheduledStart *time.Time `parquet:"scheduled_start,optional"`
	ScheduledEnd   *time.Time `parquet:"scheduled_end,optional"`
	CreatedAt      *time.Time `parquet:"created_at,optional"`
	CheckInTime    *time.Time `parquet:"check_in_time,optional"`
	VisitStartTime *time.Time `parquet:"visit_start_time,optional"`
	VisitEndTime   *time.Time `parquet:"visit_end_time,optional"`
	CanceledAt     *time.Time `parquet:"canceled_at,optional"`

	Status          *string `parquet:"status,optional"`
	AppointmentType *string `parquet:"appointment_type,optional"`
	InsuranceType   *string `parquet:"insurance_type,optional"`
	VisitModality   *string `parquet:"visit_modality,optional"`

	FollowUpNeeded    *bool `parquet:"follow_up_needed,optional"`
	FollowUpScheduled *bool `parquet:"follow_up_scheduled,optional"`

	CancelReason   *string `parquet:"cancel_reason,optional"`
	StatusDetail   *string `parquet:"status_detail,optional"`
	ReferralSource *string `parquet:"referral_source,optional"`
	Language       *string `parquet:"language,optional"`
	Zip3           *string `parquet:"zip3,optional"`
	AgeBand        *string `parquet:"age_band,optional"`

	LeadTimeMinutes      *float64 `parquet:"lead_time_minutes,optional"`
	WaitTimeMinutes      *float64 `parquet:"wait_time_minutes,optional"`
	VisitDurationMinutes *float64 `parquet:"visit_duration_minutes,optional"`
}

// ToOutputRow flattens a cleaned Appointment into its persisted form. Raw
// text is dropped here: only parsed timestamps, canonical categories, and
// typed values make it to disk.
func ToOutputRow(a *Appointment) OutputRow {
	return OutputRow{
		AppointmentID: a.AppointmentID,
		PatientID:     a.PatientID,
		ProviderID:    a.ProviderID,
		ClinicID:      a.ClinicID,

		ScheduledStart: a.ScheduledStart.Time,
		ScheduledEnd:   a.ScheduledEnd.Time,
		CreatedAt:      a.CreatedAt.Time,
		CheckInTime:    a.CheckInTime.Time,
		VisitStartTime: a.VisitStartTime.Time,
		VisitEndTime:   a.VisitEndTime.Time,
		CanceledAt:     a.CanceledAt.Time,

		Status:          a.Status.Canonical,
		AppointmentType: a.AppointmentType.Canonical,
		InsuranceType:   a.InsuranceType.Canonical,
		VisitModality:   a.VisitModality.Canonical,

		FollowUpNeeded:    a.FollowUpNeeded.Value,
		FollowUpScheduled: a.FollowUpScheduled.Value,

		CancelReason:   optStr(a.CancelReason),
		StatusDetail:   optStr(a.StatusDetail),
		ReferralSource: optStr(a.ReferralSource),
		Language:       optStr(a.Language),
		Zip3:           optStr(a.Zip3),
		AgeBand:        optStr(a.AgeBand),

		LeadTimeMinutes:      a.LeadTimeMinutes,
		WaitTimeMinutes:      a.WaitTimeMinutes,
		VisitDurationMinutes: a.VisitDurationMinutes,
	}
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
