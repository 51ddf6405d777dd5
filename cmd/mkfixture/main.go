// mkfixture generates a small, deliberately messy appointments CSV for
// testdata: duplicated appointment ids, mixed timestamp formats, synonym
// spellings, and the occasional unmappable value. Deterministic for a given
// seed so fixtures are reproducible.
// Usage: go run ./cmd/mkfixture --out testdata/appointments-small.csv --rows 200
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gyeh/apptclean/internal/model"
)

var (
	statuses   = []string{"completed", "Completed", "canceled", "cancelled", "No-Show", "no show", "NOSHOW", "rescheduled", "Reschedule", "pending", ""}
	apptTypes  = []string{"therapy", "Med Check", "med-check", "medcheck", "intake", "Follow Up", "follow-up", "follow_up", "consult", ""}
	insurances = []string{"medicaid", "MCD", "Medicare", "mcr", "commercial", "COMM", "Private", "Self Pay", "self_pay", "tricare", ""}
	modalities = []string{"in_person", "In-Person", "telehealth", "Telehealth", "video", "virtual", "phone", ""}
	boolish    = []string{"Y", "N", "y", "n", "true", "false", "T", "F", "1", "0", "yes", "no", "maybe", ""}
	languages  = []string{"en", "es", "zh", "vi", ""}
	ageBands   = []string{"0-17", "18-34", "35-54", "55-74", "75+"}
	referrals  = []string{"pcp", "self", "school", "er", ""}
)

func main() {
	out := flag.String("out", "testdata/appointments-small.csv", "output CSV path")
	rows := flag.Int("rows", 200, "number of data rows to generate")
	dupes := flag.Int("dupes", 20, "number of duplicated appointment ids")
	seed := flag.Int64("seed", 7, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(model.RequiredColumns); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	written := 0

	emit := func(id string) {
		scheduled := base.Add(time.Duration(rng.Intn(90*24)) * time.Hour)
		created := scheduled.Add(-time.Duration(1+rng.Intn(30*24)) * time.Hour)
		visitStart := scheduled.Add(time.Duration(rng.Intn(45)-10) * time.Minute)
		visitEnd := visitStart.Add(time.Duration(20+rng.Intn(60)) * time.Minute)

		record := map[string]string{
			model.ColAppointmentID:     id,
			model.ColPatientID:         fmt.Sprintf("P%04d", rng.Intn(500)),
			model.ColProviderID:        fmt.Sprintf("DR%02d", rng.Intn(20)),
			model.ColClinicID:          fmt.Sprintf("C%02d", rng.Intn(5)),
			model.ColScheduledStart:    messyTime(rng, scheduled),
			model.ColScheduledEnd:      messyTime(rng, scheduled.Add(time.Hour)),
			model.ColCreatedAt:         messyTime(rng, created),
			model.ColCheckInTime:       maybeTime(rng, visitStart.Add(-5*time.Minute)),
			model.ColVisitStartTime:    maybeTime(rng, visitStart),
			model.ColVisitEndTime:      maybeTime(rng, visitEnd),
			model.ColCanceledAt:        "",
			model.ColCancelReason:      "",
			model.ColStatus:            pick(rng, statuses),
			model.ColStatusDetail:      "",
			model.ColFollowUpNeeded:    pick(rng, boolish),
			model.ColFollowUpScheduled: pick(rng, boolish),
			model.ColAppointmentType:   pick(rng, apptTypes),
			model.ColVisitModality:     pick(rng, modalities),
			model.ColInsuranceType:     pick(rng, insurances),
			model.ColReferralSource:    pick(rng, referrals),
			model.ColLanguage:          pick(rng, languages),
			model.ColZip3:              fmt.Sprintf("%03d", 100+rng.Intn(900)),
			model.ColAgeBand:           pick(rng, ageBands),
		}

		row := make([]string, len(model.RequiredColumns))
		for i, col := range model.RequiredColumns {
			row[i] = record[col]
		}
		if err := w.Write(row); err != nil {
			fmt.Fprintf(os.Stderr, "write row: %v\n", err)
			os.Exit(1)
		}
		written++
	}

	for i := 0; i < *rows-*dupes; i++ {
		emit(fmt.Sprintf("A%05d", i))
	}
	// Duplicate ids with different created_at so dedupe has work to do.
	for i := 0; i < *dupes; i++ {
		emit(fmt.Sprintf("A%05d", rng.Intn(*rows-*dupes)))
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", written, *out)
}

func pick(rng *rand.Rand, vals []string) string {
	return vals[rng.Intn(len(vals))]
}

// messyTime renders a timestamp in one of the formats the coercer must
// handle, plus the occasional garbage value.
func messyTime(rng *rand.Rand, t time.Time) string {
	switch rng.Intn(10) {
	case 0, 1, 2, 3, 4:
		return t.Format("2006-01-02 15:04:05")
	case 5, 6, 7:
		return t.Format("01/02/2006 15:04")
	case 8:
		return t.Format("2006-01-02T15:04:05")
	default:
		return "not a date"
	}
}

func maybeTime(rng *rand.Rand, t time.Time) string {
	if rng.Intn(5) == 0 {
		return ""
	}
	return messyTime(rng, t)
}
