package normalize

import "sort"

// Canonical vocabularies: the closed sets of valid values per categorical
// field after cleaning.
var (
	CanonicalStatus = map[string]bool{
		"completed": true, "canceled": true, "no_show": true, "rescheduled": true,
	}
	CanonicalAppointmentType = map[string]bool{
		"therapy": true, "med_check": true, "intake": true, "follow_up": true,
	}
	CanonicalInsuranceType = map[string]bool{
		"medicaid": true, "medicare": true, "commercial": true, "self_pay": true,
	}
	CanonicalModality = map[string]bool{
		"in_person": true, "telehealth": true,
	}
)

// Synonym tables: normalized raw spelling → canonical value. Keys must be in
// Text() normal form (lowercase, hyphens already folded to spaces), so
// hyphenated variants appear here spelled with spaces.
var (
	StatusSynonyms = map[string]string{
		"completed":   "completed",
		"canceled":    "canceled",
		"cancelled":   "canceled",
		"no show":     "no_show",
		"no_show":     "no_show",
		"noshow":      "no_show",
		"rescheduled": "rescheduled",
		"reschedule":  "rescheduled",
	}

	AppointmentTypeSynonyms = map[string]string{
		"therapy":   "therapy",
		"med check": "med_check",
		"med_check": "med_check",
		"medcheck":  "med_check",
		"intake":    "intake",
		"follow up": "follow_up",
		"follow_up": "follow_up",
		"followup":  "follow_up",
	}

	InsuranceTypeSynonyms = map[string]string{
		"medicaid":   "medicaid",
		"mcd":        "medicaid",
		"medicare":   "medicare",
		"mcr":        "medicare",
		"commercial": "commercial",
		"comm":       "commercial",
		"private":    "commercial",
		"self pay":   "self_pay",
		"self_pay":   "self_pay",
		"selfpay":    "self_pay",
	}

	ModalitySynonyms = map[string]string{
		"in person":  "in_person",
		"in_person":  "in_person",
		"telehealth": "telehealth",
		"virtual":    "telehealth",
		"video":      "telehealth",
	}
)

// MapCategory maps a raw categorical value to its canonical form via the
// given synonym table. Returns nil for missing input and for values with no
// known synonym; never errors, never logs.
func MapCategory(raw string, synonyms map[string]string) *string {
	s := Text(raw)
	if s == "" {
		return nil
	}
	if canon, ok := synonyms[s]; ok {
		return &canon
	}
	return nil
}

// Unexpected returns the sorted set of observed non-empty values that are not
// in the allowed canonical set. Diagnostic only: it never alters cleaning.
func Unexpected(observed []string, allowed map[string]bool) []string {
	seen := make(map[string]bool)
	for _, v := range observed {
		if v != "" && !allowed[v] {
			seen[v] = true
		}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
