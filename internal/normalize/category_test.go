package normalize

import (
	"reflect"
	"testing"
)

func TestMapCategory_Status(t *testing.T) {
	cases := []struct {
		in   string
		want string // "" means unmapped
	}{
		{"completed", "completed"},
		{"Completed", "completed"},
		{"canceled", "canceled"},
		{"cancelled", "canceled"},
		{"No-Show", "no_show"},
		{"no show", "no_show"},
		{"NOSHOW", "no_show"},
		{"no_show", "no_show"},
		{"Reschedule", "rescheduled"},
		{"pending", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		got := MapCategory(c.in, StatusSynonyms)
		if c.want == "" {
			if got != nil {
				t.Errorf("MapCategory(%q) = %q, want nil", c.in, *got)
			}
			continue
		}
		if got == nil || *got != c.want {
			t.Errorf("MapCategory(%q) = %v, want %q", c.in, got, c.want)
		}
	}
}

func TestMapCategory_Insurance(t *testing.T) {
	cases := map[string]string{
		"MCD":      "medicaid",
		"mcr":      "medicare",
		"Private":  "commercial",
		"comm":     "commercial",
		"Self-Pay": "self_pay",
		"Self Pay": "self_pay",
	}
	for in, want := range cases {
		got := MapCategory(in, InsuranceTypeSynonyms)
		if got == nil || *got != want {
			t.Errorf("MapCategory(%q) = %v, want %q", in, got, want)
		}
	}
}

func TestMapCategory_AppointmentType(t *testing.T) {
	cases := map[string]string{
		"Med Check": "med_check",
		"med-check": "med_check",
		"MEDCHECK":  "med_check",
		"Follow-Up": "follow_up",
		"intake":    "intake",
	}
	for in, want := range cases {
		got := MapCategory(in, AppointmentTypeSynonyms)
		if got == nil || *got != want {
			t.Errorf("MapCategory(%q) = %v, want %q", in, got, want)
		}
	}
}

// Every synonym table maps into its field's canonical vocabulary, so mapping
// can never introduce an out-of-vocabulary value.
func TestSynonymTablesClosed(t *testing.T) {
	tables := []struct {
		name     string
		synonyms map[string]string
		allowed  map[string]bool
	}{
		{"status", StatusSynonyms, CanonicalStatus},
		{"appointment_type", AppointmentTypeSynonyms, CanonicalAppointmentType},
		{"insurance_type", InsuranceTypeSynonyms, CanonicalInsuranceType},
		{"visit_modality", ModalitySynonyms, CanonicalModality},
	}
	for _, tb := range tables {
		for syn, canon := range tb.synonyms {
			if !tb.allowed[canon] {
				t.Errorf("%s: synonym %q maps to %q, not in vocabulary", tb.name, syn, canon)
			}
			if Text(syn) != syn {
				t.Errorf("%s: synonym key %q is not in normal form", tb.name, syn)
			}
		}
		// Canonical values map to themselves.
		for canon := range tb.allowed {
			got := MapCategory(canon, tb.synonyms)
			if got == nil || *got != canon {
				t.Errorf("%s: canonical %q is not a fixed point (got %v)", tb.name, canon, got)
			}
		}
	}
}

func TestUnexpected(t *testing.T) {
	observed := []string{"completed", "pending", "No-Show", "", "pending", "canceled"}
	got := Unexpected(observed, CanonicalStatus)
	want := []string{"No-Show", "pending"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Unexpected = %v, want %v", got, want)
	}
}

func TestUnexpected_AllAllowed(t *testing.T) {
	got := Unexpected([]string{"completed", "canceled", ""}, CanonicalStatus)
	if len(got) != 0 {
		t.Errorf("Unexpected = %v, want empty", got)
	}
}
