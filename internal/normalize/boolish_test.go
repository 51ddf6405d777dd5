package normalize

import "testing"

func TestParseBoolish(t *testing.T) {
	truthy := []string{"true", "T", "yes", "Y", "1", "  y  ", "TRUE"}
	for _, in := range truthy {
		got := ParseBoolish(in)
		if got == nil || !*got {
			t.Errorf("ParseBoolish(%q) = %v, want true", in, got)
		}
	}

	falsy := []string{"false", "F", "no", "N", "0", " n "}
	for _, in := range falsy {
		got := ParseBoolish(in)
		if got == nil || *got {
			t.Errorf("ParseBoolish(%q) = %v, want false", in, got)
		}
	}

	unknown := []string{"", "   ", "maybe", "2", "yep", "true-ish"}
	for _, in := range unknown {
		if got := ParseBoolish(in); got != nil {
			t.Errorf("ParseBoolish(%q) = %v, want nil", in, *got)
		}
	}
}
