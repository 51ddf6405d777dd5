package normalize

import "testing"

func TestText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"Completed", "completed"},
		{"  No-Show  ", "no show"},
		{"MED-CHECK", "med check"},
		{"follow   up", "follow up"},
		{"Self\tPay", "self pay"},
		{"in_person", "in_person"},
		{"--", ""},
	}
	for _, c := range cases {
		if got := Text(c.in); got != c.want {
			t.Errorf("Text(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
