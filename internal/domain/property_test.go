package domain

import "testing"

func TestPropertyLocation(t *testing.T) {
	cases := []struct {
		p    Property
		want string
	}{
		{Property{City: "Paris", Country: "France"}, "Paris, France"},
		{Property{City: "Paris"}, "Paris"},
		{Property{Country: "France"}, "France"},
		{Property{}, ""},
	}
	for _, tc := range cases {
		if got := tc.p.Location(); got != tc.want {
			t.Errorf("Location() = %q, want %q", got, tc.want)
		}
	}
}
