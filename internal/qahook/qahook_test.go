package qahook

import "testing"

func TestNew(t *testing.T) {
	cases := []struct {
		label, context, kind string
		want                 string
	}{
		{"list-item-0", "list-item-0", "li", "qa-list-item-0-li"},
		{"Room Amenities", "group-title", "header", "qa-group-title-room-amenities-header"},
		{"  Spa & Wellness!! ", "group-title", "header", "qa-group-title-spa-wellness-header"},
		{"", "group-title", "header", "qa-group-title-header"},
	}
	for _, tc := range cases {
		if got := New(tc.label, tc.context, tc.kind); got != tc.want {
			t.Errorf("New(%q,%q,%q) = %q, want %q", tc.label, tc.context, tc.kind, got, tc.want)
		}
	}
}
