package grid_test

import (
	"errors"
	"testing"

	"cupid_fragments/internal/grid"
	"cupid_fragments/internal/style"
)

type recordingSpanner struct{ ratios []string }

func (r *recordingSpanner) Span(ratio string, mode grid.Mode) (string, error) {
	r.ratios = append(r.ratios, ratio+"/"+string(mode))
	return "W", nil
}

func TestColumnStyle(t *testing.T) {
	cases := []struct {
		cols    style.Columns
		ok      bool
		ratio   string
		columns string
	}{
		{1, false, "", ""},
		{2, true, "3 of 6/static", "W 2"},
		{3, true, "2 of 6/static", "W 3"},
	}
	for _, tc := range cases {
		sp := &recordingSpanner{}
		f, ok, err := grid.ColumnStyle(tc.cols, sp)
		if err != nil {
			t.Fatalf("cols=%d err: %v", tc.cols, err)
		}
		if ok != tc.ok {
			t.Fatalf("cols=%d ok=%v", tc.cols, ok)
		}
		if !ok {
			if f != nil || len(sp.ratios) != 0 {
				t.Fatalf("single column must not emit a column style: %+v %v", f, sp.ratios)
			}
			continue
		}
		if sp.ratios[0] != tc.ratio {
			t.Fatalf("cols=%d ratio %q", tc.cols, sp.ratios[0])
		}
		if f["columns"] != tc.columns || f["columnGap"] != "1.8461538461538463em" {
			t.Fatalf("cols=%d fragment %+v", tc.cols, f)
		}
	}
}

func TestColumnStyle_Invalid(t *testing.T) {
	if _, _, err := grid.ColumnStyle(5, grid.DefaultSettings()); !errors.Is(err, style.ErrInvalidVariant) {
		t.Fatalf("expected invalid variant, got %v", err)
	}
}

func TestSettingsSpan(t *testing.T) {
	s := grid.Settings{ColumnWidth: 100, Gutter: 20}
	cases := []struct {
		ratio string
		mode  grid.Mode
		want  string
	}{
		{"3 of 6", grid.Static, "340px"},
		{"2 of 6", grid.Static, "220px"},
		{"6 of 6", grid.Static, "700px"},
		{"3 of 6", grid.Fluid, "50%"},
		{"2 of 8", grid.Fluid, "25%"},
	}
	for _, tc := range cases {
		got, err := s.Span(tc.ratio, tc.mode)
		if err != nil {
			t.Fatalf("%s %s: %v", tc.ratio, tc.mode, err)
		}
		if got != tc.want {
			t.Fatalf("%s %s: got %q want %q", tc.ratio, tc.mode, got, tc.want)
		}
	}

	for _, bad := range []string{"", "3/6", "x of 6", "7 of 6", "0 of 6"} {
		if _, err := s.Span(bad, grid.Static); !errors.Is(err, grid.ErrBadRatio) {
			t.Fatalf("%q: expected ErrBadRatio, got %v", bad, err)
		}
	}
	if _, err := s.Span("1 of 6", grid.Mode("elastic")); err == nil {
		t.Fatalf("expected unknown mode error")
	}
}

func TestPinnedMode(t *testing.T) {
	m, err := grid.ParseMode(" Fluid ")
	if err != nil || m != grid.Fluid {
		t.Fatalf("parse: %q %v", m, err)
	}
	if m, _ := grid.ParseMode(""); m != grid.Static {
		t.Fatalf("empty mode should be static, got %q", m)
	}
	if _, err := grid.ParseMode("elastic"); err == nil {
		t.Fatalf("unknown mode should fail")
	}

	sp := &recordingSpanner{}
	f, ok, err := grid.ColumnStyle(2, grid.Pin(sp, grid.Fluid))
	if err != nil || !ok || f["columns"] != "W 2" {
		t.Fatalf("pinned column style: %v %v %v", f, ok, err)
	}
	if sp.ratios[0] != "3 of 6/fluid" {
		t.Fatalf("pinned spanner should ask in fluid mode: %v", sp.ratios)
	}

	got, _ := grid.Pin(grid.DefaultSettings(), grid.Fluid).Span("3 of 6", grid.Static)
	if got != "50%" {
		t.Fatalf("fluid half: %q", got)
	}
}
