package domain

import "testing"

func TestRatio(t *testing.T) {
	t.Parallel()
	root := Rect{Y: 0, Height: 40}
	cases := []struct {
		name   string
		region Rect
		want   float64
	}{
		{"inside", Rect{Y: 5, Height: 10}, 1},
		{"half below", Rect{Y: 35, Height: 10}, 0.5},
		{"above", Rect{Y: -20, Height: 10}, 0},
		{"touching bottom edge", Rect{Y: 40, Height: 10}, 0},
		{"empty inside", Rect{Y: 10}, 1},
		{"empty outside", Rect{Y: 41}, 0},
	}
	for _, tc := range cases {
		if got := Ratio(tc.region, root); got != tc.want {
			t.Fatalf("%s: Ratio = %v, want %v", tc.name, got, tc.want)
		}
	}
	if got := Ratio(Rect{Y: 45, Height: 10}, root.Expand(7)); got != 0.2 {
		t.Fatalf("margin not applied: %v", got)
	}
}

func TestRegionLatch(t *testing.T) {
	t.Parallel()
	var r Region
	if r.Report(Entry{Ratio: 0.05}) || r.Loaded() {
		t.Fatalf("below threshold must not load")
	}
	if !r.Report(Entry{Ratio: 0.5, Intersecting: true}) || !r.Loaded() || !r.Visible() {
		t.Fatalf("first crossing must load")
	}
	if r.Report(Entry{Ratio: 1, Intersecting: true}) {
		t.Fatalf("second crossing must not transition again")
	}
	r.Report(Entry{})
	if !r.Loaded() || r.Visible() {
		t.Fatalf("loaded must stay latched while visibility follows reports")
	}
	if r.Force() {
		t.Fatalf("force on a loaded region must be a no-op")
	}
}
