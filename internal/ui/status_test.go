package ui

import "testing"

func TestStatusLine(t *testing.T) {
	cases := []struct {
		gen, pop int
		paused   bool
		want     string
	}{
		{0, 5, false, "gen 0  pop 5"},
		{42, 0, true, "gen 42  pop 0  [paused]"},
	}
	for _, tc := range cases {
		if got := StatusLine(tc.gen, tc.pop, tc.paused); got != tc.want {
			t.Fatalf("StatusLine(%d, %d, %v) = %q, want %q", tc.gen, tc.pop, tc.paused, got, tc.want)
		}
	}
}
