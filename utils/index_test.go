package utils

import "testing"

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		7.666666: 7.67,
		7.5:      7.5,
		0:        0,
		9.999:    10,
		3.14159:  3.14,
	}
	for in, want := range cases {
		if got := Round2(in); got != want {
			t.Errorf("Round2(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList("action, drama ,thriller")
	want := []string{"action", "drama", "thriller"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: got %q want %q", i, got[i], want[i])
		}
	}

	if got := SplitList(""); len(got) != 0 {
		t.Errorf("expected empty slice for empty input, got %v", got)
	}
}
