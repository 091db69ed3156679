package model

import "testing"

func TestValidScreen(t *testing.T) {
	cases := []struct {
		screen string
		want   bool
	}{
		{"standard", true},
		{"3d", true},
		{"imax", true},
		{"4dx", true},
		{"omnimax", false},
		{"IMAX", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := ValidScreen(tc.screen); got != tc.want {
			t.Errorf("ValidScreen(%q) = %v, want %v", tc.screen, got, tc.want)
		}
	}
}
