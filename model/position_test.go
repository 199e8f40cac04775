package model

import "testing"

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in       string
		expected Position
	}{
		{in: "QB", expected: POS_QB},
		{in: "qb", expected: POS_QB},
		{in: "RB", expected: POS_RB},
		{in: "WR", expected: POS_WR},
		{in: "TE", expected: POS_TE},
		{in: "K", expected: POS_K},
		{in: "DEF", expected: POS_DEF},
		{in: "DST", expected: POS_DEF},
		{in: "OL", expected: POS_UNKNOWN},
		{in: "", expected: POS_UNKNOWN},
	}

	for _, tc := range tests {
		if got := ParsePosition(tc.in); got != tc.expected {
			t.Errorf("ParsePosition(%q) - expected %s, got %s", tc.in, tc.expected, got)
		}
	}
}
