package core

import "testing"

func TestUtoa(t *testing.T) {
	testCases := []struct {
		n        uint32
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{60, "60"},
		{5999, "5999"},
		{4294967295, "4294967295"},
	}

	for _, tc := range testCases {
		if got := utoa(tc.n); got != tc.expected {
			t.Errorf("utoa(%d) = %q, want %q", tc.n, got, tc.expected)
		}
	}
}

func TestFormatMMSS(t *testing.T) {
	testCases := []struct {
		seconds  uint32
		expected string
	}{
		{0, "00:00"},
		{9, "00:09"},
		{60, "01:00"},
		{90, "01:30"},
		{5999, "99:59"},
	}

	for _, tc := range testCases {
		if got := formatMMSS(tc.seconds); got != tc.expected {
			t.Errorf("formatMMSS(%d) = %q, want %q", tc.seconds, got, tc.expected)
		}
	}
}
