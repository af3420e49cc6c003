package main

import (
	"testing"
	"unicode/utf8"
)

func TestTruncateKeepsRunesIntact(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a very long innovation title", 10, "a very lo…"},
		{"Santé numérique pour les zones rurales", 10, "Santé num…"},
		{"éééééééééé", 5, "éééé…"},
	}
	for _, tc := range cases {
		got := truncate(tc.in, tc.n)
		if got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tc.in, tc.n, got)
		}
	}
}
