package core

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ann", "ann"},
		{"  ann  ", "ann"},
		{"", "anon"},
		{"   ", "anon"},
		{"a,b", "a b"},
		{"line\nbreak", "line break"},
		{"tab\there", "tab here"},
		{"abcdefghijklmnop", "abcdefghijkl"},
		{"ééééééééééééééé", "éééééééééééé"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			if got := NormalizeName(tc.in); got != tc.want {
				t.Errorf("NormalizeName(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}
