package core

import "strings"

// MaxNameLength is the longest player name kept with a score.
const MaxNameLength = 12

// NormalizeName trims a player name and cuts it to MaxNameLength runes.
// Commas and line breaks become spaces so a name always fits one
// "<name>,<score>" line. An empty name becomes "anon".
func NormalizeName(name string) string {
	name = strings.Map(func(r rune) rune {
		switch r {
		case ',', '\n', '\r', '\t':
			return ' '
		}
		return r
	}, name)
	name = strings.TrimSpace(name)

	if r := []rune(name); len(r) > MaxNameLength {
		name = strings.TrimSpace(string(r[:MaxNameLength]))
	}
	if name == "" {
		return "anon"
	}
	return name
}
