package restriction

import (
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/carrierlock/pkg/carrier"
)

// WildCharacter matches any single character in a pattern
const WildCharacter = '?'

// PatternMatch performs a case-insensitive comparison of str against pattern.
// Both must have the same number of characters; a '?' in the pattern matches
// any character at that position. There are no other wildcards.
//
// When either string is not valid UTF-8 the comparison is done byte by byte
// with ASCII case folding, so distinct invalid bytes never compare equal.
func PatternMatch(str, pattern string) bool {
	if !validPair(str, pattern) {
		return byteMatch(str, pattern)
	}
	s := []rune(str)
	p := []rune(pattern)
	if len(s) != len(p) {
		return false
	}
	for i := range p {
		pc := unicode.ToLower(p[i])
		if pc != WildCharacter && pc != unicode.ToLower(s[i]) {
			return false
		}
	}
	return true
}

// prefixMatch truncates str to the length of pattern before matching, so a
// configured value may be shorter than the one on the SIM. An empty pattern
// always matches.
func prefixMatch(str, pattern string) bool {
	if !validPair(str, pattern) {
		if len(str) > len(pattern) {
			str = str[:len(pattern)]
		}
		return byteMatch(str, pattern)
	}
	s := []rune(str)
	n := len([]rune(pattern))
	if len(s) > n {
		s = s[:n]
	}
	return PatternMatch(string(s), pattern)
}

func validPair(str, pattern string) bool {
	return utf8.ValidString(str) && utf8.ValidString(pattern)
}

func byteMatch(str, pattern string) bool {
	if len(str) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		pc := asciiLower(pattern[i])
		if pc != WildCharacter && pc != asciiLower(str[i]) {
			return false
		}
	}
	return true
}

func asciiLower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// EntryMatches reports whether id satisfies a single rule entry.
//
// MCC and MNC must match with equal length. SPN is compared only when the
// entry sets one. IMSI, GID1 and GID2 are compared on the first len(entry
// field) characters of the SIM value.
func EntryMatches(id, entry carrier.Identifier) bool {
	if !PatternMatch(id.MCC, entry.MCC) || !PatternMatch(id.MNC, entry.MNC) {
		return false
	}
	if entry.SPN != "" && !PatternMatch(id.SPN, entry.SPN) {
		return false
	}
	return prefixMatch(id.IMSI, entry.IMSI) &&
		prefixMatch(id.GID1, entry.GID1) &&
		prefixMatch(id.GID2, entry.GID2)
}

// FirstMatch returns the index of the first entry in list matched by id, or
// -1 when none matches
func FirstMatch(id carrier.Identifier, list []carrier.Identifier) int {
	for i, entry := range list {
		if EntryMatches(id, entry) {
			return i
		}
	}
	return -1
}

// MatchesAny reports whether id matches at least one entry of list
func MatchesAny(id carrier.Identifier, list []carrier.Identifier) bool {
	return FirstMatch(id, list) >= 0
}
