package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// trailingSeparators are stripped from the kept prefix.
const trailingSeparators = ".-_ "

// keywordIndex returns the byte offset of the first occurrence of keyword
// in name, or -1. Case-insensitive matching folds rune by rune using simple
// Unicode case folding; it is ordinal, not locale aware.
func keywordIndex(name, keyword string, caseSensitive bool) int {
	if keyword == "" {
		return -1
	}

	if caseSensitive {
		return strings.Index(name, keyword)
	}

	for i := range name {
		if hasFoldPrefix(name[i:], keyword) {
			return i
		}
	}

	return -1
}

func hasFoldPrefix(s, prefix string) bool {
	for _, want := range prefix {
		if s == "" {
			return false
		}

		got, size := utf8.DecodeRuneInString(s)
		if !equalFoldRune(got, want) {
			return false
		}

		s = s[size:]
	}

	return true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}

	// SimpleFold walks the orbit of case-equivalent runes back to a.
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}

	return false
}

// trimTrailingSeparators removes dots, dashes, underscores and spaces from
// the end of s, repeatedly.
func trimTrailingSeparators(s string) string {
	return strings.TrimRight(s, trailingSeparators)
}

// trimmedBase returns the part of base before keyword with trailing
// separators removed. ok is false when the keyword is absent or nothing
// but whitespace would remain.
func trimmedBase(base, keyword string, caseSensitive bool) (string, bool) {
	idx := keywordIndex(base, keyword, caseSensitive)
	if idx < 0 {
		return "", false
	}

	trimmed := trimTrailingSeparators(base[:idx])
	if strings.TrimSpace(trimmed) == "" {
		return "", false
	}

	return trimmed, true
}
