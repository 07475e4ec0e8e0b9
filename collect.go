package infra

import "unicode/utf8"

// ============================================================
// Code Point Collection and String Splitting
// ============================================================

// CollectCodePoints collects a sequence of code points from s meeting
// predicate, starting at the byte offset *position. It advances *position
// past every consecutive code point for which predicate holds and returns
// the collected run. If *position is at or past the end of s, it returns
// the empty string and leaves *position unchanged.
//
// Positions are byte offsets into s, as everywhere in Go; *position must
// lie on a code point boundary.
func CollectCodePoints(s string, position *int, predicate func(rune) bool) string {
	if *position < 0 || *position >= len(s) {
		return ""
	}
	start := *position
	for *position < len(s) {
		r, size := utf8.DecodeRuneInString(s[*position:])
		if !predicate(r) {
			break
		}
		*position += size
	}
	return s[start:*position]
}

// SkipASCIIWhitespace advances *position past any ASCII whitespace in s.
func SkipASCIIWhitespace(s string, position *int) {
	for *position >= 0 && *position < len(s) && IsASCIIWhitespace(s[*position]) {
		*position++
	}
}

// StrictlySplit splits s on the delimiter code point: every occurrence of
// delimiter starts a new token, and empty tokens are kept. Splitting the
// empty string yields a single empty token, matching the Infra algorithm.
func StrictlySplit(s string, delimiter rune) []string {
	tokens := []string{}
	position := 0
	for {
		token := CollectCodePoints(s, &position, func(r rune) bool {
			return r != delimiter
		})
		tokens = append(tokens, token)
		if position >= len(s) {
			return tokens
		}
		position += utf8.RuneLen(delimiter)
	}
}

// SplitOnASCIIWhitespace splits s on runs of ASCII whitespace. The result
// contains no empty tokens and no whitespace.
func SplitOnASCIIWhitespace(s string) []string {
	tokens := []string{}
	position := 0
	SkipASCIIWhitespace(s, &position)
	for position < len(s) {
		token := CollectCodePoints(s, &position, func(r rune) bool {
			return !IsASCIIWhitespace(r)
		})
		tokens = append(tokens, token)
		SkipASCIIWhitespace(s, &position)
	}
	return tokens
}

// SplitOnCommas splits s on U+002C COMMA, stripping leading and trailing
// ASCII whitespace from each token. Empty tokens are kept.
func SplitOnCommas(s string) []string {
	tokens := StrictlySplit(s, ',')
	for i, token := range tokens {
		tokens[i] = StripLeadingAndTrailingASCIIWhitespace(token)
	}
	return tokens
}
