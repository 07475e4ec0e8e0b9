package infra

import "strings"

// ============================================================
// Whitespace Stripping and Newline Normalization
// ============================================================

// StripLeadingAndTrailingASCIIWhitespace removes ASCII whitespace from both
// ends of s. Interior whitespace is preserved.
func StripLeadingAndTrailingASCIIWhitespace(s string) string {
	start := 0
	for start < len(s) && IsASCIIWhitespace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && IsASCIIWhitespace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// StripAndCollapseASCIIWhitespace replaces every run of ASCII whitespace in
// s with a single U+0020 SPACE, then removes leading and trailing
// whitespace. The result never starts or ends with whitespace and never
// contains two adjacent spaces.
func StripAndCollapseASCIIWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if IsASCIIWhitespace(c) {
			inRun = true
			continue
		}
		if inRun && b.Len() > 0 {
			b.WriteByte(' ')
		}
		inRun = false
		b.WriteByte(c)
	}
	return b.String()
}

// StripNewlines removes every U+000A LF and U+000D CR code point from s.
func StripNewlines(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c != '\n' && c != '\r' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// NormalizeNewlines replaces every U+000D U+000A pair in s with a single
// U+000A, then replaces every remaining U+000D with U+000A.
func NormalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
