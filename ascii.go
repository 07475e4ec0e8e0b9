package infra

// ============================================================
// ASCII Classification
// ============================================================

// CodeUnit is the input domain of the classification predicates: a single
// byte of a byte sequence, or a single code point of a string. The Infra
// Standard defines each ASCII range once and applies it to both worlds, so
// the predicates are generic rather than duplicated.
type CodeUnit interface {
	~byte | ~rune
}

// IsASCIIByte reports whether b is an ASCII byte (0x00 to 0x7F inclusive).
func IsASCIIByte(b byte) bool {
	return b <= 0x7F
}

// IsASCIICodePoint reports whether r is an ASCII code point
// (U+0000 to U+007F inclusive).
func IsASCIICodePoint(r rune) bool {
	return r >= 0 && r <= 0x7F
}

// IsASCIITabOrNewline reports whether c is U+0009 TAB, U+000A LF, or
// U+000D CR.
func IsASCIITabOrNewline[T CodeUnit](c T) bool {
	return c == 0x09 || c == 0x0A || c == 0x0D
}

// IsASCIIWhitespace reports whether c is ASCII whitespace: U+0009 TAB,
// U+000A LF, U+000C FF, U+000D CR, or U+0020 SPACE.
//
// Note U+000B VERTICAL TAB is not ASCII whitespace.
func IsASCIIWhitespace[T CodeUnit](c T) bool {
	return c == 0x09 || c == 0x0A || c == 0x0C || c == 0x0D || c == 0x20
}

// IsASCIIDigit reports whether c is in the range U+0030 (0) to U+0039 (9).
func IsASCIIDigit[T CodeUnit](c T) bool {
	return c >= '0' && c <= '9'
}

// IsASCIIUpperHexDigit reports whether c is an ASCII digit or in the range
// U+0041 (A) to U+0046 (F).
func IsASCIIUpperHexDigit[T CodeUnit](c T) bool {
	return IsASCIIDigit(c) || (c >= 'A' && c <= 'F')
}

// IsASCIILowerHexDigit reports whether c is an ASCII digit or in the range
// U+0061 (a) to U+0066 (f).
func IsASCIILowerHexDigit[T CodeUnit](c T) bool {
	return IsASCIIDigit(c) || (c >= 'a' && c <= 'f')
}

// IsASCIIHexDigit reports whether c is an ASCII upper or lower hex digit.
func IsASCIIHexDigit[T CodeUnit](c T) bool {
	return IsASCIIUpperHexDigit(c) || IsASCIILowerHexDigit(c)
}

// IsASCIIUpperAlpha reports whether c is in the range U+0041 (A) to
// U+005A (Z).
func IsASCIIUpperAlpha[T CodeUnit](c T) bool {
	return c >= 'A' && c <= 'Z'
}

// IsASCIILowerAlpha reports whether c is in the range U+0061 (a) to
// U+007A (z).
func IsASCIILowerAlpha[T CodeUnit](c T) bool {
	return c >= 'a' && c <= 'z'
}

// IsASCIIAlpha reports whether c is an ASCII upper or lower alpha.
func IsASCIIAlpha[T CodeUnit](c T) bool {
	return IsASCIIUpperAlpha(c) || IsASCIILowerAlpha(c)
}

// IsASCIIAlphanumeric reports whether c is an ASCII digit or ASCII alpha.
func IsASCIIAlphanumeric[T CodeUnit](c T) bool {
	return IsASCIIDigit(c) || IsASCIIAlpha(c)
}

// ============================================================
// ASCII Case Conversion
// ============================================================

const asciiCaseDelta = 'a' - 'A'

// ToASCIILowercase returns s with every ASCII upper alpha replaced by its
// lowercase counterpart. All other code points pass through unchanged.
func ToASCIILowercase(s string) string {
	return mapASCII(s, func(c rune) rune {
		if IsASCIIUpperAlpha(c) {
			return c + asciiCaseDelta
		}
		return c
	})
}

// ToASCIIUppercase returns s with every ASCII lower alpha replaced by its
// uppercase counterpart. All other code points pass through unchanged.
func ToASCIIUppercase(s string) string {
	return mapASCII(s, func(c rune) rune {
		if IsASCIILowerAlpha(c) {
			return c - asciiCaseDelta
		}
		return c
	})
}

// mapASCII applies f to each code point of s, returning s itself when no
// code point changed. f must map ASCII to ASCII so byte offsets are stable.
func mapASCII(s string, f func(rune) rune) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || f(rune(c)) == rune(c) {
			continue
		}
		b := make([]byte, len(s))
		copy(b, s[:i])
		for ; i < len(s); i++ {
			c = s[i]
			if c < 0x80 {
				b[i] = byte(f(rune(c)))
			} else {
				b[i] = c
			}
		}
		return string(b)
	}
	return s
}
