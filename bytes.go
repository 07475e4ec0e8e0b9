package infra

import (
	"fmt"
	"strings"
)

// ============================================================
// Byte Sequence Operations
// ============================================================

// ByteLowercase returns a copy of b with every byte in the range 0x41 (A)
// to 0x5A (Z) replaced by the corresponding byte in 0x61 (a) to 0x7A (z).
func ByteLowercase(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if IsASCIIUpperAlpha(c) {
			c += asciiCaseDelta
		}
		out[i] = c
	}
	return out
}

// ByteUppercase returns a copy of b with every byte in the range 0x61 (a)
// to 0x7A (z) replaced by the corresponding byte in 0x41 (A) to 0x5A (Z).
func ByteUppercase(b []byte) []byte {
	out := make([]byte, len(b))
	for i, c := range b {
		if IsASCIILowerAlpha(c) {
			c -= asciiCaseDelta
		}
		out[i] = c
	}
	return out
}

// ByteCaseInsensitiveEqual reports whether the byte-lowercase of a equals
// the byte-lowercase of b, without allocating either.
func ByteCaseInsensitiveEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		ca, cb := a[i], b[i]
		if IsASCIIUpperAlpha(ca) {
			ca += asciiCaseDelta
		}
		if IsASCIIUpperAlpha(cb) {
			cb += asciiCaseDelta
		}
		if ca != cb {
			return false
		}
	}
	return true
}

// ByteLessThan reports whether a is byte less than b: a is a proper prefix
// of b, or at the first index where they differ a's byte is smaller.
func ByteLessThan(a, b []byte) bool {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// IsomorphicEncode converts s to a byte sequence, mapping each code point
// to the byte of equal value. It is defined only for strings whose code
// points are all at or below U+00FF and reports an error otherwise.
func IsomorphicEncode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i, r := range s {
		if r > 0xFF {
			return nil, fmt.Errorf("isomorphic encode: code point U+%04X at offset %d exceeds U+00FF", r, i)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

// IsomorphicDecode converts a byte sequence to a string, mapping each byte
// to the code point of equal value. Bytes 0x80 to 0xFF become the code
// points U+0080 to U+00FF, not themselves, so the result is valid UTF-8.
func IsomorphicDecode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		sb.WriteRune(rune(c))
	}
	return sb.String()
}
