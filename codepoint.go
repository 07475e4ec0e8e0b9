package infra

// ============================================================
// Code Point Classification
// ============================================================

// IsSurrogate reports whether r is a surrogate code point
// (U+D800 to U+DFFF inclusive).
func IsSurrogate(r rune) bool {
	return r >= 0xD800 && r <= 0xDFFF
}

// IsScalarValue reports whether r is a Unicode scalar value: a code point
// in range U+0000 to U+10FFFF that is not a surrogate.
func IsScalarValue(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && !IsSurrogate(r)
}

// IsNoncharacter reports whether r is a noncharacter: a code point in the
// range U+FDD0 to U+FDEF inclusive, or the last two code points of any
// plane (U+FFFE, U+FFFF, U+1FFFE, U+1FFFF, ... U+10FFFE, U+10FFFF).
func IsNoncharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	return r >= 0xFFFE && r <= 0x10FFFF && r&0xFFFE == 0xFFFE
}

// IsC0Control reports whether r is a C0 control: U+0000 NULL to
// U+001F INFORMATION SEPARATOR ONE inclusive.
//
// This is narrower than unicode.IsControl, which also covers U+007F DELETE
// and the C1 range.
func IsC0Control(r rune) bool {
	return r >= 0 && r <= 0x1F
}

// IsC0ControlOrSpace reports whether r is a C0 control or U+0020 SPACE.
func IsC0ControlOrSpace(r rune) bool {
	return r >= 0 && r <= 0x20
}

// IsControl reports whether r is a control: a C0 control or a code point
// in the range U+007F DELETE to U+009F APPLICATION PROGRAM COMMAND.
func IsControl(r rune) bool {
	return IsC0Control(r) || (r >= 0x7F && r <= 0x9F)
}
