// Package ctype contains classification and case conversion utils for
// single character codes in the US-ASCII range.
//
// That is, this package mirrors the classic C <ctype.h> family (IsAlpha,
// IsDigit, IsSpace, ToLower and friends) as pure functions of an int
// argument. Every function is total: any int, including the conventional
// -1 "no character" sentinel and values above 255, produces a defined
// result with no error and no panic. Out of range input is simply outside
// every classified range.
package ctype

// IsASCII reports whether c has no bits set above bit 6, that is, whether
// it fits the 7-bit US-ASCII range 0..127.
func IsASCII(c int) bool {
	return c&^0x7f == 0
}

// IsBlank reports whether c is space or horizontal tab.
func IsBlank(c int) bool {
	return c == ' ' || c == '\t'
}

// IsUpper reports whether c is an uppercase letter 'A'..'Z'.
func IsUpper(c int) bool {
	return 'A' <= c && c <= 'Z'
}

// IsLower reports whether c is a lowercase letter 'a'..'z'.
func IsLower(c int) bool {
	return 'a' <= c && c <= 'z'
}

// IsAlpha reports whether c is a letter of either case. Case is folded by
// setting bit 5: the two letter ranges are 32 apart in the encoding.
func IsAlpha(c int) bool {
	f := c | 0x20
	return 'a' <= f && f <= 'z'
}

// IsDigit reports whether c is a decimal digit '0'..'9'.
func IsDigit(c int) bool {
	return '0' <= c && c <= '9'
}

// IsAlnum reports whether c is a letter or a decimal digit.
func IsAlnum(c int) bool {
	return IsAlpha(c) || IsDigit(c)
}

// IsSpace reports whether c is whitespace: space, or one of the five
// contiguous control codes '\t', '\n', '\v', '\f', '\r'.
func IsSpace(c int) bool {
	return c == ' ' || '\t' <= c && c <= '\r'
}

// IsXDigit reports whether c is a hexadecimal digit of either case.
func IsXDigit(c int) bool {
	if IsDigit(c) {
		return true
	}
	f := c | 0x20
	return 'a' <= f && f <= 'f'
}

// IsGraph reports whether c is printable and not space: 0x21..0x7e.
func IsGraph(c int) bool {
	return 0x21 <= c && c <= 0x7e
}

// IsPrint reports whether c is printable including space: 0x20..0x7e.
func IsPrint(c int) bool {
	return ' ' <= c && c <= 0x7e
}

// IsPunct reports whether c is printable but neither a letter, a digit,
// nor space.
func IsPunct(c int) bool {
	return IsGraph(c) && !IsAlnum(c)
}

// IsCntrl reports whether c is a control character: a code below 0x20, or
// DEL (0x7f).
func IsCntrl(c int) bool {
	return 0 <= c && c < 0x20 || c == 0x7f
}

// ToLower returns the lowercase version of c if c is an uppercase letter,
// and c unchanged otherwise. Lowering sets bit 5 of the code.
func ToLower(c int) int {
	if IsUpper(c) {
		return c | 0x20
	}
	return c
}

// ToUpper returns the uppercase version of c if c is a lowercase letter,
// and c unchanged otherwise. Uppering clears bit 5 of the code.
func ToUpper(c int) int {
	if IsLower(c) {
		return c & 0x5f
	}
	return c
}

// ToASCII returns the low 7 bits of c, discarding everything above.
func ToASCII(c int) int {
	return c & 0x7f
}
