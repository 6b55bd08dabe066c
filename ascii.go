package ctype

// EqualFold reports whether s and t are equal under ASCII case folding.
// Bytes outside the two letter ranges must match exactly.
func EqualFold(s, t string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if ToLower(int(s[i])) != ToLower(int(t[i])) {
			return false
		}
	}
	return true
}

// HasPrefixFold reports whether s begins with prefix under ASCII case
// folding.
func HasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return EqualFold(s[:len(prefix)], prefix)
}

// HasSuffixFold reports whether s ends with suffix under ASCII case
// folding.
func HasSuffixFold(s, suffix string) bool {
	if len(s) < len(suffix) {
		return false
	}
	return EqualFold(s[len(s)-len(suffix):], suffix)
}

// LowerString returns s with ASCII uppercase letters mapped to lowercase.
// If no byte needs to change it returns s without a copy. Bytes outside
// the ASCII range pass through untouched.
func LowerString(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if IsUpper(int(s[i])) {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	LowerBytes(b[i:])
	return string(b)
}

// UpperString returns s with ASCII lowercase letters mapped to uppercase.
// If no byte needs to change it returns s without a copy.
func UpperString(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if IsLower(int(s[i])) {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	UpperBytes(b[i:])
	return string(b)
}

// LowerBytes maps ASCII uppercase letters in p to lowercase in place.
func LowerBytes(p []byte) {
	for i, c := range p {
		p[i] = byte(ToLower(int(c)))
	}
}

// UpperBytes maps ASCII lowercase letters in p to uppercase in place.
func UpperBytes(p []byte) {
	for i, c := range p {
		p[i] = byte(ToUpper(int(c)))
	}
}

// IndexNonASCII returns the index of the first byte of s outside the
// ASCII range. It returns -1 if there is no such byte.
func IndexNonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return i
		}
	}
	return -1
}

// Valid reports whether every byte of s is ASCII.
func Valid(s string) bool {
	return IndexNonASCII(s) == -1
}

// SkipSpace skips whitespace from p.
// It returns number of bytes skipped.
func SkipSpace(p []byte) (n int) {
	for n < len(p) && IsSpace(int(p[n])) {
		n++
	}
	return
}

// TrimSpace returns a subslice of p with leading and trailing whitespace
// removed. It never copies.
func TrimSpace(p []byte) []byte {
	p = p[SkipSpace(p):]
	for len(p) > 0 && IsSpace(int(p[len(p)-1])) {
		p = p[:len(p)-1]
	}
	return p
}
