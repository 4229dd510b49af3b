// FILE: lixenwraith/xrmconfig/cmdline/parse.go

package cmdline

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrMalformed reports text that could only be partially converted.
// The accompanying value is still the best-effort result.
var ErrMalformed = errors.New("malformed value")

const blanks = " \t\n\v\f\r"

// scanDecimal reads an optionally signed run of decimal digits after leading
// blanks. The magnitude saturates at math.MaxUint64 and overflow is reported.
func scanDecimal(s string) (n uint64, neg, overflow bool, digits int, rest string) {
	s = strings.TrimLeft(s, blanks)
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		d := uint64(s[digits] - '0')
		if overflow || n > (math.MaxUint64-d)/10 {
			n = math.MaxUint64
			overflow = true
		} else {
			n = n*10 + d
		}
		digits++
	}
	return n, neg, overflow, digits, s[digits:]
}

func malformed(kind, s string) error {
	return fmt.Errorf("%w: %q is not a base-10 %s", ErrMalformed, s, kind)
}

// ParseUint converts s to an unsigned 32-bit integer the way strtoul followed
// by a narrowing cast does: parsing stops at the first non-digit, text without
// digits yields 0 and a leading minus wraps around. A magnitude beyond 64 bits
// saturates regardless of sign and is reported as malformed.
func ParseUint(s string) (uint32, error) {
	n, neg, overflow, digits, rest := scanDecimal(s)
	v := uint32(n)
	if neg && !overflow {
		v = -v
	}
	if overflow || digits == 0 || strings.TrimRight(rest, blanks) != "" {
		return v, malformed("unsigned integer", s)
	}
	return v, nil
}

// ParseInt converts s to a signed 32-bit integer with the same best-effort
// rules as ParseUint. Out of range magnitudes clamp to the int64 limits before
// narrowing and are reported as malformed.
func ParseInt(s string) (int32, error) {
	n, neg, _, digits, rest := scanDecimal(s)
	var v int64
	clamped := false
	switch {
	case neg && n > 1<<63:
		v, clamped = math.MinInt64, true
	case neg:
		v = -int64(n)
	case n > math.MaxInt64:
		v, clamped = math.MaxInt64, true
	default:
		v = int64(n)
	}
	if clamped || digits == 0 || strings.TrimRight(rest, blanks) != "" {
		return int32(v), malformed("integer", s)
	}
	return int32(v), nil
}

// ParseChar converts s to a single character. Accepted forms are a lone
// ASCII character, the escapes \n \a \b \f \r \t \v \0 \\ and \xHH.
// Anything else yields '\n' together with ErrMalformed.
func ParseChar(s string) (byte, error) {
	var (
		c  byte
		ok bool
	)
	switch {
	case len(s) == 1:
		c, ok = s[0], true
	case len(s) == 2 && s[0] == '\\':
		c, ok = unescape(s[1])
	case len(s) > 2 && s[0] == '\\' && s[1] == 'x':
		c, ok = byte(scanHex(s[2:])), true
	}
	if !ok || c > 0x7f {
		return '\n', fmt.Errorf("%w: failed to parse character string %q", ErrMalformed, s)
	}
	return c, nil
}

func unescape(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 'a':
		return '\a', true
	case 'b':
		return '\b', true
	case 'f':
		return '\f', true
	case 'r':
		return '\r', true
	case 't':
		return '\t', true
	case 'v':
		return '\v', true
	case '0':
		return 0, true
	case '\\':
		return '\\', true
	}
	return 0, false
}

// scanHex reads leading hexadecimal digits. The caller narrows the result to
// a byte, as a char cast would.
func scanHex(s string) uint64 {
	var n uint64
	for i := 0; i < len(s); i++ {
		var d byte
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return n
		}
		if n > math.MaxUint32 {
			return n
		}
		n = n<<4 | uint64(d)
	}
	return n
}
