package value

import (
	"strconv"

	rterrors "github.com/fedesilva/minnieml/errors"
)

// IntToText returns the decimal ASCII representation of v: sign-prefixed for
// negatives, "0" for zero, no leading zeros otherwise.
func IntToText(v int64) Str {
	var scratch [20]byte // "-9223372036854775808" is 20 bytes
	n := AppendInt(scratch[:], v)
	data := make([]byte, n)
	copy(data, scratch[:n])
	return newStr(data)
}

// TextToInt parses s as a decimal integer: an optional leading '+' or '-'
// followed by one or more ASCII digits. Any other byte anywhere, or an empty
// remainder after the sign, yields 0. Values beyond int64 wrap, matching the
// original runtime. Use ParseInt for an error-reporting parse.
func TextToInt(s Str) int64 {
	data := s.data
	if len(data) == 0 {
		return 0
	}

	i := 0
	sign := int64(1)
	if data[0] == '-' || data[0] == '+' {
		if data[0] == '-' {
			sign = -1
		}
		i = 1
	}

	if i >= len(data) {
		return 0
	}

	var v int64
	for ; i < len(data); i++ {
		c := data[i]
		if c < '0' || c > '9' {
			return 0
		}
		v = v*10 + int64(c-'0')
	}

	return v * sign
}

// ParseInt is the strict parse with an error channel: it accepts exactly what
// TextToInt accepts but reports why a parse failed instead of returning 0.
func ParseInt(s Str) (int64, error) {
	data := s.data
	if len(data) == 0 {
		return 0, rterrors.InvalidInput(rterrors.PhaseConvert, "empty input")
	}

	i := 0
	if data[0] == '-' || data[0] == '+' {
		i = 1
	}
	if i >= len(data) {
		return 0, rterrors.InvalidInput(rterrors.PhaseConvert, "sign with no digits")
	}
	for ; i < len(data); i++ {
		if c := data[i]; c < '0' || c > '9' {
			return 0, rterrors.InvalidDigit(i, c)
		}
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, rterrors.Overflow(rterrors.PhaseConvert, string(data), "int64")
	}
	return v, nil
}

// AppendInt formats v as decimal ASCII into dst and returns the number of
// bytes written. It returns 0 when dst is too small to hold the full
// representation; no partial output is produced.
func AppendInt(dst []byte, v int64) int {
	if len(dst) == 0 {
		return 0
	}

	// Negate through uint64 so MinInt64 formats correctly.
	mag := uint64(v)
	neg := v < 0
	if neg {
		mag = -mag
	}

	var digits [20]byte
	d := 0
	if mag == 0 {
		digits[d] = '0'
		d++
	}
	for mag > 0 {
		digits[d] = byte('0' + mag%10)
		d++
		mag /= 10
	}

	n := d
	if neg {
		n++
	}
	if n > len(dst) {
		return 0
	}

	pos := 0
	if neg {
		dst[pos] = '-'
		pos++
	}
	for d > 0 {
		d--
		dst[pos] = digits[d]
		pos++
	}
	return pos
}
