package w128

import (
	"fmt"
	"io"
	"strconv"
)

// AppendDecimal appends the base-10 representation of u to dst. If signed is
// set, u is interpreted as a two's complement value.
func (u W128) AppendDecimal(dst []byte, signed bool) []byte {
	if u.hi == 0 {
		return strconv.AppendUint(dst, u.lo, 10)
	}

	if signed && u.IsNeg() {
		dst = append(dst, '-')
		u = u.Neg()
	}

	var buf [maxDecimalDigits]byte
	i := len(buf)
	for u.Bool() {
		var d W128
		u, d = u.QuoRem(ten)
		i--
		buf[i] = byte('0' + d.lo)
	}
	return append(dst, buf[i:]...)
}

// WriteDecimal writes the base-10 representation of u to w. See
// AppendDecimal.
func (u W128) WriteDecimal(w io.Writer, signed bool) (n int, err error) {
	var buf [maxDecimalDigits + 1]byte
	return w.Write(u.AppendDecimal(buf[:0], signed))
}

// Decimal returns the base-10 representation of u. See AppendDecimal.
func (u W128) Decimal(signed bool) string {
	var buf [maxDecimalDigits + 1]byte
	return string(u.AppendDecimal(buf[:0], signed))
}

// String returns u as an unsigned decimal.
func (u W128) String() string {
	return u.Decimal(false)
}

// Format implements fmt.Formatter. Plain %d, %s and %v print an unsigned
// decimal; anything with a width, precision, sign flag or a different verb
// is handed to big.Int.
func (u W128) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
		_, hasWidth := s.Width()
		_, hasPrec := s.Precision()
		if !hasWidth && !hasPrec && !s.Flag('+') && !s.Flag(' ') {
			var buf [maxDecimalDigits]byte
			s.Write(u.AppendDecimal(buf[:0], false))
			return
		}
	}
	u.AsBigInt().Format(s, c)
}
