package w128

import (
	"math/bits"
)

// W128 is a 128-bit integer made of two 64-bit half-words. The value is
// lo + hi*2^64, modulo 2^128.
//
// Methods with a value receiver never modify their operands and are safe to
// call concurrently. Methods with a pointer receiver (the *Assign family and
// the increment/decrement forms) overwrite the target and need exclusive
// access to it.
type W128 struct {
	hi, lo uint64
}

func FromRaw(hi, lo uint64) W128 { return W128{hi: hi, lo: lo} }

// Raw returns access to the W128 as a pair of uint64s. See FromRaw() for the
// counterpart.
func (u W128) Raw() (hi, lo uint64) { return u.hi, u.lo }

func (u W128) Hi() uint64 { return u.hi }
func (u W128) Lo() uint64 { return u.lo }

func (u W128) IsZero() bool { return u == Zero }

// Bool reports whether any bit of u is set.
func (u W128) Bool() bool { return u.lo != 0 || u.hi != 0 }

// IsNeg reports whether the top bit is set, i.e. whether u is negative when
// interpreted as a two's complement signed value.
func (u W128) IsNeg() bool { return u.hi&signBit != 0 }

func (u W128) Cmp(n W128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u W128) Equal(n W128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u W128) NotEqual(n W128) bool {
	return u.hi != n.hi || u.lo != n.lo
}

func (u W128) GreaterThan(n W128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u W128) GreaterOrEqualTo(n W128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u W128) LessThan(n W128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u W128) LessOrEqualTo(n W128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo <= n.lo)
}

func (u W128) And(v W128) (out W128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u W128) AndNot(v W128) (out W128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u W128) Or(v W128) (out W128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u W128) Xor(v W128) (out W128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u W128) Not() (out W128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

// Neg returns the two's complement negation of u.
func (u W128) Neg() W128 {
	return u.Not().Add(One)
}

func (u *W128) AndAssign(v W128) { *u = u.And(v) }
func (u *W128) OrAssign(v W128)  { *u = u.Or(v) }
func (u *W128) XorAssign(v W128) { *u = u.Xor(v) }

// LogicalAnd is the equivalent of 'a && b' where each operand is reduced to a
// bool first.
func LogicalAnd(a, b W128) bool { return a.Bool() && b.Bool() }

// LogicalOr is the equivalent of 'a || b'.
func LogicalOr(a, b W128) bool { return a.Bool() || b.Bool() }

// LogicalNot is the equivalent of '!a'.
func LogicalNot(a W128) bool { return !a.Bool() }

// BitLen returns the position of the highest set bit plus one. The BitLen of
// Zero is 0.
func (u W128) BitLen() int {
	return 128 - int(u.LeadingZeros())
}

func (u W128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u W128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// Bit returns the value of the i'th bit of u. Bits outside [0, 128) are 0.
func (u W128) Bit(i int) uint {
	if i < 0 || i >= 128 {
		return 0
	} else if i >= 64 {
		return uint((u.hi >> uint(i-64)) & 1)
	}
	return uint((u.lo >> uint(i)) & 1)
}
