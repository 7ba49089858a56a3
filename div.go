package w128

import (
	"fmt"
	"io"
	"os"
)

// Division by zero mirrors a hardware trap: the diagnostic goes to stderr and
// the process exits. These are only swapped out by tests.
var (
	fatalOutput io.Writer = os.Stderr
	fatalExit             = os.Exit
)

const divideByZeroMsg = "w128: division by zero"

func divideByZero() {
	fmt.Fprintln(fatalOutput, divideByZeroMsg)
	fatalExit(1)
}

// Quo returns the quotient u/by, truncated. If by is zero, the process
// terminates; test the divisor first if that is not what you want.
func (u W128) Quo(by W128) (q W128) {
	q, _ = quorem128(u, by, false)
	return q
}

// Rem returns the remainder u%by. If by is zero, the process terminates.
func (u W128) Rem(by W128) (r W128) {
	_, r = quorem128(u, by, true)
	return r
}

// QuoRem returns the quotient q and remainder r for by != 0, such that
// q*by + r == u and r < by. If by is zero, the process terminates.
func (u W128) QuoRem(by W128) (q, r W128) {
	return quorem128(u, by, true)
}

func (u *W128) QuoAssign(by W128) { *u = u.Quo(by) }
func (u *W128) RemAssign(by W128) { *u = u.Rem(by) }

// quorem128 is a restoring binary long division, one quotient bit per
// iteration, starting from the dividend's highest set bit. r is only
// returned when wantRem is set.
//
// r never overflows while shifting: before each step it is no larger than
// the dividend bits already consumed, which is at most 127 bits wide.
func quorem128(u, by W128, wantRem bool) (q, r W128) {
	if by.hi|by.lo == 0 {
		divideByZero()
		return q, r
	}

	for i := u.BitLen() - 1; i >= 0; i-- {
		// {{{ r = (r << 1) | ((u >> i) & 1)
		r.hi = (r.hi << 1) | (r.lo >> 63)
		r.lo = (r.lo << 1) | uint64(u.Bit(i))
		// }}}

		// {{{ q <<= 1
		q.hi = (q.hi << 1) | (q.lo >> 63)
		q.lo = q.lo << 1
		// }}}

		// performance tweak: simulate greater than or equal by hand-inlining "not less than".
		if !(r.hi < by.hi || (r.hi == by.hi && r.lo < by.lo)) {
			r = r.Sub(by)
			q.lo |= 1
		}
	}

	if !wantRem {
		r = Zero
	}
	return q, r
}
