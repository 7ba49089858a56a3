package w128

// Mul returns the low 128 bits of u*n.
//
// The two low words are multiplied into a full 128-bit product using 32-bit
// limbs; the cross terms u.lo*n.hi and u.hi*n.lo only ever contribute to the
// high word, and anything they push past bit 127 is discarded. u.hi*n.hi lands
// entirely above bit 127.
func (u W128) Mul(n W128) (dest W128) {
	dest.hi, dest.lo = mul64to128(u.lo, n.lo)
	dest.hi += u.lo*n.hi + u.hi*n.lo
	return dest
}

// mul64to128 is a schoolbook multiply of two 64-bit words split into
// (x1 << 32 + x0)(y1 << 32 + y0), which is
// x1*y1 << 64 + (x0*y1 + x1*y0) << 32 + x0*y0.
//
// Adapted from Warren, Hacker's Delight, p. 132.
func mul64to128(u, v uint64) (hi, lo uint64) {
	var (
		x0, x1 = u & 0xffffffff, u >> 32
		y0, y1 = v & 0xffffffff, v >> 32

		p00 = x0 * y0
		p01 = x0 * y1
		p10 = x1 * y0
		p11 = x1 * y1
	)

	// Neither sum can overflow: each term is below 2^64 - 2^33 + 1 and the
	// added part is at most 32 bits wide.
	t := (p00 >> 32) + p10
	w := (t & 0xffffffff) + p01

	lo = (p00 & 0xffffffff) | (w << 32)
	hi = p11 + (t >> 32) + (w >> 32)
	return hi, lo
}
