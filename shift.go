package w128

// Lsh returns u << n.
//
// Shift amounts are not reduced modulo 128: a negative n, or an n of 128 or
// more, returns Zero.
func (u W128) Lsh(n int) (v W128) {
	if n == 0 {
		return u
	} else if n < 0 || n >= 128 {
		return Zero
	} else if n >= 64 {
		v.hi = u.lo << uint(n-64)
		v.lo = 0
	} else {
		v.hi = (u.hi << uint(n)) | (u.lo >> uint(64-n))
		v.lo = u.lo << uint(n)
	}
	return v
}

// Rsh returns the logical right shift u >> n. Out of range shift amounts are
// handled the same way as Lsh.
func (u W128) Rsh(n int) (v W128) {
	if n == 0 {
		return u
	} else if n < 0 || n >= 128 {
		return Zero
	} else if n >= 64 {
		v.lo = u.hi >> uint(n-64)
		v.hi = 0
	} else {
		v.lo = (u.lo >> uint(n)) | (u.hi << uint(64-n))
		v.hi = u.hi >> uint(n)
	}
	return v
}

func (u *W128) LshAssign(n int) { *u = u.Lsh(n) }
func (u *W128) RshAssign(n int) { *u = u.Rsh(n) }
