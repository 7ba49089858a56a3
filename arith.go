package w128

func (u W128) Add(n W128) (v W128) {
	v.lo = u.lo + n.lo
	v.hi = u.hi + n.hi
	if v.lo < u.lo { // lo wrapped, carry into hi
		v.hi++
	}
	return v
}

func (u W128) Sub(n W128) (v W128) {
	v.lo = u.lo - n.lo
	v.hi = u.hi - n.hi
	if v.lo > u.lo { // lo wrapped, borrow from hi
		v.hi--
	}
	return v
}

func (u W128) Inc() (v W128) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if v.lo == 0 {
		v.hi++
	}
	return v
}

func (u W128) Dec() (v W128) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if v.lo == maxUint64 {
		v.hi--
	}
	return v
}

func (u *W128) AddAssign(n W128) { *u = u.Add(n) }
func (u *W128) SubAssign(n W128) { *u = u.Sub(n) }
func (u *W128) MulAssign(n W128) { *u = u.Mul(n) }

// PreInc increments u and returns the new value, like '++u'.
func (u *W128) PreInc() W128 {
	*u = u.Inc()
	return *u
}

// PostInc increments u and returns the value it held beforehand, like 'u++'
// in C.
func (u *W128) PostInc() (old W128) {
	old = *u
	*u = u.Inc()
	return old
}

// PreDec decrements u and returns the new value, like '--u'.
func (u *W128) PreDec() W128 {
	*u = u.Dec()
	return *u
}

// PostDec decrements u and returns the value it held beforehand, like 'u--'
// in C.
func (u *W128) PostDec() (old W128) {
	old = *u
	*u = u.Dec()
	return old
}
