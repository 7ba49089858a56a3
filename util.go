package w128

type RandSource interface {
	Uint64() uint64
}

// Rand generates a random W128 from an external source.
func Rand(source RandSource) (out W128) {
	return W128{hi: source.Uint64(), lo: source.Uint64()}
}

// Difference subtracts the smaller of a and b from the larger.
func Difference(a, b W128) W128 {
	if a.GreaterThan(b) {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func Larger(a, b W128) W128 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func Smaller(a, b W128) W128 {
	if b.LessThan(a) {
		return b
	}
	return a
}
