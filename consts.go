package w128

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	signBit = 0x8000000000000000

	// maxDecimalDigits is len("340282366920938463463374607431768211455").
	maxDecimalDigits = 39

	intSize = 32 << (^uint(0) >> 63)
)

var (
	Zero        = W128{}
	One         = W128{lo: 1}
	MaxUnsigned = W128{hi: maxUint64, lo: maxUint64}
	MaxSigned   = W128{hi: 0x7FFFFFFFFFFFFFFF, lo: maxUint64}
	MinSigned   = W128{hi: signBit, lo: 0}

	ten = W128{lo: 10}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64  = new(big.Int).SetUint64(maxUint64)
	maxBigW128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

	// wrapBigW128 is 1 << 128, used to simulate over/underflow:
	wrapBigW128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)
)
