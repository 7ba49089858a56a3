package w128

import (
	"fmt"
	"math/big"
	"strings"
)

// FromString creates a W128 from a decimal string, or a hex/octal/binary
// string with a 0x/0o/0b prefix. Values that do not fit in 128 bits wrap
// modulo 2^128 and set accurate to 'false'; this includes negative values,
// which become the two's complement of their magnitude.
func FromString(s string) (out W128, accurate bool, err error) {
	base := 10
	if t := strings.TrimPrefix(s, "-"); len(t) > 2 && t[0] == '0' {
		switch t[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			base = 0
		}
	}
	b, ok := new(big.Int).SetString(s, base)
	if !ok {
		return out, false, fmt.Errorf("w128: string %q invalid", s)
	}

	accurate = true
	if b.Sign() < 0 {
		accurate = false
		b.Mod(b, wrapBigW128)
	}
	if b.Cmp(maxBigW128) > 0 {
		accurate = false
		b.And(b, maxBigW128)
	}
	out, _ = FromBigInt(b)
	return out, accurate, nil
}

// FromBigInt creates a W128 from a big.Int. Negative values and values above
// MaxUnsigned clamp to Zero and MaxUnsigned respectively and set accurate to
// 'false'.
func FromBigInt(v *big.Int) (out W128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return W128{}, true
		case 1:
			return W128{lo: uint64(words[0])}, true
		case 2:
			return W128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxUnsigned, false
		}

	case 32:
		switch len(words) {
		case 0:
			return W128{}, true
		case 1:
			return W128{lo: uint64(words[0])}, true
		case 2:
			return W128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return W128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return W128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxUnsigned, false
		}

	default:
		panic("w128: unsupported bit size")
	}
}

func (u W128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		if ln := len(bits); ln < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		if ln := len(bits); ln < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

// AsBigInt returns u as an unsigned big.Int.
func (u W128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsSignedBigInt returns u as a big.Int, interpreting it as two's complement.
func (u W128) AsSignedBigInt() (b *big.Int) {
	if !u.IsNeg() {
		return u.AsBigInt()
	}
	b = u.Neg().AsBigInt()
	return b.Neg(b)
}
