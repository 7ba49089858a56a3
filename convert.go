package w128

// Conversions from native integers place the source bits in the low word and
// always leave the high word zero. Signed sources are NOT sign extended, so
// FromInt64(-1) is 2^64-1, not MaxUnsigned; use SignExtend64 for that.

func FromBool(v bool) W128 {
	if v {
		return One
	}
	return Zero
}

func FromInt8(v int8) W128       { return W128{lo: uint64(v)} }
func FromInt16(v int16) W128     { return W128{lo: uint64(v)} }
func FromInt32(v int32) W128     { return W128{lo: uint64(v)} }
func FromInt64(v int64) W128     { return W128{lo: uint64(v)} }
func FromInt(v int) W128         { return W128{lo: uint64(v)} }
func FromUint8(v uint8) W128     { return W128{lo: uint64(v)} }
func FromUint16(v uint16) W128   { return W128{lo: uint64(v)} }
func FromUint32(v uint32) W128   { return W128{lo: uint64(v)} }
func FromUint64(v uint64) W128   { return W128{lo: v} }
func FromUint(v uint) W128       { return W128{lo: uint64(v)} }
func FromUintptr(v uintptr) W128 { return W128{lo: uint64(v)} }

// SignExtend64 widens v as a two's complement value, so SignExtend64(-1) is
// MaxUnsigned.
func SignExtend64(v int64) W128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return W128{hi: hi, lo: uint64(v)}
}

// Conversions to native integers truncate: the result is the low-order bits
// of the low word and the high word is discarded, even if it holds the only
// set bits. See IsUint64() if you want to check before you convert.

func (u W128) Int8() int8       { return int8(u.lo) }
func (u W128) Int16() int16     { return int16(u.lo) }
func (u W128) Int32() int32     { return int32(u.lo) }
func (u W128) Int64() int64     { return int64(u.lo) }
func (u W128) Int() int         { return int(u.lo) }
func (u W128) Uint8() uint8     { return uint8(u.lo) }
func (u W128) Uint16() uint16   { return uint16(u.lo) }
func (u W128) Uint32() uint32   { return uint32(u.lo) }
func (u W128) Uint64() uint64   { return u.lo }
func (u W128) Uint() uint       { return uint(u.lo) }
func (u W128) Uintptr() uintptr { return uintptr(u.lo) }

// IsUint64 reports whether u can be represented as a uint64.
func (u W128) IsUint64() bool {
	return u.hi == 0
}
