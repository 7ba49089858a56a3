/*
Package w128 provides W128, a 128-bit integer built from two uint64 half-words,
with the operator surface of a native fixed-width integer.

W128 is a value type; all pure operations return new values and wrap modulo
2^128 without signalling overflow. The compound forms (AddAssign, PreInc, ...)
take a pointer receiver and overwrite it in place. Callers sharing a *W128
between goroutines must synchronise access themselves.

Sign is not stored. Ordering is always unsigned; the signed (two's
complement) interpretation is only applied where an operation asks for it,
such as Decimal(true).

Simple example:

	u1 := FromUint64(math.MaxUint64)
	u2 := FromUint64(math.MaxUint64)
	fmt.Println(u1.Mul(u2))
	// Output: 340282366920938463426481119284349108225

W128 can be created from a variety of sources:

	FromRaw(hi, lo uint64) W128
	FromUint64(v uint64) W128
	FromInt64(v int64) W128       // no sign extension
	SignExtend64(v int64) W128
	FromBool(v bool) W128
	FromString(s string) (out W128, accurate bool, err error)
	FromBigInt(v *big.Int) (out W128, accurate bool)

Conversions back to native widths (Uint64, Int32, ...) truncate to the
low-order bits of the low half-word.

Division or modulus by zero is fatal: a diagnostic is written to stderr and
the process exits.

W128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package w128
