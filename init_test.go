package w128

import (
	"encoding/binary"
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations = fuzzDefaultIterations
	fuzzOpsActive  = allFuzzOps
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	var ops StringList

	flag.IntVar(&fuzzIterations, "w128.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "w128.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "w128.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("integer sz:", intSize)

	code := m.Run()
	os.Exit(code)
}

var u64 = FromUint64

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(s)
	}
	return v
}

// w128s parses s as a literal in any base big.Int understands; spaces are
// ignored so long hex literals can be split into words.
func w128s(s string) W128 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("w128: string %q invalid", s))
	}
	out, acc := FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("w128: inaccurate %s", s))
	}
	return out
}

func accFromBigInt(b *big.Int) W128 {
	u, acc := FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("w128: inaccurate conversion in fuzz tester for %s", b))
	}
	return u
}

func randW128(scratch []byte) W128 {
	globalRNG.Read(scratch)
	u := W128{}
	u.lo = binary.LittleEndian.Uint64(scratch)

	if scratch[0]%2 == 1 {
		// if we always generate hi bits, the universe will die before we
		// test a number < maxInt64
		u.hi = binary.LittleEndian.Uint64(scratch[8:])
	}
	return u
}

// wrapBig reduces b modulo 2^128 into [0, 2^128).
func wrapBig(b *big.Int) *big.Int {
	return new(big.Int).Mod(b, wrapBigW128)
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}
