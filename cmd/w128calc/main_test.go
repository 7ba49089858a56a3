package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestEvalAndPrint(t *testing.T) {
	for _, tc := range []struct {
		expr   string
		signed bool
		out    string
	}{
		{"18446744073709551615 + 1", false, "18446744073709551616"},
		{"2 * 2", false, "4"},
		{"10 / 3", false, "3"},
		{"10 % 3", false, "1"},
		{"0 - 1", false, "340282366920938463463374607431768211455"},
		{"0 - 1", true, "-1"},
		{"1 << 127", true, "-170141183460469231731687303715884105728"},
		{"1 << 128", false, "0"},
		{"0x10000000000000000 >> 64", false, "1"},
		{"0xF0 & 0x3C", false, "48"},
		{"0xF0 | 0x0F", false, "255"},
		{"0xFF ^ 0x0F", false, "240"},
		{"0xFF &^ 0x0F", false, "240"},
		{"~ 0", false, "340282366920938463463374607431768211455"},
		{"++ 18446744073709551615", false, "18446744073709551616"},
		{"-- 0", true, "-1"},
		{"! 0", false, "true"},
		{"0x10000000000000000 && 1", false, "true"},
		{"0 || 0", false, "false"},
		{"3 < 0x10000000000000000", false, "true"},
		{"3 >= 3", false, "true"},
		{"3 != 3", false, "false"},
	} {
		t.Run(tc.expr, func(t *testing.T) {
			tt := assert.WrapTB(t)
			var buf bytes.Buffer
			tt.MustOK(evalAndPrint(&buf, config{signed: tc.signed}, strings.Fields(tc.expr)))
			tt.MustEqual(tc.out+"\n", buf.String())
		})
	}
}

func TestEvalErrors(t *testing.T) {
	for _, expr := range []string{
		"1 / 0",
		"1 % 0",
		"1 ? 2",
		"? 1",
		"1",
		"1 2 3 4",
		"x + 1",
		"1 << y",
	} {
		t.Run(expr, func(t *testing.T) {
			tt := assert.WrapTB(t)
			_, err := eval(strings.Fields(expr))
			tt.MustAssert(err != nil)
		})
	}
}

func TestEvalDump(t *testing.T) {
	tt := assert.WrapTB(t)
	var buf bytes.Buffer
	tt.MustOK(evalAndPrint(&buf, config{dump: true}, []string{"1", "+", "2"}))
	out := buf.String()
	tt.MustAssert(strings.Contains(out, "Lo: (uint64) 3"), out)
	tt.MustAssert(strings.HasSuffix(out, "\n3\n"), out)
}
