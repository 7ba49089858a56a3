package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	w128 "github.com/shabbyrobe/go-w128"
)

const usage = `128-bit calculator

Usage: w128calc [options] [<a> <op> <b> | <op> <a>]

If no expression is passed, one expression per line is read from stdin.

Binary ops: + - * / % & | ^ &^ << >> == != < <= > >= && ||
Unary ops:  ~ ! ++ --

Operands are decimal, or hex/octal/binary with a 0x/0o/0b prefix. Shift
amounts are plain ints.`

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	signed bool
	dump   bool
}

func run() error {
	var cfg config
	fs := flag.NewFlagSet("w128calc", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usage)
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}
	fs.BoolVar(&cfg.signed, "signed", false, "Print results as two's complement signed values")
	fs.BoolVar(&cfg.dump, "dump", false, "Dump operands and result as raw words")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if args := fs.Args(); len(args) > 0 {
		return evalAndPrint(os.Stdout, cfg, args)
	}

	scn := bufio.NewScanner(os.Stdin)
	for scn.Scan() {
		line := strings.TrimSpace(scn.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := evalAndPrint(os.Stdout, cfg, strings.Fields(line)); err != nil {
			return err
		}
	}
	return scn.Err()
}

// result holds either a W128 or a bool, depending on the op.
type result struct {
	Operands []w128.W128
	Value    w128.W128
	Bool     bool
	IsBool   bool
}

func evalAndPrint(w io.Writer, cfg config, expr []string) error {
	res, err := eval(expr)
	if err != nil {
		return err
	}

	if cfg.dump {
		type words struct{ Hi, Lo uint64 }
		var dump []words
		for _, o := range res.Operands {
			hi, lo := o.Raw()
			dump = append(dump, words{hi, lo})
		}
		if !res.IsBool {
			hi, lo := res.Value.Raw()
			dump = append(dump, words{hi, lo})
		}
		spew.Fdump(w, dump)
	}

	if res.IsBool {
		_, err = fmt.Fprintln(w, res.Bool)
		return err
	}
	if _, err := res.Value.WriteDecimal(w, cfg.signed); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}

func eval(expr []string) (res result, err error) {
	switch len(expr) {
	case 2:
		a, err := parseOperand(expr[1])
		if err != nil {
			return res, err
		}
		res.Operands = []w128.W128{a}
		return res, evalUnary(&res, expr[0], a)

	case 3:
		op := expr[1]
		a, err := parseOperand(expr[0])
		if err != nil {
			return res, err
		}

		if op == "<<" || op == ">>" {
			n, err := strconv.Atoi(expr[2])
			if err != nil {
				return res, fmt.Errorf("w128calc: shift amount %q invalid", expr[2])
			}
			res.Operands = []w128.W128{a}
			if op == "<<" {
				res.Value = a.Lsh(n)
			} else {
				res.Value = a.Rsh(n)
			}
			return res, nil
		}

		b, err := parseOperand(expr[2])
		if err != nil {
			return res, err
		}
		res.Operands = []w128.W128{a, b}
		return res, evalBinary(&res, op, a, b)

	default:
		return res, fmt.Errorf("w128calc: expected '<a> <op> <b>' or '<op> <a>', found %q", strings.Join(expr, " "))
	}
}

func evalUnary(res *result, op string, a w128.W128) error {
	switch op {
	case "~":
		res.Value = a.Not()
	case "!":
		res.IsBool, res.Bool = true, w128.LogicalNot(a)
	case "++":
		res.Value = a.Inc()
	case "--":
		res.Value = a.Dec()
	default:
		return fmt.Errorf("w128calc: unknown unary op %q", op)
	}
	return nil
}

func evalBinary(res *result, op string, a, b w128.W128) error {
	switch op {
	case "+":
		res.Value = a.Add(b)
	case "-":
		res.Value = a.Sub(b)
	case "*":
		res.Value = a.Mul(b)
	case "/", "%":
		// The library treats a zero divisor as fatal, so catch it here:
		if b.IsZero() {
			return fmt.Errorf("w128calc: division by zero")
		}
		if op == "/" {
			res.Value = a.Quo(b)
		} else {
			res.Value = a.Rem(b)
		}
	case "&":
		res.Value = a.And(b)
	case "|":
		res.Value = a.Or(b)
	case "^":
		res.Value = a.Xor(b)
	case "&^":
		res.Value = a.AndNot(b)

	case "==":
		res.IsBool, res.Bool = true, a.Equal(b)
	case "!=":
		res.IsBool, res.Bool = true, a.NotEqual(b)
	case "<":
		res.IsBool, res.Bool = true, a.LessThan(b)
	case "<=":
		res.IsBool, res.Bool = true, a.LessOrEqualTo(b)
	case ">":
		res.IsBool, res.Bool = true, a.GreaterThan(b)
	case ">=":
		res.IsBool, res.Bool = true, a.GreaterOrEqualTo(b)
	case "&&":
		res.IsBool, res.Bool = true, w128.LogicalAnd(a, b)
	case "||":
		res.IsBool, res.Bool = true, w128.LogicalOr(a, b)

	default:
		return fmt.Errorf("w128calc: unknown op %q", op)
	}
	return nil
}

func parseOperand(s string) (w128.W128, error) {
	v, accurate, err := w128.FromString(s)
	if err != nil {
		return v, err
	}
	if !accurate {
		log.Printf("w128calc: operand %q wrapped to %s", s, v)
	}
	return v, nil
}
