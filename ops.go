package polish

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strings"
)

var (
	ErrOverflow = errors.New("arithmetic overflow")
)

// OverflowPolicy decides what Add and Mul do when the result does not fit
// in 64 bits.
type OverflowPolicy int

const (
	// Checked reports ErrOverflow.
	Checked OverflowPolicy = iota
	// Wrapping keeps the low 64 bits.
	Wrapping
	// Saturating clamps to math.MaxUint64.
	Saturating
)

var policyNames = map[OverflowPolicy]string{
	Checked:    "checked",
	Wrapping:   "wrap",
	Saturating: "saturate",
}

func (p OverflowPolicy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("OverflowPolicy(%d)", int(p))
}

// ParseOverflowPolicy returns the policy named by s: checked, wrap or
// saturate.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return Checked, fmt.Errorf("unknown overflow policy: %q", s)
}

type op func(a, b uint64) (v uint64, overflow bool)

func add(a, b uint64) (uint64, bool) {
	v, carry := bits.Add64(a, b, 0)
	return v, carry != 0
}

func mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi != 0
}

// Evaluator evaluates expressions under an overflow policy. The zero value
// uses Checked.
type Evaluator struct {
	Overflow OverflowPolicy
}

// Eval returns the value of e. Only the Checked policy can fail.
func (ev *Evaluator) Eval(e Expr) (uint64, error) {
	switch n := e.(type) {
	case Num:
		return n.Value, nil
	case Add:
		return ev.apply("+", add, n.Left, n.Right)
	case Mul:
		return ev.apply("*", mul, n.Left, n.Right)
	}
	return 0, fmt.Errorf("invalid expression: %T", e)
}

func (ev *Evaluator) apply(name string, fn op, l, r Expr) (uint64, error) {
	a, err := ev.Eval(l)
	if err != nil {
		return 0, err
	}
	b, err := ev.Eval(r)
	if err != nil {
		return 0, err
	}
	v, overflow := fn(a, b)
	if !overflow {
		return v, nil
	}
	switch ev.Overflow {
	case Wrapping:
		return v, nil
	case Saturating:
		return math.MaxUint64, nil
	}
	return 0, fmt.Errorf("%w: %s %d %d", ErrOverflow, name, a, b)
}

// Eval returns the value of e with results wrapping modulo 2^64. It panics
// if e is not a Num, Add or Mul value.
func Eval(e Expr) uint64 {
	switch n := e.(type) {
	case Add:
		return Eval(n.Left) + Eval(n.Right)
	case Mul:
		return Eval(n.Left) * Eval(n.Right)
	case Num:
		return n.Value
	}
	panic(fmt.Sprintf("polish: invalid expression %T", e))
}
