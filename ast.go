package polish

import (
	"bytes"
	"fmt"
	"strconv"
)

// Expr is a node of a parsed expression. It is implemented by Num, Add and
// Mul only.
type Expr interface {
	fmt.Stringer
	expr()
}

// Num is an unsigned integer literal.
type Num struct {
	Value uint64
}

// Add is the sum of two sub expressions.
type Add struct {
	Left  Expr
	Right Expr
}

// Mul is the product of two sub expressions.
type Mul struct {
	Left  Expr
	Right Expr
}

func (Num) expr() {}
func (Add) expr() {}
func (Mul) expr() {}

// String returns the expression in prefix notation. Parse accepts it back.
func (n Num) String() string {
	return strconv.FormatUint(n.Value, 10)
}

func (n Add) String() string {
	return "+ " + n.Left.String() + " " + n.Right.String()
}

func (n Mul) String() string {
	return "* " + n.Left.String() + " " + n.Right.String()
}

// Inspect returns the tree in constructor form, like
// Mul(Add(Num(2), Num(3)), Num(4)).
func Inspect(e Expr) string {
	var buf bytes.Buffer
	inspect(&buf, e)
	return buf.String()
}

func inspect(buf *bytes.Buffer, e Expr) {
	switch n := e.(type) {
	case Num:
		fmt.Fprintf(buf, "Num(%d)", n.Value)
	case Add:
		buf.WriteString("Add(")
		inspect(buf, n.Left)
		buf.WriteString(", ")
		inspect(buf, n.Right)
		buf.WriteString(")")
	case Mul:
		buf.WriteString("Mul(")
		inspect(buf, n.Left)
		buf.WriteString(", ")
		inspect(buf, n.Right)
		buf.WriteString(")")
	default:
		fmt.Fprintf(buf, "%v", e)
	}
}
