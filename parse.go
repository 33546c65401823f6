package polish

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidNumber   = errors.New("invalid number")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrTrailingInput   = errors.New("trailing input")
)

// ParseError reports where and why a line failed to parse. Kind is one of
// ErrInvalidNumber, ErrUnexpectedToken or ErrTrailingInput.
type ParseError struct {
	Kind   error
	Input  string
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	near := "end of input"
	if e.Offset < len(e.Input) {
		near = fmt.Sprintf("%q", e.token())
	}
	s := fmt.Sprintf("%v: %s (%d)", e.Kind, near, e.Offset)
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

func (e *ParseError) token() string {
	rest := e.Input[e.Offset:]
	switch e.Kind {
	case ErrInvalidNumber:
		i := 0
		for i < len(rest) && isDigit(rest[i]) {
			i++
		}
		if i > 0 {
			return rest[:i]
		}
	case ErrTrailingInput:
		if i := strings.IndexByte(rest, ' '); i > 0 {
			return rest[:i]
		}
		return rest
	}
	_, n := utf8.DecodeRuneInString(rest)
	return rest[:n]
}

// parser holds the whole line so that failures can report an offset. The
// parse position itself is never stored; every step takes the remaining
// text and returns what it left over.
type parser struct {
	input string
}

func (p *parser) fail(kind error, rest string, err error) *ParseError {
	return &ParseError{
		Kind:   kind,
		Input:  p.input,
		Offset: len(p.input) - len(rest),
		Err:    err,
	}
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func (p *parser) parseNumber(rest string) (Expr, string, error) {
	i := 0
	for i < len(rest) && isDigit(rest[i]) {
		i++
	}
	if i == 0 {
		return nil, rest, p.fail(ErrInvalidNumber, rest, nil)
	}
	v, err := strconv.ParseUint(rest[:i], 10, 64)
	if err != nil {
		return nil, rest, p.fail(ErrInvalidNumber, rest, errors.Unwrap(err))
	}
	return Num{Value: v}, rest[i:], nil
}

func (p *parser) parseOperatorExpr(rest string) (Expr, string, error) {
	if rest == "" || (rest[0] != '+' && rest[0] != '*') {
		return nil, rest, p.fail(ErrUnexpectedToken, rest, nil)
	}
	op := rest[0]
	left, rest, err := p.parseExpr(rest[1:])
	if err != nil {
		return nil, rest, err
	}
	right, rest, err := p.parseExpr(rest)
	if err != nil {
		return nil, rest, err
	}
	if op == '+' {
		return Add{Left: left, Right: right}, rest, nil
	}
	return Mul{Left: left, Right: right}, rest, nil
}

func (p *parser) parseExpr(rest string) (Expr, string, error) {
	rest = strings.TrimLeft(rest, " ")
	e, r, err := p.parseNumber(rest)
	if err == nil {
		return e, r, nil
	}
	// a digit run that does not fit is final; nothing else starts with a digit
	if pe := err.(*ParseError); pe.Err != nil {
		return nil, rest, err
	}
	return p.parseOperatorExpr(rest)
}

// ParsePrefix parses one expression from the front of input and returns it
// with the text it did not consume.
func ParsePrefix(input string) (Expr, string, error) {
	p := &parser{input: input}
	return p.parseExpr(input)
}

// Parse parses a whole line. Spaces may follow the expression; anything
// else left over is reported as ErrTrailingInput.
func Parse(input string) (Expr, error) {
	p := &parser{input: input}
	e, rest, err := p.parseExpr(input)
	if err != nil {
		return nil, err
	}
	rest = strings.TrimLeft(rest, " ")
	if rest != "" {
		return nil, p.fail(ErrTrailingInput, rest, nil)
	}
	return e, nil
}
