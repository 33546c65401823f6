package polish

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// LineReader supplies input lines to a Session. ReadLine returns io.EOF once
// the input is exhausted.
type LineReader interface {
	ReadLine() (string, error)
}

type lineScanner struct {
	scanner *bufio.Scanner
}

// NewLineScanner returns a LineReader reading lines from r.
func NewLineScanner(r io.Reader) LineReader {
	return &lineScanner{scanner: bufio.NewScanner(r)}
}

func (s *lineScanner) ReadLine() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(s.scanner.Text(), "\r"), nil
}

// DefaultPrintAST writes e in constructor form.
func DefaultPrintAST(w io.Writer, e Expr) {
	fmt.Fprintf(w, "AST: %s\n", Inspect(e))
}

// Session reads expressions line by line and prints their values. A line
// that fails to parse or evaluate is reported and skipped.
type Session struct {
	In     LineReader
	Out    io.Writer
	ErrOut io.Writer

	Evaluator Evaluator

	// Lenient ignores text left after the expression.
	Lenient bool

	// SkipBlank drops lines holding only spaces instead of reporting them.
	SkipBlank bool

	// PrintAST is called with every parsed tree. Nil prints nothing.
	PrintAST func(w io.Writer, e Expr)

	// Diagnostic formats failures. Nil uses err.Error().
	Diagnostic func(err error) string
}

// NewSession returns a Session reading r and writing everything to w.
func NewSession(r io.Reader, w io.Writer) *Session {
	return &Session{
		In:       NewLineScanner(r),
		Out:      w,
		ErrOut:   w,
		PrintAST: DefaultPrintAST,
	}
}

func (s *Session) parse(line string) (Expr, error) {
	if s.Lenient {
		e, _, err := ParsePrefix(line)
		return e, err
	}
	return Parse(line)
}

func (s *Session) report(err error) {
	w := s.ErrOut
	if w == nil {
		w = s.Out
	}
	if s.Diagnostic != nil {
		fmt.Fprintln(w, s.Diagnostic(err))
		return
	}
	fmt.Fprintln(w, err)
}

// Line handles one input line. It reports whether the line produced a
// result.
func (s *Session) Line(line string) bool {
	if s.SkipBlank && strings.TrimLeft(line, " ") == "" {
		return false
	}
	e, err := s.parse(line)
	if err != nil {
		s.report(err)
		return false
	}
	if s.PrintAST != nil {
		s.PrintAST(s.Out, e)
	}
	v, err := s.Evaluator.Eval(e)
	if err != nil {
		s.report(err)
		return false
	}
	fmt.Fprintf(s.Out, "result: %d\n", v)
	return true
}

// Run handles lines until the input is exhausted. It returns nil at end of
// input and the read error otherwise. A nil In reads os.Stdin and a nil Out
// writes os.Stdout.
func (s *Session) Run() error {
	if s.In == nil {
		s.In = NewLineScanner(os.Stdin)
	}
	if s.Out == nil {
		s.Out = os.Stdout
	}
	for {
		line, err := s.In.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		s.Line(line)
	}
}
