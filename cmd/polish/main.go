package main

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"
	"github.com/kr/pretty"
	"github.com/mattn/go-isatty"
	"github.com/mattn/polish"
	"github.com/peterh/liner"
)

var CLI struct {
	Files     []string `arg:"" optional:"" type:"existingfile" help:"Files with one expression per line. Reads stdin when omitted."`
	Overflow  string   `help:"Overflow policy: checked, wrap or saturate." enum:"checked,wrap,saturate" default:"checked" env:"POLISH_OVERFLOW"`
	Lenient   bool     `help:"Ignore text after the expression."`
	SkipBlank bool     `help:"Skip blank lines instead of reporting them."`
	Quiet     bool     `help:"Do not print the parsed AST." short:"q"`
	Pretty    bool     `help:"Print the parsed AST as a Go value."`
	Prompt    string   `help:"Interactive prompt." default:">> "`
	NoColor   bool     `help:"Disable colored diagnostics."`
}

// prompter is the part of *liner.State used by lineEditor.
type prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

type lineEditor struct {
	state  prompter
	prompt string
}

func (l *lineEditor) ReadLine() (string, error) {
	s, err := l.state.Prompt(l.prompt)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) != "" {
		l.state.AppendHistory(s)
	}
	return s, nil
}

func newSession(policy polish.OverflowPolicy) *polish.Session {
	red := color.New(color.FgRed).SprintFunc()
	s := &polish.Session{
		Out:       color.Output,
		ErrOut:    color.Output,
		Evaluator: polish.Evaluator{Overflow: policy},
		Lenient:   CLI.Lenient,
		SkipBlank: CLI.SkipBlank,
		PrintAST:  polish.DefaultPrintAST,
		Diagnostic: func(err error) string {
			return red(err.Error())
		},
	}
	if CLI.Pretty {
		s.PrintAST = func(w io.Writer, e polish.Expr) {
			pretty.Fprintf(w, "AST: %# v\n", e)
		}
	}
	if CLI.Quiet {
		s.PrintAST = nil
	}
	return s
}

func repl(s *polish.Session) error {
	state := liner.NewLiner()
	defer state.Close()
	state.SetCtrlCAborts(true)

	s.In = &lineEditor{state: state, prompt: CLI.Prompt}
	return s.Run()
}

func runFile(s *polish.Session, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	s.In = polish.NewLineScanner(f)
	return s.Run()
}

func main() {
	kong.Parse(&CLI,
		kong.Name("polish"),
		kong.Description("Evaluate prefix notation expressions such as '* + 2 3 4'."),
	)
	if CLI.NoColor {
		color.NoColor = true
	}

	policy, err := polish.ParseOverflowPolicy(CLI.Overflow)
	if err != nil {
		log.Fatal(err)
	}
	s := newSession(policy)

	if len(CLI.Files) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			err = repl(s)
		} else {
			s.In = polish.NewLineScanner(os.Stdin)
			err = s.Run()
		}
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	for _, name := range CLI.Files {
		if err := runFile(s, name); err != nil {
			log.Fatal(err)
		}
	}
}
