/*
File    : loxgm/repl/repl.go
Package : repl
*/

// Package repl implements the interactive Lox shell: line editing and
// history via chzyer/readline, colored output via fatih/color. It is
// an external collaborator of the core pipeline, consuming only
// lexer.Tokenize / parser.Parse / interpreter.Interpret.
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxgm/loxgm/builtin"
	"github.com/loxgm/loxgm/interpreter"
	"github.com/loxgm/loxgm/lexer"
	"github.com/loxgm/loxgm/parser"
)

var (
	promptColor = color.New(color.FgCyan)
	errorColor  = color.New(color.FgRed)
)

// Repl holds the banner text printed at startup; Prompt is the line
// prefix readline shows.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
}

// New creates a Repl with loxgm's default banner and prompt.
func New() *Repl {
	return &Repl{
		Banner:  "loxgm -- a tree-walking Lox interpreter",
		Version: "0.1.0",
		Prompt:  promptColor.Sprint("lox> "),
	}
}

// PrintBanner writes the startup banner to w.
func (r *Repl) PrintBanner(w io.Writer) {
	fmt.Fprintln(w, r.Banner)
	fmt.Fprintf(w, "version %s -- type .exit to quit, .env to dump scope, .newscope to push a frame\n", r.Version)
}

// Start runs the read-eval-print loop against stdin/stdout-like
// streams until the user quits or sends EOF. One Interpreter persists
// across lines, so variables defined on one line are visible on the
// next.
func (r *Repl) Start(writer io.Writer) error {
	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	interp := interpreter.New(writer)
	builtin.Register(interp.Env, rl.Stdin(), writer)

	r.PrintBanner(writer)

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		switch line {
		case ".exit":
			return nil
		case ".env":
			fmt.Fprint(writer, interp.Env.String())
			continue
		case ".newscope":
			interp.Env.Push()
			continue
		}
		rl.SaveHistory(line)
		r.evalLine(writer, line, interp)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, interp *interpreter.Interpreter) {
	defer func() {
		if rec := recover(); rec != nil {
			errorColor.Fprintf(writer, "PANIC: %v\n", rec)
		}
	}()

	tokens, lexErr := lexer.Tokenize(line)
	if lexErr != nil {
		errorColor.Fprintln(writer, lexErr.Error())
		return
	}
	program, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		errorColor.Fprintln(writer, parseErr.Error())
		return
	}
	if runErr := interp.Interpret(program); runErr != nil {
		errorColor.Fprintln(writer, runErr.Error())
		return
	}
}
