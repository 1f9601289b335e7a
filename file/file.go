/*
File    : loxgm/file/file.go
Package : file
*/

// Package file loads and runs a .lox source file through the three
// pipeline stages (tokenize, parse, interpret) and reports the first
// error encountered, if any. It is an external collaborator of the
// core pipeline, not part of it.
package file

import (
	"fmt"
	"io"
	"os"

	"github.com/loxgm/loxgm/builtin"
	"github.com/loxgm/loxgm/interpreter"
	"github.com/loxgm/loxgm/lexer"
	"github.com/loxgm/loxgm/parser"
)

// ExitCode mirrors the exit status a failure at each pipeline stage
// should produce.
type ExitCode int

const (
	ExitOK        ExitCode = 0
	ExitLexError  ExitCode = 65
	ExitParseError ExitCode = 65
	ExitRuntimeError ExitCode = 70
	ExitUsageError ExitCode = 64
)

// Run loads path, interprets it against writer, and returns the exit
// code the process should terminate with. Errors are rendered to
// writer by their Error methods (see package loxerr).
func Run(path string, writer io.Writer) ExitCode {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(writer, "error: could not read %q: %v\n", path, err)
		return ExitUsageError
	}
	return RunSource(string(src), writer, os.Stdin)
}

// RunSource runs already-loaded source text, used by Run and by the
// "run" CLI subcommand's -e flag.
func RunSource(src string, writer io.Writer, stdin io.Reader) ExitCode {
	tokens, lexErr := lexer.Tokenize(src)
	if lexErr != nil {
		fmt.Fprintln(writer, lexErr.Error())
		return ExitLexError
	}

	program, parseErr := parser.Parse(tokens)
	if parseErr != nil {
		fmt.Fprintln(writer, parseErr.Error())
		return ExitParseError
	}

	interp := interpreter.New(writer)
	builtin.Register(interp.Env, stdin, writer)
	if runErr := interp.Interpret(program); runErr != nil {
		fmt.Fprintln(writer, runErr.Error())
		return ExitRuntimeError
	}
	return ExitOK
}
