/*
File    : loxgm/builtin/builtin.go
Package : builtin
*/

// Package builtin implements Lox's flat table of native callables:
// time, input, and number. Additional callables can be registered
// into an Environment the same way, before interpretation begins.
package builtin

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/loxgm/loxgm/environment"
	"github.com/loxgm/loxgm/loxerr"
	"github.com/loxgm/loxgm/object"
)

// Register defines the full default built-in surface into env. reader
// backs input(); writer backs input()'s prompt echo.
func Register(env *environment.Environment, reader io.Reader, writer io.Writer) {
	env.Define("time", timeBuiltin())
	env.Define("input", inputBuiltin(reader, writer))
	env.Define("number", numberBuiltin())
}

// timeBuiltin returns the number of seconds since the Unix epoch,
// rendered the way the reference interpreter's time() does.
func timeBuiltin() *object.Native {
	return &object.Native{
		Name: "time",
		Arty: 0,
		Fn: func(args []object.Value) (object.Value, error) {
			return object.Number(float64(time.Now().Unix())), nil
		},
	}
}

// inputBuiltin prints its single string argument as a prompt, reads
// one line from reader, and returns it as a Lox string with the
// trailing newline stripped.
func inputBuiltin(reader io.Reader, writer io.Writer) *object.Native {
	scanner := bufio.NewScanner(reader)
	return &object.Native{
		Name: "input",
		Arty: 1,
		Fn: func(args []object.Value) (object.Value, error) {
			prompt, ok := args[0].(object.String)
			if !ok {
				return nil, loxerr.NewRuntimeError(loxerr.RuntimeTypeError, loxerr.TokenContext{},
					"input() expects a string prompt, got %s", args[0].Kind())
			}
			fmt.Fprint(writer, string(prompt))
			if !scanner.Scan() {
				return object.NilValue, nil
			}
			return object.String(strings.TrimRight(scanner.Text(), "\r\n")), nil
		},
	}
}

// numberBuiltin coerces its argument to a Number: numbers pass
// through, strings parse as floats, booleans and nil are a
// VALUE_ERROR.
func numberBuiltin() *object.Native {
	return &object.Native{
		Name: "number",
		Arty: 1,
		Fn: func(args []object.Value) (object.Value, error) {
			switch v := args[0].(type) {
			case object.Number:
				return v, nil
			case object.String:
				f, err := strconv.ParseFloat(string(v), 64)
				if err != nil {
					return nil, loxerr.NewRuntimeError(loxerr.RuntimeValueError, loxerr.TokenContext{},
						"cannot convert %q to a number", string(v))
				}
				return object.Number(f), nil
			default:
				return nil, loxerr.NewRuntimeError(loxerr.RuntimeValueError, loxerr.TokenContext{},
					"cannot convert %s to a number", args[0].Kind())
			}
		},
	}
}
