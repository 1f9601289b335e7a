/*
File    : loxgm/environment/environment.go
Package : environment
*/

// Package environment implements the lexically scoped frame chain
// variable lookup and assignment walk.
package environment

import (
	"fmt"

	"github.com/loxgm/loxgm/loxerr"
	"github.com/loxgm/loxgm/object"
)

// Frame is one lexical scope: a flat symbol table plus a link to the
// enclosing frame. The global frame has a nil Outer.
type Frame struct {
	symbols map[string]object.Value
	Outer   *Frame
}

func newFrame(outer *Frame) *Frame {
	return &Frame{symbols: make(map[string]object.Value), Outer: outer}
}

// Environment owns the current innermost Frame and exposes the
// operations a running program performs against it. Push/Pop replace
// the teacher's implicit scope threading with an explicit guarded
// stack, so every caller -- in particular Block execution -- can pop
// via defer and guarantee balance across error unwinds.
type Environment struct {
	current *Frame
}

// New creates an Environment with a single global frame.
func New() *Environment {
	return &Environment{current: newFrame(nil)}
}

// Push enters a new frame nested inside the current one.
func (e *Environment) Push() {
	e.current = newFrame(e.current)
}

// Pop discards the current frame and returns to its outer frame. Popping
// the global frame is a recoverable error, not a crash: callers that
// guarantee balanced Push/Pop should never trigger it in practice, but
// the contract stays a return value so it can be reported like any
// other runtime failure.
func (e *Environment) Pop() *loxerr.RuntimeError {
	if e.current.Outer == nil {
		return loxerr.NewRuntimeError(loxerr.RuntimeInvalidState, loxerr.TokenContext{},
			"cannot pop the global frame")
	}
	e.current = e.current.Outer
	return nil
}

// Define binds name in the current frame, shadowing any binding of
// the same name in an outer frame. Re-declaring a name already bound
// in the current frame simply overwrites it.
func (e *Environment) Define(name string, v object.Value) {
	e.current.symbols[name] = v
}

// Get looks up name starting at the current frame and walking
// outward, returning a NAME_ERROR RuntimeError if it is never found.
func (e *Environment) Get(name string, tok loxerr.TokenContext) (object.Value, *loxerr.RuntimeError) {
	for f := e.current; f != nil; f = f.Outer {
		if v, ok := f.symbols[name]; ok {
			return v, nil
		}
	}
	return nil, loxerr.NewRuntimeError(loxerr.RuntimeNameError, tok,
		"undefined variable %q", name)
}

// Assign rebinds an existing variable by walking outward through the
// frame chain and updating the frame that owns it. Assigning to a
// name that was never declared is a NAME_ERROR, matching Get.
func (e *Environment) Assign(name string, v object.Value, tok loxerr.TokenContext) *loxerr.RuntimeError {
	for f := e.current; f != nil; f = f.Outer {
		if _, ok := f.symbols[name]; ok {
			f.symbols[name] = v
			return nil
		}
	}
	return loxerr.NewRuntimeError(loxerr.RuntimeNameError, tok,
		"undefined variable %q", name)
}

// String dumps the full frame chain from innermost to outermost, used
// by the REPL's .env meta-command.
func (e *Environment) String() string {
	out := ""
	depth := 0
	for f := e.current; f != nil; f = f.Outer {
		out += fmt.Sprintf("frame %d:\n", depth)
		for k, v := range f.symbols {
			out += fmt.Sprintf("  %s = %s\n", k, v.String())
		}
		depth++
	}
	return out
}
