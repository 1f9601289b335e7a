/*
File    : loxgm/interpreter/interpreter.go
Package : interpreter
*/

// Package interpreter tree-walks an ast.Program, evaluating
// expressions and executing statements against an environment chain.
package interpreter

import (
	"fmt"
	"io"
	"strconv"

	"github.com/loxgm/loxgm/ast"
	"github.com/loxgm/loxgm/environment"
	"github.com/loxgm/loxgm/lexer"
	"github.com/loxgm/loxgm/loxerr"
	"github.com/loxgm/loxgm/object"
)

// Interpreter holds the single environment chain a program runs
// against and the writer `print` statements write to.
type Interpreter struct {
	Env    *environment.Environment
	Writer io.Writer
}

// New creates an Interpreter with a fresh global frame.
func New(w io.Writer) *Interpreter {
	return &Interpreter{Env: environment.New(), Writer: w}
}

// Interpret runs every statement in program in order, stopping at the
// first RuntimeError.
func (in *Interpreter) Interpret(program *ast.Program) *loxerr.RuntimeError {
	for _, stmt := range program.Statements {
		if err := in.execStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func tokCtx(tok lexer.Token) loxerr.TokenContext {
	return loxerr.TokenContext{Lexeme: tok.Lexeme, Line: tok.Line}
}

// execStmt dispatches on the statement's concrete type. A direct type
// switch is used rather than a name-keyed handler table: the dispatch
// mechanism is incidental here, and the switch form is the more
// direct match for Go's type system.
func (in *Interpreter) execStmt(s ast.Stmt) *loxerr.RuntimeError {
	switch n := s.(type) {
	case *ast.ExprStmt:
		_, err := in.evalExpr(n.Expression)
		return err
	case *ast.PrintStmt:
		v, err := in.evalExpr(n.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Writer, v.String())
		return nil
	case *ast.VarDecl:
		var v object.Value = object.NilValue
		if n.Initializer != nil {
			var err *loxerr.RuntimeError
			v, err = in.evalExpr(n.Initializer)
			if err != nil {
				return err
			}
		}
		in.Env.Define(n.Name.Lexeme, v)
		return nil
	case *ast.Assignment:
		_, err := in.evalExpr(n)
		return err
	case *ast.Block:
		return in.execBlock(n.Statements)
	case *ast.IfStmt:
		cond, err := in.evalExpr(n.Condition)
		if err != nil {
			return err
		}
		if object.Truthy(cond) {
			return in.execStmt(n.Then)
		}
		if n.Else != nil {
			return in.execStmt(n.Else)
		}
		return nil
	case *ast.WhileStmt:
		for {
			cond, err := in.evalExpr(n.Condition)
			if err != nil {
				return err
			}
			if !object.Truthy(cond) {
				return nil
			}
			if err := in.execStmt(n.Body); err != nil {
				return err
			}
		}
	default:
		return loxerr.NewRuntimeError(loxerr.RuntimeUnrecognizedToken, loxerr.TokenContext{},
			"unrecognized statement node %T", s)
	}
}

// execBlock pushes a new frame, runs every statement in it, and pops
// the frame on every exit path -- including the error path -- via
// defer, satisfying the guaranteed-pop-on-unwind invariant.
func (in *Interpreter) execBlock(stmts []ast.Stmt) (err *loxerr.RuntimeError) {
	in.Env.Push()
	defer func() {
		if popErr := in.Env.Pop(); popErr != nil && err == nil {
			err = popErr
		}
	}()
	for _, s := range stmts {
		if err = in.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

// evalExpr dispatches on the expression's concrete type, evaluating
// strictly left to right everywhere an operator has more than one
// operand.
func (in *Interpreter) evalExpr(e ast.Expr) (object.Value, *loxerr.RuntimeError) {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil
	case *ast.Grouping:
		return in.evalExpr(n.Expression)
	case *ast.Identifier:
		return in.Env.Get(n.Name.Lexeme, tokCtx(n.Name))
	case *ast.Unary:
		return in.evalUnary(n)
	case *ast.Binary:
		return in.evalBinary(n)
	case *ast.Logical:
		return in.evalLogical(n)
	case *ast.Assignment:
		v, err := in.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		if err := in.Env.Assign(n.Name.Lexeme, v, tokCtx(n.Name)); err != nil {
			return nil, err
		}
		return v, nil
	case *ast.FuncCall:
		return in.evalCall(n)
	default:
		return nil, loxerr.NewRuntimeError(loxerr.RuntimeUnrecognizedToken, loxerr.TokenContext{},
			"unrecognized expression node %T", e)
	}
}

func literalValue(v interface{}) object.Value {
	switch t := v.(type) {
	case nil:
		return object.NilValue
	case bool:
		return object.Bool(t)
	case float64:
		return object.Number(t)
	case string:
		return object.String(t)
	default:
		return object.NilValue
	}
}

func (in *Interpreter) evalUnary(n *ast.Unary) (object.Value, *loxerr.RuntimeError) {
	right, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	switch n.Operator {
	case ast.OpNot:
		return object.Bool(!object.Truthy(right)), nil
	case ast.OpNeg:
		num, err := floatify(right, tokCtx(n.Token))
		if err != nil {
			return nil, err
		}
		return object.Number(-num), nil
	default:
		return nil, loxerr.NewRuntimeError(loxerr.RuntimeUnreachable, tokCtx(n.Token),
			"unrecognized unary operator")
	}
}

// evalLogical implements short-circuit "and"/"or": Right is only
// evaluated when Left doesn't already decide the result, and the
// result is whichever operand decided it, unchanged (not coerced to
// bool).
func (in *Interpreter) evalLogical(n *ast.Logical) (object.Value, *loxerr.RuntimeError) {
	left, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	if n.Operator == ast.OpOr {
		if object.Truthy(left) {
			return left, nil
		}
	} else { // OpAnd
		if !object.Truthy(left) {
			return left, nil
		}
	}
	return in.evalExpr(n.Right)
}

func (in *Interpreter) evalBinary(n *ast.Binary) (object.Value, *loxerr.RuntimeError) {
	left, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	// equality is checked before any numeric coercion
	switch n.Operator {
	case ast.OpEqual:
		return object.Bool(object.Equal(left, right)), nil
	case ast.OpNotEqual:
		return object.Bool(!object.Equal(left, right)), nil
	}

	lf, err := floatify(left, tokCtx(n.Token))
	if err != nil {
		return nil, err
	}
	rf, err := floatify(right, tokCtx(n.Token))
	if err != nil {
		return nil, err
	}

	switch n.Operator {
	case ast.OpAdd:
		return object.Number(lf + rf), nil
	case ast.OpSub:
		return object.Number(lf - rf), nil
	case ast.OpMul:
		return object.Number(lf * rf), nil
	case ast.OpDiv:
		return object.Number(lf / rf), nil
	case ast.OpGreater:
		return object.Bool(lf > rf), nil
	case ast.OpGreaterEqual:
		return object.Bool(lf >= rf), nil
	case ast.OpLess:
		return object.Bool(lf < rf), nil
	case ast.OpLessEqual:
		return object.Bool(lf <= rf), nil
	default:
		return nil, loxerr.NewRuntimeError(loxerr.RuntimeUnreachable, tokCtx(n.Token),
			"unrecognized binary operator")
	}
}

func (in *Interpreter) evalCall(n *ast.FuncCall) (object.Value, *loxerr.RuntimeError) {
	callee, err := in.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}
	args := make([]object.Value, len(n.Arguments))
	for i, a := range n.Arguments {
		v, err := in.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	callable, ok := callee.(object.Callable)
	if !ok {
		return nil, loxerr.NewRuntimeError(loxerr.RuntimeTypeError, tokCtx(n.Paren),
			"can only call functions, got %s", callee.Kind())
	}
	if callable.Arity() >= 0 && len(args) != callable.Arity() {
		return nil, loxerr.NewRuntimeError(loxerr.RuntimeGenericError, tokCtx(n.Paren),
			"expected %d arguments but got %d", callable.Arity(), len(args))
	}
	v, callErr := callable.Call(args)
	if callErr != nil {
		if re, ok := callErr.(*loxerr.RuntimeError); ok {
			return nil, re
		}
		return nil, loxerr.NewRuntimeError(loxerr.RuntimeGenericError, tokCtx(n.Paren), "%v", callErr)
	}
	return v, nil
}

// floatify coerces a Value to a float64 the way arithmetic and
// comparison operators require: numbers pass through, numeric strings
// parse, everything else is a VALUE_ERROR.
func floatify(v object.Value, tok loxerr.TokenContext) (float64, *loxerr.RuntimeError) {
	switch t := v.(type) {
	case object.Number:
		return float64(t), nil
	case object.String:
		f, err := strconv.ParseFloat(string(t), 64)
		if err != nil {
			return 0, loxerr.NewRuntimeError(loxerr.RuntimeValueError, tok,
				"cannot convert %q to a number", string(t))
		}
		return f, nil
	default:
		return 0, loxerr.NewRuntimeError(loxerr.RuntimeValueError, tok,
			"expected a number, got %s", v.Kind())
	}
}
