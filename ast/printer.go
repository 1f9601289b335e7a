package ast

import (
	"bytes"
	"fmt"
)

// Printer renders a Program back to a Lisp-like, fully parenthesized
// form, used only by the "parse" CLI subcommand and by the printer
// tests -- never by the interpreter.
// Grounded on the teacher's recursive PrintingVisitor shape, adapted
// from an Indent/Buf visitor over a narrow demo grammar to a full
// expression/statement walk.
type Printer struct {
	buf bytes.Buffer
}

func (p *Printer) String() string { return p.buf.String() }

// Print renders an entire program, one printed statement per line.
func Print(prog *Program) string {
	p := &Printer{}
	for _, s := range prog.Statements {
		p.printStmt(s)
		p.buf.WriteByte('\n')
	}
	return p.buf.String()
}

func (p *Printer) printStmt(s Stmt) {
	switch n := s.(type) {
	case *ExprStmt:
		p.parenthesize("expr", n.Expression)
	case *PrintStmt:
		p.parenthesize("print", n.Expression)
	case *VarDecl:
		if n.Initializer != nil {
			p.buf.WriteString(fmt.Sprintf("(var %s ", n.Name.Lexeme))
			p.printExpr(n.Initializer)
			p.buf.WriteByte(')')
		} else {
			p.buf.WriteString(fmt.Sprintf("(var %s)", n.Name.Lexeme))
		}
	case *Assignment:
		p.buf.WriteString(fmt.Sprintf("(= %s ", n.Name.Lexeme))
		p.printExpr(n.Value)
		p.buf.WriteByte(')')
	case *Block:
		p.buf.WriteString("(block")
		for _, inner := range n.Statements {
			p.buf.WriteByte(' ')
			p.printStmt(inner)
		}
		p.buf.WriteByte(')')
	case *IfStmt:
		p.buf.WriteString("(if ")
		p.printExpr(n.Condition)
		p.buf.WriteByte(' ')
		p.printStmt(n.Then)
		if n.Else != nil {
			p.buf.WriteByte(' ')
			p.printStmt(n.Else)
		}
		p.buf.WriteByte(')')
	case *WhileStmt:
		p.buf.WriteString("(while ")
		p.printExpr(n.Condition)
		p.buf.WriteByte(' ')
		p.printStmt(n.Body)
		p.buf.WriteByte(')')
	default:
		p.buf.WriteString("(unknown-stmt)")
	}
}

func (p *Printer) printExpr(e Expr) {
	switch n := e.(type) {
	case *Literal:
		p.buf.WriteString(fmt.Sprintf("%v", n.Value))
	case *Grouping:
		p.parenthesize("group", n.Expression)
	case *Identifier:
		p.buf.WriteString(n.Name.Lexeme)
	case *Unary:
		op := "-"
		if n.Operator == OpNot {
			op = "!"
		}
		p.parenthesize(op, n.Right)
	case *Binary:
		p.parenthesize(binaryOpSymbol(n.Operator), n.Left, n.Right)
	case *Logical:
		op := "and"
		if n.Operator == OpOr {
			op = "or"
		}
		p.parenthesize(op, n.Left, n.Right)
	case *Assignment:
		p.buf.WriteString(fmt.Sprintf("(= %s ", n.Name.Lexeme))
		p.printExpr(n.Value)
		p.buf.WriteByte(')')
	case *FuncCall:
		p.buf.WriteString("(call ")
		p.printExpr(n.Callee)
		for _, a := range n.Arguments {
			p.buf.WriteByte(' ')
			p.printExpr(a)
		}
		p.buf.WriteByte(')')
	default:
		p.buf.WriteString("(unknown-expr)")
	}
}

func (p *Printer) parenthesize(name string, exprs ...Expr) {
	p.buf.WriteByte('(')
	p.buf.WriteString(name)
	for _, e := range exprs {
		p.buf.WriteByte(' ')
		p.printExpr(e)
	}
	p.buf.WriteByte(')')
}

func binaryOpSymbol(op BinaryOp) string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpGreater:
		return ">"
	case OpGreaterEqual:
		return ">="
	case OpLess:
		return "<"
	case OpLessEqual:
		return "<="
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	default:
		return "?"
	}
}
