package ast

import (
	"bytes"
	"strconv"
	"strings"
)

// format.go renders a Program back into script source

type formatter struct {
	buf     bytes.Buffer
	nindent int
}

// Format returns the script source for prog, one statement per line and
// four spaces per block level.
func Format(prog *Program) string {
	var f formatter
	f.visitBlock(prog.Body)
	return f.buf.String()
}

// FormatExpr returns the source for a single expression.
func FormatExpr(e Expr) string {
	var f formatter
	f.visitExpr(e, 0)
	return f.buf.String()
}

const (
	precOr      = 1
	precAnd     = 2
	precNot     = 3
	precCompare = 4
	precAdd     = 5
	precMul     = 6
	precUnary   = 7
)

func binOpPrec(op Op) int {
	switch op {
	case OpOr:
		return precOr
	case OpAnd:
		return precAnd
	case OpAdd, OpSub:
		return precAdd
	case OpMul, OpDiv, OpMod:
		return precMul
	default:
		return precCompare
	}
}

func (f *formatter) visitBlock(stmts []Stmt) {
	if len(stmts) == 0 {
		f.line("pass")
		return
	}
	for _, s := range stmts {
		f.visitStmt(s)
	}
}

func (f *formatter) visitStmt(s Stmt) {
	switch s := s.(type) {
	case *AssignStmt:
		f.indent()
		f.write(s.Name + " = ")
		f.visitExpr(s.Value, 0)
		f.write("\n")
	case *ExprStmt:
		f.indent()
		f.visitExpr(s.X, 0)
		f.write("\n")
	case *PrintStmt:
		f.indent()
		f.write("print(")
		f.visitArgs(s.Args)
		f.write(")\n")
	case *ReturnStmt:
		f.indent()
		f.write("return")
		if s.Value != nil {
			f.write(" ")
			f.visitExpr(s.Value, 0)
		}
		f.write("\n")
	case *IfStmt:
		f.indent()
		f.write("if ")
		f.visitExpr(s.Cond, 0)
		f.write(":\n")
		f.nested(s.Then)
		if s.Else != nil {
			f.line("else:")
			f.nested(s.Else)
		}
	case *FuncDef:
		f.indent()
		f.write("def " + s.Name + "(" + strings.Join(s.Params, ", ") + "):\n")
		f.nested(s.Body)
		if f.nindent == 0 {
			f.write("\n")
		}
	default:
		f.line("# unknown statement")
	}
}

func (f *formatter) visitExpr(e Expr, prec int) {
	switch e := e.(type) {
	case *IntLit:
		f.write(strconv.FormatInt(e.Value, 10))
	case *StrLit:
		f.write(strconv.Quote(e.Value))
	case *Name:
		f.write(e.Name)
	case *NegExpr:
		if precUnary < prec {
			f.write("(")
		}
		f.write("-")
		f.visitExpr(e.X, precUnary)
		if precUnary < prec {
			f.write(")")
		}
	case *NotExpr:
		if precNot < prec {
			f.write("(")
		}
		f.write("not ")
		f.visitExpr(e.X, precNot)
		if precNot < prec {
			f.write(")")
		}
	case *CallExpr:
		f.write(e.Func + "(")
		f.visitArgs(e.Args)
		f.write(")")
	case *BinExpr:
		op := binOpPrec(e.Op)
		if op < prec {
			f.write("(")
		}
		// comparisons do not chain, so both sides bind tighter
		left := op
		if op == precCompare {
			left = op + 1
		}
		f.visitExpr(e.Left, left)
		f.write(" " + e.Op.String() + " ")
		f.visitExpr(e.Right, op+1)
		if op < prec {
			f.write(")")
		}
	default:
		f.write("?")
	}
}

func (f *formatter) visitArgs(args []Expr) {
	for i, a := range args {
		if i > 0 {
			f.write(", ")
		}
		f.visitExpr(a, 0)
	}
}

func (f *formatter) nested(stmts []Stmt) {
	f.nindent++
	f.visitBlock(stmts)
	f.nindent--
}

func (f *formatter) line(s string) {
	f.indent()
	f.write(s + "\n")
}

func (f *formatter) indent() {
	for i := 0; i < f.nindent; i++ {
		f.write("    ")
	}
}

func (f *formatter) write(s string) {
	f.buf.WriteString(s)
}
