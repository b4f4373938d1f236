package codegen

import (
	"fmt"

	"recscope/pkg/ast"
)

type Operation string

// List of IR operations
const (
	OpAssign Operation = "="
	OpAdd    Operation = "+"
	OpSub    Operation = "-"
	OpMul    Operation = "*"
	OpDiv    Operation = "/"
	OpMod    Operation = "%"
	OpEq     Operation = "=="
	OpNeq    Operation = "!="
	OpLt     Operation = "<"
	OpLe     Operation = "<="
	OpGt     Operation = ">"
	OpGe     Operation = ">="
	OpAnd    Operation = "&&"
	OpOr     Operation = "||"
	OpNot    Operation = "!"
	OpJmp    Operation = "jmp"
	OpJmpf   Operation = "jmpf"
	OpCall   Operation = "call"
	OpRet    Operation = "ret"
	OpArg    Operation = "arg"
	OpParam  Operation = "param"
	OpLabel  Operation = "label"
	OpPrint  Operation = "print"
	OpNop    Operation = "nop"
	OpEnd    Operation = "end"
)

// Instruction is one three-address instruction.
//
// Operands are encoded by their dynamic type:
//   - int: temp slot of the running frame
//   - string starting with '#': immediate (see IntImmediate, StringImmediate)
//   - any other string: variable name
type Instruction struct {
	Op Operation

	Arg1 any
	Arg2 any
	Arg3 any
}

// String returns a string representation of the instruction
func (i Instruction) String() string {
	arg1 := ""
	if i.Arg1 != nil {
		arg1 = fmt.Sprintf("%v", i.Arg1)
	}

	arg2 := ""
	if i.Arg2 != nil {
		arg2 = fmt.Sprintf("%v", i.Arg2)
	}

	arg3 := ""
	if i.Arg3 != nil {
		arg3 = fmt.Sprintf("%v", i.Arg3)
	}

	return fmt.Sprintf("(%s, %v, %v, %v)", i.Op, arg1, arg2, arg3)
}

// IsBinary reports whether the operation takes two operands and a destination
func (o Operation) IsBinary() bool {
	switch o {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpEq, OpNeq, OpLt, OpLe, OpGt, OpGe, OpAnd, OpOr:
		return true
	default:
		return false
	}
}

// GetBinaryOperation maps a syntax tree operator to an IR operation
func GetBinaryOperation(op ast.Op) Operation {
	switch op {
	case ast.OpAdd:
		return OpAdd
	case ast.OpSub:
		return OpSub
	case ast.OpMul:
		return OpMul
	case ast.OpDiv:
		return OpDiv
	case ast.OpMod:
		return OpMod
	case ast.OpEq:
		return OpEq
	case ast.OpNe:
		return OpNeq
	case ast.OpLt:
		return OpLt
	case ast.OpLe:
		return OpLe
	case ast.OpGt:
		return OpGt
	case ast.OpGe:
		return OpGe
	case ast.OpAnd:
		return OpAnd
	case ast.OpOr:
		return OpOr
	default:
		return OpNop
	}
}
