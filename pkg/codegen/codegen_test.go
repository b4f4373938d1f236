package codegen_test

import (
	"strings"
	"testing"

	"recscope/pkg/ast"
	"recscope/pkg/codegen"
	"recscope/pkg/color"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.EnableColor(false)
}

func ins(op codegen.Operation, a1, a2, a3 any) codegen.Instruction {
	return codegen.Instruction{Op: op, Arg1: a1, Arg2: a2, Arg3: a3}
}

var nop = codegen.Instruction{Op: codegen.OpNop}

func assertProgram(t *testing.T, want, got []codegen.Instruction) {
	t.Helper()
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Errorf("program block mismatch:\n%s", strings.Join(diff, "\n"))
	}
}

func TestAssignArithmetic(t *testing.T) {
	prog := ast.NewProgram("t",
		ast.Assign("val", ast.Sub(ast.Add(ast.Mul(ast.Var("a"), ast.Int(2)), ast.Var("b")), ast.Int(3))),
	)

	pb, errs := codegen.Generate(prog)
	require.Empty(t, errs)
	assertProgram(t, []codegen.Instruction{
		ins(codegen.OpMul, "a", "#2", 0),
		ins(codegen.OpAdd, 0, "b", 1),
		ins(codegen.OpSub, 1, "#3", 2),
		ins(codegen.OpAssign, 2, nil, "val"),
		nop,
	}, pb)
}

func TestNegationAndStrings(t *testing.T) {
	prog := ast.NewProgram("t",
		ast.Print(ast.Str("x ="), ast.Neg(ast.Var("x"))),
	)

	pb, errs := codegen.Generate(prog)
	require.Empty(t, errs)
	assertProgram(t, []codegen.Instruction{
		ins(codegen.OpSub, "#0", "x", 0),
		ins(codegen.OpArg, `#"x ="`, 0, nil),
		ins(codegen.OpArg, 0, 1, nil),
		ins(codegen.OpPrint, nil, 2, nil),
		nop,
	}, pb)
}

func TestIfElseBackpatch(t *testing.T) {
	prog := ast.NewProgram("t",
		ast.If(ast.Lt(ast.Var("x"), ast.Int(1)),
			ast.Assign("y", ast.Int(1)),
		).Otherwise(
			ast.Assign("y", ast.Int(2)),
		),
	)

	pb, errs := codegen.Generate(prog)
	require.Empty(t, errs)
	assertProgram(t, []codegen.Instruction{
		ins(codegen.OpLt, "x", "#1", 0),
		ins(codegen.OpJmpf, 0, nil, 4),
		ins(codegen.OpAssign, "#1", nil, "y"),
		ins(codegen.OpJmp, nil, nil, 5),
		ins(codegen.OpAssign, "#2", nil, "y"),
		nop,
	}, pb)
}

func TestIfWithoutElse(t *testing.T) {
	prog := ast.NewProgram("t",
		ast.If(ast.Var("flag"), ast.Assign("y", ast.Int(1))),
		ast.Assign("z", ast.Int(2)),
	)

	pb, errs := codegen.Generate(prog)
	require.Empty(t, errs)
	assertProgram(t, []codegen.Instruction{
		ins(codegen.OpJmpf, "flag", nil, 2),
		ins(codegen.OpAssign, "#1", nil, "y"),
		ins(codegen.OpAssign, "#2", nil, "z"),
		nop,
	}, pb)
}

func TestFunctionAndCall(t *testing.T) {
	prog := ast.NewProgram("t",
		ast.Def("id", []string{"x"}, ast.Return(ast.Var("x"))),
		ast.Assign("r", ast.Call("id", ast.Int(5))),
	)

	c := codegen.NewCodegen()
	c.Lower(prog)
	require.Empty(t, c.GetErrors())
	assert.Equal(t, map[string]int{"id": 1}, c.Functions())
	assertProgram(t, []codegen.Instruction{
		ins(codegen.OpLabel, "id", 1, nil),
		ins(codegen.OpParam, "x", 0, nil),
		ins(codegen.OpRet, "x", nil, nil),
		ins(codegen.OpRet, nil, nil, nil),
		ins(codegen.OpEnd, nil, nil, nil),
		ins(codegen.OpArg, "#5", 0, nil),
		ins(codegen.OpCall, "id", 1, 0),
		ins(codegen.OpAssign, 0, nil, "r"),
		nop,
	}, c.GetProgram())
}

func TestNestedCallArgumentsAreLoweredFirst(t *testing.T) {
	prog := ast.NewProgram("t",
		ast.Do(ast.Call("f", ast.Int(1), ast.Call("g", ast.Int(2)))),
	)

	pb, errs := codegen.Generate(prog)
	require.Empty(t, errs)
	assertProgram(t, []codegen.Instruction{
		ins(codegen.OpArg, "#2", 0, nil),
		ins(codegen.OpCall, "g", 1, 0),
		ins(codegen.OpArg, "#1", 0, nil),
		ins(codegen.OpArg, 0, 1, nil),
		ins(codegen.OpCall, "f", 2, 1),
		nop,
	}, pb)
}

func TestSemanticErrors(t *testing.T) {
	tests := []struct {
		name string
		prog *ast.Program
		want string
	}{
		{
			"return at top level",
			ast.NewProgram("t", ast.Return(ast.Int(1))),
			"Return outside function at top level",
		},
		{
			"nested definition",
			ast.NewProgram("t", ast.Def("outer", nil, ast.Def("inner", nil))),
			"Nested function definition `inner` in function outer",
		},
		{
			"duplicate parameter",
			ast.NewProgram("t", ast.Def("f", []string{"a", "a"})),
			"Duplicate parameter `a` in function f",
		},
		{
			"invalid assignment target",
			ast.NewProgram("t", ast.Assign("1a", ast.Int(1))),
			"Invalid assignment target `1a` in top level",
		},
		{
			"invalid variable",
			ast.NewProgram("t", ast.Print(ast.Var("#x"))),
			"Invalid variable name `#x` in top level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := codegen.Generate(tt.prog)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.want, errs[0])
		})
	}
}

func TestLogicalShortCircuit(t *testing.T) {
	prog := ast.NewProgram("t",
		ast.Assign("y", ast.And(ast.Var("a"), ast.Var("b"))),
		ast.Assign("z", ast.Or(ast.Var("a"), ast.Var("b"))),
		ast.Assign("w", ast.Not(ast.Var("a"))),
	)

	pb, errs := codegen.Generate(prog)
	require.Empty(t, errs)
	assertProgram(t, []codegen.Instruction{
		ins(codegen.OpJmpf, "a", nil, 3),
		ins(codegen.OpAnd, "a", "b", 0),
		ins(codegen.OpJmp, nil, nil, 4),
		ins(codegen.OpAssign, "#False", nil, 0),
		ins(codegen.OpAssign, 0, nil, "y"),
		ins(codegen.OpJmpf, "a", nil, 8),
		ins(codegen.OpAssign, "#True", nil, 1),
		ins(codegen.OpJmp, nil, nil, 9),
		ins(codegen.OpOr, "a", "b", 1),
		ins(codegen.OpAssign, 1, nil, "z"),
		ins(codegen.OpNot, "a", nil, 2),
		ins(codegen.OpAssign, 2, nil, "w"),
		nop,
	}, pb)
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "(+, a, #1, 3)", ins(codegen.OpAdd, "a", "#1", 3).String())
	assert.Equal(t, "(ret, , , )", ins(codegen.OpRet, nil, nil, nil).String())
	assert.True(t, codegen.OpGe.IsBinary())
	assert.False(t, codegen.OpCall.IsBinary())
	assert.Equal(t, codegen.OpNeq, codegen.GetBinaryOperation(ast.OpNe))
	assert.Equal(t, codegen.OpAnd, codegen.GetBinaryOperation(ast.OpAnd))
	assert.False(t, codegen.OpNot.IsBinary())
}

func TestImmediates(t *testing.T) {
	assert.Equal(t, "#-4", codegen.IntImmediate(-4))
	assert.Equal(t, `#"a \"q\""`, codegen.StringImmediate(`a "q"`))
	assert.Equal(t, "#False", codegen.BoolImmediate(false))
	assert.True(t, codegen.IsImmediate("#1"))
	assert.False(t, codegen.IsImmediate("a"))
}
