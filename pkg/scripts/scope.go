package scripts

import (
	"recscope/pkg/ast"
)

// scopeProgram reassigns globals, then calls evaluate, whose locals a and
// b must leave the globals untouched. Prints a = 20, b = 51, result = 58.
func scopeProgram() *ast.Program {
	return scopeBody(ast.Sub(ast.Add(ast.Mul(ast.Var("a"), ast.Int(2)), ast.Var("b")), ast.Mul(ast.Int(3), ast.Int(2))))
}

// scopeLiteralProgram is scopeProgram with val = a * 2 + b - 3, which is
// 16 rather than 13. Prints a = 23, b = 60, result = 64.
func scopeLiteralProgram() *ast.Program {
	return scopeBody(ast.Sub(ast.Add(ast.Mul(ast.Var("a"), ast.Int(2)), ast.Var("b")), ast.Int(3)))
}

func scopeBody(val ast.Expr) *ast.Program {
	return ast.NewProgram("",
		ast.Assign("a", ast.Int(8)),
		ast.Assign("b", ast.Int(3)),
		ast.Assign("val", val),

		ast.Assign("a", ast.Add(ast.Add(ast.Var("val"), ast.Int(1)), ast.Mul(ast.Int(3), ast.Int(2)))),
		ast.Assign("c", ast.Sub(ast.Add(ast.Add(ast.Int(0), ast.Mul(ast.Var("b"), ast.Int(3))), ast.Var("a")), ast.Var("a"))),
		ast.Assign("b", ast.Chain(ast.OpAdd, ast.Sub(ast.Var("a"), ast.Var("c")), ast.Int(5), ast.Int(2), ast.Int(7), ast.Mul(ast.Var("val"), ast.Int(2)))),

		ast.Def("evaluate", []string{"x"},
			ast.Assign("a", ast.Add(ast.Var("x"), ast.Mul(ast.Int(3), ast.Int(2)))),
			ast.Assign("b", ast.Sub(ast.Add(ast.Var("a"), ast.Int(4)), ast.Int(6))),
			ast.Assign("tmp", ast.Sub(ast.Add(ast.Sub(ast.Int(25), ast.Int(3)), ast.Mul(ast.Var("a"), ast.Int(2))), ast.Int(16))),
			ast.Return(ast.Var("tmp")),
		),

		ast.Assign("tmp", ast.Call("evaluate", ast.Var("a"))),

		ast.Print(ast.Str("a ="), ast.Var("a")),
		ast.Print(ast.Str("b ="), ast.Var("b")),
		ast.Print(ast.Str("result ="), ast.Var("tmp")),
	)
}
