package scripts

import (
	"recscope/pkg/ast"
)

func sumNaturalProgram() *ast.Program {
	return ast.NewProgram("",
		ast.Def("sum_natural", []string{"n"},
			ast.If(ast.Le(ast.Var("n"), ast.Int(1)),
				ast.Return(ast.Var("n")),
			).Otherwise(
				ast.Return(ast.Add(ast.Var("n"), ast.Call("sum_natural", ast.Sub(ast.Var("n"), ast.Int(1))))),
			),
		),
		ast.Assign("num", ast.Int(10)),
		ast.Assign("result", ast.Call("sum_natural", ast.Var("num"))),
		ast.Print(ast.Str("sum_natural(10) ="), ast.Var("result")),
	)
}

func gcdProgram() *ast.Program {
	return ast.NewProgram("",
		ast.Def("gcd", []string{"a", "b"},
			ast.If(ast.Eq(ast.Var("b"), ast.Int(0)),
				ast.Return(ast.Var("a")),
			).Otherwise(
				ast.Return(ast.Call("gcd", ast.Var("b"), ast.Mod(ast.Var("a"), ast.Var("b")))),
			),
		),
		ast.Assign("a", ast.Int(48)),
		ast.Assign("b", ast.Int(18)),
		ast.Assign("result", ast.Call("gcd", ast.Var("a"), ast.Var("b"))),
		ast.Print(ast.Str("gcd(48, 18) ="), ast.Var("result")),
	)
}

func powerProgram() *ast.Program {
	return ast.NewProgram("",
		ast.Def("power", []string{"base", "exponent"},
			ast.If(ast.Eq(ast.Var("exponent"), ast.Int(0)),
				ast.Return(ast.Int(1)),
			).Otherwise(
				ast.Return(ast.Mul(ast.Var("base"), ast.Call("power", ast.Var("base"), ast.Sub(ast.Var("exponent"), ast.Int(1))))),
			),
		),
		ast.Assign("base", ast.Int(2)),
		ast.Assign("exponent", ast.Int(3)),
		ast.Assign("result", ast.Call("power", ast.Var("base"), ast.Var("exponent"))),
		ast.Print(ast.Str("2 raised to the power of 3 is"), ast.Var("result")),
	)
}
