package ast

import (
	"testing"
)

var formatExprTests = []struct {
	expr Expr
	want string
}{
	{Int(42), "42"},
	{Str("a ="), `"a ="`},
	{Add(Int(1), Mul(Int(2), Int(3))), "1 + 2 * 3"},
	{Mul(Add(Int(1), Int(2)), Int(3)), "(1 + 2) * 3"},
	{Sub(Var("a"), Sub(Var("b"), Var("c"))), "a - (b - c)"},
	{Sub(Sub(Var("a"), Var("b")), Var("c")), "a - b - c"},
	{Chain(OpAdd, Var("a"), Int(1), Int(2)), "a + 1 + 2"},
	{Le(Var("n"), Int(1)), "n <= 1"},
	{Eq(Mod(Var("a"), Var("b")), Int(0)), "a % b == 0"},
	{Neg(Var("x")), "-x"},
	{Neg(Add(Var("x"), Int(1))), "-(x + 1)"},
	{Call("gcd", Var("b"), Mod(Var("a"), Var("b"))), "gcd(b, a % b)"},
	{Call("f"), "f()"},
	{And(Gt(Var("x"), Int(0)), Not(Eq(Var("y"), Int(0)))), "x > 0 and not y == 0"},
	{Or(And(Var("a"), Var("b")), Var("c")), "a and b or c"},
	{And(Or(Var("a"), Var("b")), Var("c")), "(a or b) and c"},
	{Not(And(Var("a"), Var("b"))), "not (a and b)"},
	{Add(Int(1), Not(Var("a"))), "1 + (not a)"},
}

func TestFormatExpr(t *testing.T) {
	for _, tt := range formatExprTests {
		if got := FormatExpr(tt.expr); got != tt.want {
			t.Errorf("FormatExpr: got %q, want %q", got, tt.want)
		}
	}
}

func TestFormatProgram(t *testing.T) {
	prog := NewProgram("demo",
		Def("power", []string{"base", "exponent"},
			If(Eq(Var("exponent"), Int(0)),
				Return(Int(1)),
			).Otherwise(
				Return(Mul(Var("base"), Call("power", Var("base"), Sub(Var("exponent"), Int(1))))),
			),
		),
		Assign("result", Call("power", Int(2), Int(3))),
		Print(Str("result ="), Var("result")),
	)

	want := `def power(base, exponent):
    if exponent == 0:
        return 1
    else:
        return base * power(base, exponent - 1)

result = power(2, 3)
print("result =", result)
`
	if got := Format(prog); got != want {
		t.Errorf("Format mismatch:\n--- got\n%s--- want\n%s", got, want)
	}
}

func TestFormatEmptyBlocks(t *testing.T) {
	prog := NewProgram("empty",
		Def("noop", nil),
		If(Lt(Int(1), Int(2))).Otherwise(),
		Do(Call("noop")),
	)

	want := `def noop():
    pass

if 1 < 2:
    pass
else:
    pass
noop()
`
	if got := Format(prog); got != want {
		t.Errorf("Format mismatch:\n--- got\n%s--- want\n%s", got, want)
	}
}

func TestOpString(t *testing.T) {
	if OpMod.String() != "%" || OpGe.String() != ">=" {
		t.Errorf("unexpected symbols %q %q", OpMod, OpGe)
	}
	if !OpLe.IsComparison() || OpMul.IsComparison() {
		t.Error("IsComparison misclassifies operators")
	}
	if OpAnd.String() != "and" || !OpOr.IsLogical() || OpOr.IsComparison() {
		t.Error("logical operators misclassified")
	}
	if Op(99).String() != "?" {
		t.Error("out of range op should render as ?")
	}
}
