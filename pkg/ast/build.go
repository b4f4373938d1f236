package ast

// Constructors for writing scripts as Go values. They read close to the
// script language: Assign("a", Add(Var("val"), Int(1))).

func Int(v int64) *IntLit   { return &IntLit{Value: v} }
func Str(s string) *StrLit  { return &StrLit{Value: s} }
func Var(name string) *Name { return &Name{Name: name} }
func Neg(x Expr) *NegExpr   { return &NegExpr{X: x} }
func Not(x Expr) *NotExpr   { return &NotExpr{X: x} }

func Bin(op Op, l, r Expr) *BinExpr {
	return &BinExpr{Op: op, Left: l, Right: r}
}

func Add(l, r Expr) *BinExpr { return Bin(OpAdd, l, r) }
func Sub(l, r Expr) *BinExpr { return Bin(OpSub, l, r) }
func Mul(l, r Expr) *BinExpr { return Bin(OpMul, l, r) }
func Div(l, r Expr) *BinExpr { return Bin(OpDiv, l, r) }
func Mod(l, r Expr) *BinExpr { return Bin(OpMod, l, r) }
func Eq(l, r Expr) *BinExpr  { return Bin(OpEq, l, r) }
func Ne(l, r Expr) *BinExpr  { return Bin(OpNe, l, r) }
func Lt(l, r Expr) *BinExpr  { return Bin(OpLt, l, r) }
func Le(l, r Expr) *BinExpr  { return Bin(OpLe, l, r) }
func Gt(l, r Expr) *BinExpr  { return Bin(OpGt, l, r) }
func Ge(l, r Expr) *BinExpr  { return Bin(OpGe, l, r) }
func And(l, r Expr) *BinExpr { return Bin(OpAnd, l, r) }
func Or(l, r Expr) *BinExpr  { return Bin(OpOr, l, r) }

// Chain folds operands left to right with the same operator, so
// Chain(OpAdd, a, b, c) is (a + b) + c.
func Chain(op Op, first Expr, rest ...Expr) Expr {
	e := first
	for _, r := range rest {
		e = Bin(op, e, r)
	}
	return e
}

func Call(fn string, args ...Expr) *CallExpr {
	return &CallExpr{Func: fn, Args: args}
}

func Assign(name string, value Expr) *AssignStmt {
	return &AssignStmt{Name: name, Value: value}
}

func Do(x Expr) *ExprStmt { return &ExprStmt{X: x} }

func Print(args ...Expr) *PrintStmt {
	return &PrintStmt{Args: args}
}

func Return(value Expr) *ReturnStmt {
	return &ReturnStmt{Value: value}
}

// If builds an if statement without an else branch; chain Otherwise to add one.
func If(cond Expr, then ...Stmt) *IfStmt {
	return &IfStmt{Cond: cond, Then: then}
}

// Otherwise sets the else branch and returns the statement.
func (s *IfStmt) Otherwise(els ...Stmt) *IfStmt {
	s.Else = els
	if s.Else == nil {
		s.Else = []Stmt{}
	}
	return s
}

func Def(name string, params []string, body ...Stmt) *FuncDef {
	return &FuncDef{Name: name, Params: params, Body: body}
}

func NewProgram(name string, body ...Stmt) *Program {
	return &Program{Name: name, Body: body}
}
