package ast

// Op is a binary operator.
type Op int

const (
	OpAdd Op = iota // +
	OpSub           // -
	OpMul           // *
	OpDiv           // /
	OpMod           // %
	OpEq            // ==
	OpNe            // !=
	OpLt            // <
	OpLe            // <=
	OpGt            // >
	OpGe            // >=
	OpAnd           // and
	OpOr            // or
)

var opSymbols = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpMod: "%",
	OpEq:  "==",
	OpNe:  "!=",
	OpLt:  "<",
	OpLe:  "<=",
	OpGt:  ">",
	OpGe:  ">=",
	OpAnd: "and",
	OpOr:  "or",
}

// String returns the operator symbol
func (o Op) String() string {
	if o >= 0 && int(o) < len(opSymbols) {
		return opSymbols[o]
	}
	return "?"
}

// IsComparison reports whether the operator yields a boolean
func (o Op) IsComparison() bool {
	return o >= OpEq && o <= OpGe
}

// IsLogical reports whether the operator is a short-circuit and/or
func (o Op) IsLogical() bool {
	return o == OpAnd || o == OpOr
}

// Expr is any expression node.
type Expr interface {
	exprNode()
}

// Stmt is any statement node.
type Stmt interface {
	stmtNode()
}

type IntLit struct {
	Value int64
}

type StrLit struct {
	Value string
}

type Name struct {
	Name string
}

type BinExpr struct {
	Op    Op
	Left  Expr
	Right Expr
}

// NegExpr is unary minus.
type NegExpr struct {
	X Expr
}

// NotExpr is logical negation.
type NotExpr struct {
	X Expr
}

type CallExpr struct {
	Func string
	Args []Expr
}

type AssignStmt struct {
	Name  string
	Value Expr
}

// ExprStmt evaluates an expression for its side effects and drops the result.
type ExprStmt struct {
	X Expr
}

// PrintStmt writes its arguments separated by one space, then a newline.
type PrintStmt struct {
	Args []Expr
}

type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt // nil when there is no else branch
}

// ReturnStmt leaves the enclosing function. A nil Value returns None.
type ReturnStmt struct {
	Value Expr
}

type FuncDef struct {
	Name   string
	Params []string
	Body   []Stmt
}

// Program is one script: statements run top to bottom.
type Program struct {
	Name string
	Body []Stmt
}

func (*IntLit) exprNode()   {}
func (*StrLit) exprNode()   {}
func (*Name) exprNode()     {}
func (*BinExpr) exprNode()  {}
func (*NegExpr) exprNode()  {}
func (*NotExpr) exprNode()  {}
func (*CallExpr) exprNode() {}

func (*AssignStmt) stmtNode() {}
func (*ExprStmt) stmtNode()   {}
func (*PrintStmt) stmtNode()  {}
func (*IfStmt) stmtNode()     {}
func (*ReturnStmt) stmtNode() {}
func (*FuncDef) stmtNode()    {}
