package codegen

import (
	"fmt"
	"slices"

	"recscope/pkg/ast"

	"github.com/charmbracelet/log"
)

// saveAction reserves a NOP slot for a jump and pushes its index onto the stack
func (c *Codegen) saveAction() {
	c.pb = append(c.pb, Instruction{Op: OpNop})
	c.ss.Push(c.i)
	c.i++
}

// jmpAction patches the saved slot into an unconditional jump to the current instruction
func (c *Codegen) jmpAction() {
	location, ok := c.ss.Pop()
	if !ok {
		log.Error("No saved slot to patch", "action", "jmp")
		return
	}

	c.pb[location] = Instruction{Op: OpJmp, Arg3: c.i}
}

// jmpfAction patches the saved slot into a conditional jump past the slot about to be saved
func (c *Codegen) jmpfAction(cond any) {
	location, ok := c.ss.Pop()
	if !ok {
		log.Error("No saved slot to patch", "action", "jmpf")
		return
	}

	c.pb[location] = Instruction{Op: OpJmpf, Arg1: cond, Arg3: c.i + 1}
}

// jmpfNormalAction patches the saved slot into a conditional jump to the current instruction
func (c *Codegen) jmpfNormalAction(cond any) {
	location, ok := c.ss.Pop()
	if !ok {
		log.Error("No saved slot to patch", "action", "jmpf_normal")
		return
	}

	c.pb[location] = Instruction{Op: OpJmpf, Arg1: cond, Arg3: c.i}
}

func (c *Codegen) lowerBlock(stmts []ast.Stmt) {
	for _, s := range stmts {
		c.lowerStmt(s)
	}
}

func (c *Codegen) lowerStmt(s ast.Stmt) {
	switch s := s.(type) {
	case *ast.AssignStmt:
		c.assignAction(s)
	case *ast.ExprStmt:
		c.lowerExpr(s.X)
	case *ast.PrintStmt:
		c.printAction(s)
	case *ast.IfStmt:
		c.ifAction(s)
	case *ast.ReturnStmt:
		c.returnAction(s)
	case *ast.FuncDef:
		c.funcAction(s)
	default:
		log.Error("Unknown statement", "type", fmt.Sprintf("%T", s))
		c.addUnknownNodeError(fmt.Sprintf("%T", s))
	}
}

// lowerExpr emits the code for e and returns the operand holding its value
func (c *Codegen) lowerExpr(e ast.Expr) any {
	switch e := e.(type) {
	case *ast.IntLit:
		return IntImmediate(e.Value)
	case *ast.StrLit:
		return StringImmediate(e.Value)
	case *ast.Name:
		c.checkIdentifier(e.Name, "variable name")
		// callees can never rebind a caller's names, so reading the
		// variable at use time gives the same value as reading it here
		return e.Name
	case *ast.NegExpr:
		x := c.lowerExpr(e.X)
		t := c.getTemp()
		c.emit(OpSub, IntImmediate(0), x, t)
		return t
	case *ast.NotExpr:
		return c.notAction(e)
	case *ast.BinExpr:
		if e.Op.IsLogical() {
			return c.logicalAction(e)
		}
		return c.binaryOpAction(e)
	case *ast.CallExpr:
		return c.callAction(e)
	default:
		log.Error("Unknown expression", "type", fmt.Sprintf("%T", e))
		c.addUnknownNodeError(fmt.Sprintf("%T", e))
		return IntImmediate(0)
	}
}

// binaryOpAction generates code for arithmetic and comparison operators
func (c *Codegen) binaryOpAction(e *ast.BinExpr) any {
	op := GetBinaryOperation(e.Op)
	if op == OpNop {
		c.addUnknownNodeError("operator " + e.Op.String())
		return IntImmediate(0)
	}

	op1 := c.lowerExpr(e.Left)
	op2 := c.lowerExpr(e.Right)
	t := c.getTemp()

	c.emit(op, op1, op2, t)
	return t
}

// notAction generates code for logical NOT
func (c *Codegen) notAction(e *ast.NotExpr) any {
	x := c.lowerExpr(e.X)
	t := c.getTemp()
	c.emit(OpNot, x, nil, t)
	return t
}

// logicalAction generates a short-circuit and/or. The right operand only
// runs when the left one does not decide the result.
//
//	and: jmpf l, short; (&&, l, r, t); jmp end; short: t = False
//	or:  jmpf l, right; t = True; jmp end; right: (||, l, r, t)
func (c *Codegen) logicalAction(e *ast.BinExpr) any {
	op := GetBinaryOperation(e.Op)
	left := c.lowerExpr(e.Left)
	t := c.getTemp()

	c.saveAction()
	if op == OpAnd {
		right := c.lowerExpr(e.Right)
		c.emit(OpAnd, left, right, t)
	} else {
		c.emit(OpAssign, BoolImmediate(true), nil, t)
	}

	c.jmpfAction(left)
	c.saveAction()
	if op == OpAnd {
		c.emit(OpAssign, BoolImmediate(false), nil, t)
	} else {
		right := c.lowerExpr(e.Right)
		c.emit(OpOr, left, right, t)
	}
	c.jmpAction()

	return t
}

// assignAction binds the value to a name in the running scope
func (c *Codegen) assignAction(s *ast.AssignStmt) {
	if !c.checkIdentifier(s.Name, "assignment target") {
		return
	}

	value := c.lowerExpr(s.Value)
	c.emit(OpAssign, value, nil, s.Name)
}

// argActions stages already lowered operands as arguments 0..n-1
func (c *Codegen) argActions(args []any) {
	for pos, a := range args {
		c.emit(OpArg, a, pos, nil)
	}
}

// lowerArgs lowers every argument before any is staged, so nested calls cannot clobber staged arguments
func (c *Codegen) lowerArgs(exprs []ast.Expr) []any {
	args := make([]any, 0, len(exprs))
	for _, e := range exprs {
		args = append(args, c.lowerExpr(e))
	}
	return args
}

// printAction generates code for print statements
func (c *Codegen) printAction(s *ast.PrintStmt) {
	args := c.lowerArgs(s.Args)
	c.argActions(args)
	c.emit(OpPrint, nil, len(args), nil)
}

// callAction generates the call instruction and returns the temp receiving the result
func (c *Codegen) callAction(e *ast.CallExpr) any {
	c.checkIdentifier(e.Func, "function name")

	args := c.lowerArgs(e.Args)
	c.argActions(args)

	returnTemp := c.getTemp()
	c.emit(OpCall, e.Func, len(args), returnTemp)
	return returnTemp
}

// ifAction generates a conditional with an optional else branch
func (c *Codegen) ifAction(s *ast.IfStmt) {
	cond := c.lowerExpr(s.Cond)
	c.saveAction()
	c.lowerBlock(s.Then)

	if s.Else == nil {
		c.jmpfNormalAction(cond)
		return
	}

	c.jmpfAction(cond)
	c.saveAction()
	c.lowerBlock(s.Else)
	c.jmpAction()
}

// returnAction generates the return instruction for a function
func (c *Codegen) returnAction(s *ast.ReturnStmt) {
	if !c.inFunction {
		c.addReturnOutsideFunctionError()
		return
	}

	var value any
	if s.Value != nil {
		value = c.lowerExpr(s.Value)
	}

	c.emit(OpRet, value, nil, nil)
}

// funcAction generates a labelled function body.
//
// Layout: label, one param per parameter, body, ret (None), end.
func (c *Codegen) funcAction(s *ast.FuncDef) {
	if c.inFunction {
		c.addNestedFunctionError(s.Name)
		return
	}
	if !c.checkIdentifier(s.Name, "function name") {
		return
	}

	for i, p := range s.Params {
		c.checkIdentifier(p, "parameter name")
		if slices.Contains(s.Params[:i], p) {
			c.addDuplicateParameterError(s.Name, p)
		}
	}

	c.functions[s.Name] = len(s.Params)
	c.emit(OpLabel, s.Name, len(s.Params), nil)
	c.setInFunction(true, s.Name)

	for pos, p := range s.Params {
		c.emit(OpParam, p, pos, nil)
	}

	c.lowerBlock(s.Body)

	// falling off the end returns None
	c.emit(OpRet, nil, nil, nil)
	c.setInFunction(false, "")
	c.emit(OpEnd, nil, nil, nil)
}
