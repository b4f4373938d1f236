package interpreter

import (
	"fmt"
	"math"
	"strings"

	"recscope/pkg/codegen"
)

// coreStep is the main single-step execution function
// it returns (halted, error).
func coreStep(i *Interpreter) (bool, error) {
	// fetch current PC and instruction
	pc := i.PC()
	if pc < 0 || pc >= len(i.pb) {
		// halt if PC goes out of bounds
		return true, nil
	}

	in := i.pb[pc]

	switch in.Op {
	case codegen.OpNop, codegen.OpEnd:
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpLabel:
		// at top-level the definition binds the name and skips the body
		if i.currentFrame() == nil {
			fn, ok := i.funcs[pc]
			if !ok {
				return false, fmt.Errorf("%w: unindexed label at %d", ErrBadInstruction, pc)
			}
			i.defined[fn.Name] = pc
			i.SetPC(fn.End + 1)
			return false, nil
		}
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpAssign:
		// Arg1 operand; Arg3 is a variable name or a temp slot
		val, err := i.loadOperand(in.Arg1)
		if err != nil {
			return false, err
		}
		if err := i.store(in.Arg3, val); err != nil {
			return false, err
		}
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpAdd, codegen.OpSub, codegen.OpMul, codegen.OpDiv, codegen.OpMod,
		codegen.OpEq, codegen.OpNeq, codegen.OpLt, codegen.OpLe, codegen.OpGt, codegen.OpGe,
		codegen.OpAnd, codegen.OpOr:
		// Arg1, Arg2 operands; Arg3 destination
		v1, err := i.loadOperand(in.Arg1)
		if err != nil {
			return false, err
		}
		v2, err := i.loadOperand(in.Arg2)
		if err != nil {
			return false, err
		}
		res, err := evalBinary(in.Op, v1, v2)
		if err != nil {
			return false, err
		}
		if err := i.store(in.Arg3, res); err != nil {
			return false, err
		}
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpNot:
		v, err := i.loadOperand(in.Arg1)
		if err != nil {
			return false, err
		}
		if err := i.store(in.Arg3, NewBool(!v.AsBool())); err != nil {
			return false, err
		}
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpArg:
		pos, _ := in.Arg2.(int)
		val, err := i.loadOperand(in.Arg1)
		if err != nil {
			return false, err
		}
		i.StageArg(pos, val)
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpPrint:
		// Arg2 is the number of staged arguments
		count, _ := in.Arg2.(int)
		parts := make([]string, count)
		for p := range count {
			v, ok := i.ConsumeArg(p)
			if !ok {
				return false, fmt.Errorf("%w: print argument %d not staged", ErrBadInstruction, p)
			}
			parts[p] = v.String()
		}
		i.ClearArgs()
		if _, err := fmt.Fprintln(i.out, strings.Join(parts, " ")); err != nil {
			return false, err
		}
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpCall:
		// Arg1 funcName, Arg2 argCount, Arg3 return temp slot
		funcName, _ := in.Arg1.(string)
		argCount, _ := in.Arg2.(int)
		retTemp, _ := in.Arg3.(int)

		fn, err := i.lookupFunction(funcName, argCount)
		if err != nil {
			return false, err
		}

		args := make([]Value, argCount)
		for p := range argCount {
			v, ok := i.ConsumeArg(p)
			if !ok {
				return false, fmt.Errorf("%w: argument %d of %s() not staged", ErrBadInstruction, p, funcName)
			}
			args[p] = v
		}
		i.ClearArgs()

		callee, err := i.PushFrame(funcName, fn.Label, pc+1, retTemp)
		if err != nil {
			return false, err
		}
		callee.Args = args
		return false, nil

	case codegen.OpParam:
		// Arg1 parameter name, Arg2 position
		name, _ := in.Arg1.(string)
		pos, _ := in.Arg2.(int)
		f := i.currentFrame()
		if f == nil || pos < 0 || pos >= len(f.Args) {
			return false, fmt.Errorf("%w: param %s outside a call", ErrBadInstruction, name)
		}
		f.Scope.Set(name, f.Args[pos])
		i.SetPC(pc + 1)
		return false, nil

	case codegen.OpRet:
		retVal := None
		if in.Arg1 != nil {
			v, err := i.loadOperand(in.Arg1)
			if err != nil {
				return false, err
			}
			retVal = v
		}
		done := i.PopFrame()
		if done == nil {
			// top-level ret => halt
			return true, nil
		}
		if done.ReturnToIP == returnToHost {
			i.hostResult = retVal
			return false, nil
		}
		// the caller is now the current frame (or top level)
		i.setTemp(done.RetTemp, retVal)
		i.SetPC(done.ReturnToIP)
		return false, nil

	case codegen.OpJmp:
		target, _ := in.Arg3.(int)
		i.SetPC(target)
		return false, nil

	case codegen.OpJmpf:
		cond, err := i.loadOperand(in.Arg1)
		if err != nil {
			return false, err
		}
		if !cond.AsBool() {
			target, _ := in.Arg3.(int)
			i.SetPC(target)
		} else {
			i.SetPC(pc + 1)
		}
		return false, nil

	default:
		return true, fmt.Errorf("%w: unhandled op at %d: %s", ErrBadInstruction, pc, in)
	}
}

// loadOperand resolves an operand that may be:
// - immediate string "#..."
// - variable name
// - temp slot int
func (i *Interpreter) loadOperand(op any) (Value, error) {
	switch v := op.(type) {
	case string:
		if codegen.IsImmediate(v) {
			return parseImmediate(v)
		}
		val, ok := i.GetVar(v)
		if !ok {
			return Value{}, fmt.Errorf("%w: name '%s' is not defined", ErrUndefinedVariable, v)
		}
		return val, nil

	case int:
		val, ok := i.getTemp(v)
		if !ok {
			return Value{}, fmt.Errorf("%w: temp %d read before write", ErrBadInstruction, v)
		}
		return val, nil

	default:
		return Value{}, fmt.Errorf("%w: unsupported operand type %T", ErrBadInstruction, op)
	}
}

// store writes a value to a destination operand (variable name or temp slot)
func (i *Interpreter) store(dst any, v Value) error {
	switch d := dst.(type) {
	case string:
		if codegen.IsImmediate(d) {
			return fmt.Errorf("%w: cannot assign to immediate %s", ErrBadInstruction, d)
		}
		i.SetVar(d, v)
		return nil
	case int:
		i.setTemp(d, v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported destination type %T", ErrBadInstruction, dst)
	}
}

// evalBinary evaluates a binary operation on two Values
func evalBinary(op codegen.Operation, a, b Value) (Value, error) {
	switch op {
	case codegen.OpAnd:
		return NewBool(a.AsBool() && b.AsBool()), nil
	case codegen.OpOr:
		return NewBool(a.AsBool() || b.AsBool()), nil
	}

	// equality is defined for every kind pair; ordering and arithmetic need integers
	if (op == codegen.OpEq || op == codegen.OpNeq) && (a.Kind == KindString || b.Kind == KindString || a.Kind == KindNone || b.Kind == KindNone) {
		eq := a.Kind == b.Kind && a.String() == b.String()
		if op == codegen.OpEq {
			return NewBool(eq), nil
		}
		return NewBool(!eq), nil
	}

	ai, err := a.AsInt64()
	if err != nil {
		return Value{}, fmt.Errorf("operand of %s: %w", op, err)
	}
	bi, err := b.AsInt64()
	if err != nil {
		return Value{}, fmt.Errorf("operand of %s: %w", op, err)
	}

	switch op {
	case codegen.OpAdd:
		if (bi > 0 && ai > math.MaxInt64-bi) || (bi < 0 && ai < math.MinInt64-bi) {
			return Value{}, fmt.Errorf("%w: %d + %d", ErrIntegerOverflow, ai, bi)
		}
		return NewInt(ai + bi), nil
	case codegen.OpSub:
		if (bi < 0 && ai > math.MaxInt64+bi) || (bi > 0 && ai < math.MinInt64+bi) {
			return Value{}, fmt.Errorf("%w: %d - %d", ErrIntegerOverflow, ai, bi)
		}
		return NewInt(ai - bi), nil
	case codegen.OpMul:
		p := ai * bi
		if ai != 0 && (p/ai != bi || (ai == -1 && bi == math.MinInt64) || (bi == -1 && ai == math.MinInt64)) {
			return Value{}, fmt.Errorf("%w: %d * %d", ErrIntegerOverflow, ai, bi)
		}
		return NewInt(p), nil
	case codegen.OpDiv:
		// integer division truncating toward zero
		if bi == 0 {
			return Value{}, fmt.Errorf("%w: %d / 0", ErrDivisionByZero, ai)
		}
		if ai == math.MinInt64 && bi == -1 {
			return Value{}, fmt.Errorf("%w: %d / -1", ErrIntegerOverflow, ai)
		}
		return NewInt(ai / bi), nil
	case codegen.OpMod:
		if bi == 0 {
			return Value{}, fmt.Errorf("%w: %d %% 0", ErrDivisionByZero, ai)
		}
		return NewInt(ai % bi), nil
	case codegen.OpEq:
		return NewBool(ai == bi), nil
	case codegen.OpNeq:
		return NewBool(ai != bi), nil
	case codegen.OpLt:
		return NewBool(ai < bi), nil
	case codegen.OpLe:
		return NewBool(ai <= bi), nil
	case codegen.OpGt:
		return NewBool(ai > bi), nil
	case codegen.OpGe:
		return NewBool(ai >= bi), nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported binary op %s", ErrBadInstruction, op)
	}
}
