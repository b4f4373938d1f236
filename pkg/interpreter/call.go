package interpreter

import "fmt"

// Call invokes a function defined by the program that has already run,
// passing integer arguments, and returns its result. The top-level
// instruction pointer and the globals are left as they were.
func (i *Interpreter) Call(name string, args ...int64) (Value, error) {
	fn, err := i.lookupFunction(name, len(args))
	if err != nil {
		return Value{}, err
	}

	savedIP := i.ip
	base := i.stack.Size()
	defer func() {
		for i.stack.Size() > base {
			i.PopFrame()
		}
		i.ClearArgs()
		i.ip = savedIP
	}()

	frame, err := i.PushFrame(name, fn.Label, returnToHost, 0)
	if err != nil {
		return Value{}, err
	}
	frame.Args = make([]Value, len(args))
	for p, a := range args {
		frame.Args[p] = NewInt(a)
	}

	i.hostResult = None
	for i.stack.Size() > base {
		halted, err := i.Step()
		if err != nil {
			return Value{}, fmt.Errorf("%s(): %w", name, err)
		}
		if halted {
			return Value{}, fmt.Errorf("%w: %s() halted before returning", ErrBadInstruction, name)
		}
	}

	return i.hostResult, nil
}

// CallInt is Call for functions expected to return an integer.
func (i *Interpreter) CallInt(name string, args ...int64) (int64, error) {
	v, err := i.Call(name, args...)
	if err != nil {
		return 0, err
	}
	return v.AsInt64()
}
