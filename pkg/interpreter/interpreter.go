package interpreter

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"recscope/pkg/codegen"
	"recscope/pkg/stack"
)

// DefaultMaxDepth bounds recursion when WithMaxDepth is not given
const DefaultMaxDepth = 1000

// function describes one labelled function body in the PB
type function struct {
	Name   string
	Label  int // PB index of the label instruction
	End    int // PB index of the end instruction
	Params int
}

// Interpreter executes three-address IR (PB) produced by codegen
type Interpreter struct {
	pb []codegen.Instruction // program block (list of instructions)
	ip int                   // instruction pointer for top-level execution

	globals *Scope        // global variables
	temps   map[int]Value // temp slots of top-level code

	stack *stack.Stack[*Frame] // call stack (frames)

	argBuf map[int]Value // argument staging buffer (pos -> value)

	funcs   map[int]function // label PB index -> function
	defined map[string]int   // function name -> label PB index, bound when the definition runs

	out io.Writer // output writer for print

	execStep func(*Interpreter) (halted bool, err error)

	maxSteps int // maximum steps (0 = unlimited)
	steps    int // steps executed
	maxDepth int // maximum call depth

	hostResult Value // return value of the frame pushed by Call
}

type Option func(*Interpreter)

// WithWriter sets the output writer for print statements
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// WithMaxDepth sets the deepest call stack allowed before returning ErrMaxDepthExceeded
func WithMaxDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(pb []codegen.Instruction, opts ...Option) *Interpreter {
	it := &Interpreter{
		pb:       append([]codegen.Instruction(nil), pb...),
		ip:       0,
		globals:  NewScope(nil),
		temps:    make(map[int]Value),
		stack:    stack.NewStack[*Frame](),
		argBuf:   make(map[int]Value),
		defined:  make(map[string]int),
		out:      nil, // caller should set, or use WithWriter
		maxSteps: 0,   // 0 => unlimited
		maxDepth: DefaultMaxDepth,
	}

	it.indexProgram()
	for _, o := range opts {
		o(it)
	}

	if it.out == nil {
		it.out = os.Stdout
	}

	if it.execStep == nil {
		it.execStep = coreStep
	}

	return it
}

// Load replaces the current program block with a new one, resetting state
func (i *Interpreter) Load(pb []codegen.Instruction) {
	i.pb = append([]codegen.Instruction(nil), pb...)
	i.Reset()
	i.indexProgram()
}

// Reset clears runtime state (globals, call stack, IP, counters)
func (i *Interpreter) Reset() {
	i.ip = 0
	i.globals = NewScope(nil)
	i.temps = make(map[int]Value)
	i.stack.Reset()
	i.argBuf = make(map[int]Value)
	i.defined = make(map[string]int)
	i.steps = 0
}

// Program returns the active PB
func (i *Interpreter) Program() []codegen.Instruction {
	return i.pb
}

// Output returns the output writer used for print
func (i *Interpreter) Output() io.Writer {
	return i.out
}

// Steps returns the number of instructions executed since the last reset
func (i *Interpreter) Steps() int {
	return i.steps
}

// Depth returns the number of active call frames
func (i *Interpreter) Depth() int {
	return i.stack.Size()
}

// SetExecStep installs the core step function
func (i *Interpreter) SetExecStep(fn func(*Interpreter) (bool, error)) {
	i.execStep = fn
}

// Step executes a single instruction, returning (halted, error)
func (i *Interpreter) Step() (bool, error) {
	if i.execStep == nil {
		return false, ErrNotImplemented
	}

	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	halted, err := i.execStep(i)
	i.steps++

	return halted, err
}

// Run executes until halt or error
func (i *Interpreter) Run() error {
	for {
		halted, err := i.Step()
		if err != nil {
			return err
		}

		if halted {
			return nil
		}
	}
}

// PC returns the current instruction pointer, considering call frames
func (i *Interpreter) PC() int {
	if f := i.currentFrame(); f != nil {
		return f.IP
	}

	return i.ip
}

// SetPC sets the current instruction pointer, considering call frames
func (i *Interpreter) SetPC(pc int) {
	if f := i.currentFrame(); f != nil {
		f.IP = pc
		return
	}

	i.ip = pc
}

// currentFrame returns the current call frame, or nil if none
func (i *Interpreter) currentFrame() *Frame {
	f, _ := i.stack.Peek()
	return f
}

// PushFrame pushes a new call frame for the function labelled at label.
// The frame starts at the instruction after the label.
func (i *Interpreter) PushFrame(funcName string, label, retToIP, retTemp int) (*Frame, error) {
	if i.maxDepth > 0 && i.stack.Size() >= i.maxDepth {
		return nil, fmt.Errorf("%w: %d frames calling %s()", ErrMaxDepthExceeded, i.stack.Size(), funcName)
	}

	frame := &Frame{
		FuncName:   funcName,
		IP:         label + 1,
		Scope:      NewScope(i.globals),
		Temps:      make(map[int]Value),
		ReturnToIP: retToIP,
		RetTemp:    retTemp,
	}

	i.stack.Push(frame)
	return frame, nil
}

// PopFrame pops the current call frame
func (i *Interpreter) PopFrame() *Frame {
	f, _ := i.stack.Pop()
	return f
}

// SetVar binds a name in the innermost scope: the frame's locals inside a call, the globals otherwise
func (i *Interpreter) SetVar(name string, v Value) {
	if f := i.currentFrame(); f != nil {
		f.Scope.Set(name, v)
		return
	}

	i.globals.Set(name, v)
}

// GetVar reads a name from the frame's locals, falling back to the globals
func (i *Interpreter) GetVar(name string) (Value, bool) {
	if f := i.currentFrame(); f != nil {
		return f.Scope.Get(name)
	}

	return i.globals.Get(name)
}

// Global returns a global binding regardless of the active frame
func (i *Interpreter) Global(name string) (Value, bool) {
	return i.globals.Get(name)
}

// Globals returns a copy of every global binding
func (i *Interpreter) Globals() map[string]Value {
	return i.globals.Vars()
}

// setTemp writes a temp slot of the running frame (or of top-level code)
func (i *Interpreter) setTemp(slot int, v Value) {
	if f := i.currentFrame(); f != nil {
		f.Temps[slot] = v
		return
	}

	i.temps[slot] = v
}

// getTemp reads a temp slot of the running frame (or of top-level code)
func (i *Interpreter) getTemp(slot int) (Value, bool) {
	if f := i.currentFrame(); f != nil {
		v, ok := f.Temps[slot]
		return v, ok
	}

	v, ok := i.temps[slot]
	return v, ok
}

// indexProgram builds the function index for calls
func (i *Interpreter) indexProgram() {
	i.funcs = make(map[int]function)

	current := -1
	for idx, ins := range i.pb {
		switch ins.Op {
		case codegen.OpLabel:
			name, _ := ins.Arg1.(string)
			params, _ := ins.Arg2.(int)
			i.funcs[idx] = function{Name: name, Label: idx, End: len(i.pb) - 1, Params: params}
			current = idx
		case codegen.OpEnd:
			if current != -1 {
				fn := i.funcs[current]
				fn.End = idx
				i.funcs[current] = fn
				current = -1
			}
		}
	}
}

// Defined returns the sorted names of every function whose definition has run
func (i *Interpreter) Defined() []string {
	return slices.Sorted(maps.Keys(i.defined))
}

// lookupFunction resolves a defined function and checks the argument count
func (i *Interpreter) lookupFunction(name string, argCount int) (function, error) {
	label, ok := i.defined[name]
	if !ok {
		return function{}, fmt.Errorf("%w: name '%s' is not defined", ErrUndefinedFunction, name)
	}

	fn := i.funcs[label]
	if fn.Params != argCount {
		return function{}, fmt.Errorf("%w: %s() takes %d arguments but %d were given", ErrArityMismatch, name, fn.Params, argCount)
	}

	return fn, nil
}

// StageArg stages an argument value for a given position (pos starts at 0)
func (i *Interpreter) StageArg(pos int, v Value) {
	if i.argBuf == nil {
		i.argBuf = make(map[int]Value)
	}
	i.argBuf[pos] = v
}

// ConsumeArg retrieves and removes a staged argument at the given position
func (i *Interpreter) ConsumeArg(pos int) (Value, bool) {
	if i.argBuf == nil {
		return Value{}, false
	}
	v, ok := i.argBuf[pos]
	if ok {
		delete(i.argBuf, pos)
	}
	return v, ok
}

// ClearArgs clears all staged arguments
func (i *Interpreter) ClearArgs() {
	i.argBuf = make(map[int]Value)
}

var (
	ErrNotImplemented    = errors.New("interpreter step function not linked")
	ErrMaxStepsExceeded  = errors.New("maximum steps exceeded")
	ErrMaxDepthExceeded  = errors.New("maximum recursion depth exceeded")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUndefinedFunction = errors.New("undefined function")
	ErrArityMismatch     = errors.New("wrong number of arguments")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrIntegerOverflow   = errors.New("integer overflow")
	ErrType              = errors.New("type error")
	ErrBadInstruction    = errors.New("bad instruction")
)
