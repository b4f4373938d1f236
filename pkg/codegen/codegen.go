package codegen

import (
	"regexp"

	"recscope/pkg/ast"
	"recscope/pkg/stack"
)

var identRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type Codegen struct {
	ss          *stack.Stack[int] // Semantic stack of jump placeholders awaiting backpatch
	i           int               // Instruction counter
	pb          []Instruction     // Program Block (list of IR instructions)
	tempCounter int               // Temporary slot counter
	inFunction  bool              // Flag indicating if inside a function
	funcName    string            // Name of the function being lowered
	functions   map[string]int    // Function name -> parameter count
	errors      []string          // List of semantic errors
}

// NewCodegen creates a new Codegen instance
func NewCodegen() *Codegen {
	return &Codegen{
		ss:          stack.NewStack[int](),
		i:           0,
		pb:          make([]Instruction, 0),
		tempCounter: 0,
		inFunction:  false,
		functions:   make(map[string]int),
	}
}

// Generate lowers a whole program and returns its program block
func Generate(prog *ast.Program) ([]Instruction, []string) {
	c := NewCodegen()
	c.Lower(prog)
	return c.GetProgram(), c.GetErrors()
}

// Lower appends the instructions for every top-level statement of prog
func (c *Codegen) Lower(prog *ast.Program) {
	c.lowerBlock(prog.Body)
}

// GetProgram returns the generated program block, terminated by a NOP
func (c *Codegen) GetProgram() []Instruction {
	return append(append([]Instruction(nil), c.pb...), Instruction{Op: OpNop})
}

// Functions returns the parameter count of every function definition seen so far
func (c *Codegen) Functions() map[string]int {
	return c.functions
}

// emit appends an instruction and advances the instruction counter
func (c *Codegen) emit(op Operation, arg1, arg2, arg3 any) {
	c.pb = append(c.pb, Instruction{Op: op, Arg1: arg1, Arg2: arg2, Arg3: arg3})
	c.i++
}

// getTemp returns a new temporary slot
func (c *Codegen) getTemp() int {
	t := c.tempCounter
	c.tempCounter++
	return t
}

// setInFunction enters or leaves a function body
func (c *Codegen) setInFunction(state bool, name string) {
	c.inFunction = state
	c.funcName = name
	if !state {
		c.funcName = ""
	}
}

// checkIdentifier records an error when name is not a valid identifier
func (c *Codegen) checkIdentifier(name, what string) bool {
	if identRegex.MatchString(name) {
		return true
	}

	c.addInvalidIdentifierError(name, what)
	return false
}
