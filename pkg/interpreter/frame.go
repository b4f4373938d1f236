package interpreter

// Frame represents a function call frame.
type Frame struct {
	FuncName   string        // function name for this frame
	IP         int           // instruction pointer for this frame (index into PB)
	Scope      *Scope        // local variables, enclosed by the globals
	Temps      map[int]Value // temp slots written by this invocation
	Args       []Value       // arguments passed by the caller, bound by param instructions
	ReturnToIP int           // IP in caller to continue after return, or returnToHost
	RetTemp    int           // temp slot in the caller receiving the return value
}

// returnToHost marks a frame pushed by Interpreter.Call rather than by a call instruction
const returnToHost = -1
