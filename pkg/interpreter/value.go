package interpreter

import (
	"fmt"
	"strconv"
	"strings"
)

type ValueKind int

const (
	KindNone ValueKind = iota
	KindInt
	KindBool
	KindString
)

// String returns the kind name used in error messages
func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindString:
		return "str"
	default:
		return "NoneType"
	}
}

// Value represents a dynamically-typed value in the interpreter.
type Value struct {
	Kind ValueKind
	I64  int64
	Bool bool
	Str  string
}

// None is the result of a function that returns without a value.
var None = Value{Kind: KindNone}

// String renders the value the way print shows it.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindBool:
		if v.Bool {
			return "True"
		}
		return "False"
	case KindString:
		return v.Str
	default:
		return "None"
	}
}

// AsInt64 converts the value to int64 if possible.
func (v Value) AsInt64() (int64, error) {
	switch v.Kind {
	case KindInt:
		return v.I64, nil
	case KindBool:
		if v.Bool {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: cannot use %s as int", ErrType, v.Kind)
	}
}

// AsBool reports the truth value.
func (v Value) AsBool() bool {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt:
		return v.I64 != 0
	case KindString:
		return v.Str != ""
	default:
		return false
	}
}

// NewInt creates a new integer Value.
func NewInt(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

// NewBool creates a new boolean Value.
func NewBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NewString creates a new string Value.
func NewString(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// parseImmediate parses a codegen immediate like "#1", "#-3" or a quoted string with leading '#'.
func parseImmediate(imm string) (Value, error) {
	if !strings.HasPrefix(imm, "#") {
		return Value{}, fmt.Errorf("immediate must start with '#': %q", imm)
	}
	body := imm[1:]

	if body == "True" {
		return NewBool(true), nil
	}
	if body == "False" {
		return NewBool(false), nil
	}

	if len(body) >= 2 && body[0] == '"' && body[len(body)-1] == '"' {
		s, err := strconv.Unquote(body)
		if err != nil {
			return Value{}, fmt.Errorf("bad string immediate %q: %w", imm, err)
		}
		return NewString(s), nil
	}

	if i, err := strconv.ParseInt(body, 10, 64); err == nil {
		return NewInt(i), nil
	}

	return Value{}, fmt.Errorf("unsupported immediate: %q", imm)
}
