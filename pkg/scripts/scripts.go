// Package scripts holds the fixture programs, built directly as syntax trees.
package scripts

import (
	"recscope/pkg/ast"
)

// Script is one fixture program.
type Script struct {
	Name        string
	Description string
	Origin      string // path of the script file the fixture reproduces
	build       func() *ast.Program
}

// Program builds a fresh syntax tree for the script.
func (s Script) Program() *ast.Program {
	prog := s.build()
	prog.Name = s.Name
	return prog
}

var catalog = []Script{
	{
		Name:        "in23",
		Description: "global reassignments around a call whose locals shadow a and b",
		Origin:      "testcases03/in23.py",
		build:       scopeProgram,
	},
	{
		Name:        "in23_literal",
		Description: "in23 with its first expression as written, a*2+b-3",
		Origin:      "testcases03/in23.py",
		build:       scopeLiteralProgram,
	},
	{
		Name:        "rectest2",
		Description: "recursive sum of the naturals up to n",
		Origin:      "testcases_recursion/rectest2.py",
		build:       sumNaturalProgram,
	},
	{
		Name:        "rectest4",
		Description: "recursive greatest common divisor",
		Origin:      "testcases_recursion/rectest4.py",
		build:       gcdProgram,
	},
	{
		Name:        "rectest5",
		Description: "recursive integer power",
		Origin:      "testcases_recursion/rectest5.py",
		build:       powerProgram,
	},
}

// All returns every script in catalog order.
func All() []Script {
	return append([]Script(nil), catalog...)
}

// Names returns the script names in catalog order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}
	return names
}

// Lookup finds a script by name.
func Lookup(name string) (Script, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}
	return Script{}, false
}
