package interpreter

import "maps"

// Scope maps names to values. Reads fall back to the outer scope; writes
// always land in this one, so a local never rebinds an outer name.
type Scope struct {
	vars  map[string]Value
	outer *Scope
}

// NewScope creates a scope enclosed by outer (nil for the global scope)
func NewScope(outer *Scope) *Scope {
	return &Scope{vars: make(map[string]Value), outer: outer}
}

// Get looks name up here, then in the enclosing scopes
func (s *Scope) Get(name string) (Value, bool) {
	v, ok := s.vars[name]
	if !ok && s.outer != nil {
		return s.outer.Get(name)
	}
	return v, ok
}

// Set binds name in this scope only
func (s *Scope) Set(name string, v Value) {
	s.vars[name] = v
}

// Local reports whether name is bound in this scope itself
func (s *Scope) Local(name string) bool {
	_, ok := s.vars[name]
	return ok
}

// Vars returns a copy of this scope's own bindings
func (s *Scope) Vars() map[string]Value {
	return maps.Clone(s.vars)
}
