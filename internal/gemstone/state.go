// Package gemstone carries the compiler context built during parsing and
// read back by type checking: the builtin-function table, the class
// table, and the variable table described in spec.md §3 as "Gemstone
// state". It is a plain struct passed explicitly, not process-wide
// state, per spec.md §9's design note on parser state.
package gemstone

import "github.com/cwbudde/gemc/internal/ast"

// builtins is the fixed set of built-in free functions (spec.md §3).
var builtins = map[string]bool{
	"print":   true,
	"println": true,
}

// State is the compiler context shared by the parser and the type
// checker for a single compiled file. The emitter does not use it.
type State struct {
	Classes   map[string]*ast.ClassDecl
	Variables map[string]*ast.VarDecl
}

// New returns an empty State ready for a fresh compilation.
func New() *State {
	return &State{
		Classes:   make(map[string]*ast.ClassDecl),
		Variables: make(map[string]*ast.VarDecl),
	}
}

// IsBuiltin reports whether name is one of the fixed built-in functions.
func IsBuiltin(name string) bool {
	return builtins[name]
}

// DeclareClass records (or overwrites) a class in the class table, as
// spec.md §3 requires: "redeclaration overwrites".
func (s *State) DeclareClass(c *ast.ClassDecl) {
	s.Classes[c.Name] = c
}

// LookupClass returns the class declaration named name, if any.
func (s *State) LookupClass(name string) (*ast.ClassDecl, bool) {
	c, ok := s.Classes[name]
	return c, ok
}

// DeclareVariable records a variable declaration in the variable table.
func (s *State) DeclareVariable(v *ast.VarDecl) {
	s.Variables[v.Name] = v
}

// LookupVariable returns the variable declaration named name, if any.
func (s *State) LookupVariable(name string) (*ast.VarDecl, bool) {
	v, ok := s.Variables[name]
	return v, ok
}
