// Package resolve links a parsed postfix item stream into a node.Program,
// then runs the catalog's peephole rewrites and constant folding over it
// to a fixed point. It is grounded on the teacher's optimizer.go - a
// pass-driven pipeline with a bounded iteration count and verbose
// tracing - generalized from whole-program passes to per-node rewrites
// plus a folding pass that actually executes the subtree it is folding.
package resolve

import (
	"math"

	"github.com/example/mexce/internal/catalog"
	"github.com/example/mexce/internal/parser"
	"github.com/example/mexce/internal/value"
)

// SymbolTable is one compiler instance's live name space: the bindings
// and named constants it owns. It implements parser.Resolver so the
// parser can classify an identifier the moment it scans it, and exposes
// NameTaken so Bind can enforce the cross-kind name-uniqueness
// invariant against bindings, named constants, and catalog operations.
type SymbolTable struct {
	Bindings  map[string]*value.Binding
	Constants map[string]*value.Constant
}

// NewSymbolTable builds a table seeded with the two predefined named
// constants, pi and e, per spec.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Bindings: make(map[string]*value.Binding),
		Constants: map[string]*value.Constant{
			"pi": value.NewConstant("pi", math.Pi),
			"e":  value.NewConstant("e", math.E),
		},
	}
}

func (s *SymbolTable) Resolve(name string) (parser.Kind, int, bool) {
	if _, ok := s.Bindings[name]; ok {
		return parser.KindBinding, 0, true
	}
	if _, ok := s.Constants[name]; ok {
		return parser.KindConstant, 0, true
	}
	if e, ok := catalog.Lookup(name); ok {
		return parser.KindFunction, e.Arity, true
	}
	return 0, 0, false
}

// NameTaken reports whether name already names a binding, a named
// constant, or a catalog operation.
func (s *SymbolTable) NameTaken(name string) bool {
	if _, ok := s.Bindings[name]; ok {
		return true
	}
	if _, ok := s.Constants[name]; ok {
		return true
	}
	_, ok := catalog.Lookup(name)
	return ok
}
