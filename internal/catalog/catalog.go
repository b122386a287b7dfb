// Package catalog is the static, read-only table of named operations: one
// entry per arithmetic, trig, log/exp, rounding, comparison, or utility
// function mexce expressions can call. Every entry's code bytes and
// extra-FPU-slot count are taken from the x87 instruction sequences this
// design is modeled on; the table never changes after init, so it is safe
// for every compiler instance, and every thread, to read concurrently.
package catalog

import "github.com/example/mexce/internal/value"

// LeafArg is what a peephole Rewriter sees of one call argument: whether
// it is a leaf (binding, named constant, or literal - anything with a
// stable memory address), its kind and address if so, and whether its
// numeric value is already known at compile time (constants and literals,
// never bindings).
type LeafArg struct {
	IsLeaf       bool
	Kind         value.Kind
	Addr         uintptr
	IsConstValue bool
	ConstValue   float64
}

// Rewrite is the replacement a Rewriter proposes: a new single-input
// operation's byte code, which of the call's original arguments stays
// as that single input, and how many FPU-stack slots the replacement
// code needs beyond that one input (mirrors Entry.ExtraFPUSlots, since
// the rewritten code no longer has a catalog Entry of its own to read
// that count from).
type Rewrite struct {
	Code          []byte
	KeepArg       int
	ExtraFPUSlots int
}

// Rewriter is a peephole optimizer callback. It inspects a call's
// arguments and, if applicable, returns a cheaper single-input
// replacement. Returning ok=false leaves the call untouched.
type Rewriter func(arch value.Arch, args []LeafArg) (*Rewrite, bool)

// Entry is one catalog operation: a name, an arity, the maximum number of
// extra FPU-stack slots its code needs beyond its inputs, its byte
// template, and an optional peephole rewriter.
type Entry struct {
	Name          string
	Arity         int
	ExtraFPUSlots int
	Code          []byte
	Optimizer     Rewriter
}

var registry = map[string]*Entry{}

func register(e *Entry) {
	if _, exists := registry[e.Name]; exists {
		panic("catalog: duplicate operation name " + e.Name)
	}
	registry[e.Name] = e
}

// Lookup returns the catalog entry for name, case-sensitively. Names are
// normalized to catalog form (add, sub, pow, neg, less_than, ...) by the
// parser before ever reaching here.
func Lookup(name string) (*Entry, bool) {
	e, ok := registry[name]
	return e, ok
}

// MaxFPUDepth is the architectural limit of the x87 register stack.
const MaxFPUDepth = 8
