// Package node holds the linear, index-addressed intermediate form that
// sits between the parser's postfix item stream and the emitter: leaves
// (bindings, named constants, literals) and calls into the catalog,
// referencing their arguments by position rather than by pointer so that
// optimizer passes can supersede a node in place without renumbering
// everything that points past it.
package node

import "github.com/example/mexce/internal/value"

// LeafKind distinguishes the three sources of a leaf value.
type LeafKind int

const (
	LeafBinding LeafKind = iota
	LeafConstant
	LeafLiteral
)

// Node is one entry in a Program. A leaf carries exactly one of Binding,
// Constant, or Literal, matching LeafKind. A call carries Op and
// Args, indices into the same Program naming its arguments in the order
// they appear in source (args[0] is the leftmost/first argument).
//
// Dead marks a node that optimization has superseded - folded into a
// literal, or subsumed by a rewrite - but not removed, so that every
// other node's Args indices stay valid. A dead node is never emitted and
// never itself referenced by a live node's Args.
type Node struct {
	IsLeaf bool
	Dead   bool

	LeafKind LeafKind
	Binding  *value.Binding
	Constant *value.Constant
	Literal  *value.Literal

	Op   string
	Args []int

	// Code and ExtraFPUSlots override the catalog entry's template when
	// set - the result of a peephole rewrite folding one argument into
	// the instruction stream itself (see the catalog package's Rewrite).
	// Code is nil for an untouched call, which emits straight from its
	// catalog entry instead.
	Code          []byte
	ExtraFPUSlots int

	// FoldsBinding is set when a memory-operand rewrite folded a
	// Binding leaf's address into Code. Such a node's result depends on
	// live, mutable memory even though every node it still references
	// may itself be constant, so it is never a candidate for constant
	// folding - the one case spec.md's folding pass explicitly carves
	// out ("whose bytes do not embed a pointer to a mutable binding").
	FoldsBinding bool
}

// Arity is the number of live arguments this call takes, which may be
// smaller than its catalog entry's Arity after a rewrite folds one
// argument away.
func (n *Node) Arity() int {
	return len(n.Args)
}

// Kind reports the in-memory representation a leaf loads from. Calls
// have no Kind of their own; every catalog entry produces an F64 on the
// FPU stack.
func (n *Node) Kind() value.Kind {
	if n.Binding != nil {
		return n.Binding.Kind
	}
	return value.F64
}

// Addr returns the absolute address a leaf loads from. It panics if
// called on a call node; callers must check IsLeaf first.
func (n *Node) Addr() uintptr {
	switch {
	case n.Binding != nil:
		return n.Binding.AddrUintptr()
	case n.Constant != nil:
		return n.Constant.AddrUintptr()
	case n.Literal != nil:
		return n.Literal.AddrUintptr()
	default:
		panic("node: Addr called on a non-leaf node")
	}
}

// ConstValue reports the compile-time-known value of a constant or
// literal leaf. ok is false for a binding, whose value is only known at
// evaluation time, and for any call node.
func (n *Node) ConstValue() (v float64, ok bool) {
	switch {
	case n.Constant != nil:
		return n.Constant.V, true
	case n.Literal != nil:
		return n.Literal.V, true
	default:
		return 0, false
	}
}

// NewBindingLeaf, NewConstantLeaf, and NewLiteralLeaf build the three
// leaf shapes. Callers append the result to a Program's Nodes slice.
func NewBindingLeaf(b *value.Binding) Node {
	return Node{IsLeaf: true, LeafKind: LeafBinding, Binding: b}
}

func NewConstantLeaf(c *value.Constant) Node {
	return Node{IsLeaf: true, LeafKind: LeafConstant, Constant: c}
}

func NewLiteralLeaf(l *value.Literal) Node {
	return Node{IsLeaf: true, LeafKind: LeafLiteral, Literal: l}
}

// NewCall builds a call node. args must already be in source order.
func NewCall(op string, args []int) Node {
	return Node{Op: op, Args: args}
}

// Program is the full linear form of one compiled expression: every leaf
// and call reachable from the final result, plus whatever dead nodes
// optimization left behind at stable indices. Root names the index that
// produces the expression's value.
type Program struct {
	Nodes []Node
	Root  int
}

// Replace turns the node at i into a leaf - used by constant folding to
// splice a literal in over a call's former root - leaving i's old
// dependencies (now unreferenced) at their existing indices, marked dead
// by the caller.
func (p *Program) Replace(i int, n Node) {
	p.Nodes[i] = n
}

// MarkDead flags the node at i as no longer reachable from Root. Callers
// are responsible for marking an entire superseded subtree; each node
// here has exactly one referencing parent, so there is no sharing to
// reason about when walking down from i.
func (p *Program) MarkDead(i int) {
	p.Nodes[i].Dead = true
}
