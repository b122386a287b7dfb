package resolve

import (
	"testing"
	"unsafe"

	"github.com/nalgeon/be"
	"github.com/example/mexce/internal/parser"
	"github.com/example/mexce/internal/value"
)

func mustParse(t *testing.T, src string, syms *SymbolTable) []parser.Item {
	t.Helper()
	items, err := parser.Parse(src, syms)
	be.Err(t, err, nil)
	return items
}

func TestResolveDeduplicatesLiterals(t *testing.T) {
	syms := NewSymbolTable()
	items := mustParse(t, "2+2+2", syms)
	prog := Resolve(items, syms)

	literals := map[*value.Literal]bool{}
	for _, n := range prog.Nodes {
		if n.IsLeaf {
			literals[n.Literal] = true
		}
	}
	be.Equal(t, len(literals), 1)
}

func TestResolveBuildsArgsInSourceOrder(t *testing.T) {
	syms := NewSymbolTable()
	items := mustParse(t, "2-3", syms)
	prog := Resolve(items, syms)

	root := prog.Nodes[prog.Root]
	be.Equal(t, root.Op, "sub")
	be.Equal(t, len(root.Args), 2)

	lhs := prog.Nodes[root.Args[0]]
	rhs := prog.Nodes[root.Args[1]]
	lv, _ := lhs.ConstValue()
	rv, _ := rhs.ConstValue()
	be.Equal(t, lv, 2.0)
	be.Equal(t, rv, 3.0)
}

func TestResolvePowArgsBaseThenExponent(t *testing.T) {
	syms := NewSymbolTable()
	items := mustParse(t, "2^3", syms)
	prog := Resolve(items, syms)

	root := prog.Nodes[prog.Root]
	be.Equal(t, root.Op, "pow")

	base := prog.Nodes[root.Args[0]]
	exp := prog.Nodes[root.Args[1]]
	bv, _ := base.ConstValue()
	ev, _ := exp.ConstValue()
	be.Equal(t, bv, 2.0)
	be.Equal(t, ev, 3.0)
}

func TestResolveMarksBindingReferenced(t *testing.T) {
	syms := NewSymbolTable()
	var x float64
	syms.Bindings["x"] = &value.Binding{Name: "x", Kind: value.F64, Addr: unsafe.Pointer(&x)}

	items := mustParse(t, "x+1", syms)
	Resolve(items, syms)

	be.True(t, syms.Bindings["x"].Referenced)
}

func TestResolveConstantLeavesShareUnderlyingConstant(t *testing.T) {
	syms := NewSymbolTable()
	items := mustParse(t, "pi*pi", syms)
	prog := Resolve(items, syms)

	root := prog.Nodes[prog.Root]
	lhs := prog.Nodes[root.Args[0]]
	rhs := prog.Nodes[root.Args[1]]
	be.Equal(t, lhs.Constant, syms.Constants["pi"])
	be.Equal(t, rhs.Constant, syms.Constants["pi"])
}
