package resolve

import (
	"testing"
	"unsafe"

	"github.com/nalgeon/be"
	"github.com/example/mexce/internal/value"
)

func TestOptimizeFoldsPureConstantExpression(t *testing.T) {
	syms := NewSymbolTable()
	items := mustParse(t, "2+3*4", syms)
	prog := Resolve(items, syms)

	err := Optimize(prog, value.Current(), false)
	be.Err(t, err, nil)

	root := prog.Nodes[prog.Root]
	be.True(t, root.IsLeaf)
	v, ok := root.ConstValue()
	be.True(t, ok)
	be.Equal(t, v, 14.0)
}

func TestOptimizeLeavesBindingDependentExpressionUnfolded(t *testing.T) {
	syms := NewSymbolTable()
	var x float64 = 5
	syms.Bindings["x"] = &value.Binding{Name: "x", Kind: value.F64, Addr: unsafe.Pointer(&x)}

	items := mustParse(t, "x+2*3", syms)
	prog := Resolve(items, syms)

	err := Optimize(prog, value.Current(), false)
	be.Err(t, err, nil)

	root := prog.Nodes[prog.Root]
	be.Equal(t, root.IsLeaf, false)
	be.Equal(t, root.Op, "add")
}

func TestOptimizeSpecializesIntegerPower(t *testing.T) {
	syms := NewSymbolTable()
	var x float64 = 3
	syms.Bindings["x"] = &value.Binding{Name: "x", Kind: value.F64, Addr: unsafe.Pointer(&x)}

	items := mustParse(t, "x^2", syms)
	prog := Resolve(items, syms)

	err := Optimize(prog, value.Current(), false)
	be.Err(t, err, nil)

	root := prog.Nodes[prog.Root]
	be.Equal(t, root.IsLeaf, false)
	be.Equal(t, root.Op, "pow")
	be.Equal(t, len(root.Args), 1)
	be.True(t, root.Code != nil)
}

func TestOptimizeDoesNotFoldMemoryOperandRewriteOfBinding(t *testing.T) {
	syms := NewSymbolTable()
	var a float64 = 5
	syms.Bindings["a"] = &value.Binding{Name: "a", Kind: value.F64, Addr: unsafe.Pointer(&a)}

	items := mustParse(t, "2-a", syms)
	prog := Resolve(items, syms)

	err := Optimize(prog, value.Current(), false)
	be.Err(t, err, nil)

	root := prog.Nodes[prog.Root]
	be.Equal(t, root.IsLeaf, false)
	be.True(t, root.FoldsBinding)
	be.Equal(t, len(root.Args), 1)
}
