//go:build amd64

package emitter

import (
	"testing"
	"unsafe"

	"github.com/nalgeon/be"
	"github.com/example/mexce/internal/node"
	"github.com/example/mexce/internal/value"
)

type evalFunc func() float64

// call casts a sealed page's entry point to a Go func value and invokes
// it, the same unsafe.Pointer round-trip the retrieval pack's mmap-based
// JIT helper uses to turn a raw code address into a callable value. A
// func value points to a funcval whose first word is the entry PC, so
// entry is addressed through one more level of indirection before the cast.
func call(p interface{ Entry() uintptr }) float64 {
	entry := p.Entry()
	entryPtr := &entry
	fn := *(*evalFunc)(unsafe.Pointer(&entryPtr))
	return fn()
}

func TestEmitLiteralAddition(t *testing.T) {
	a := &value.Literal{Text: "2", V: 2}
	c := &value.Literal{Text: "3", V: 3}
	prog := &node.Program{
		Nodes: []node.Node{
			node.NewLiteralLeaf(a),
			node.NewLiteralLeaf(c),
			node.NewCall("add", []int{0, 1}),
		},
		Root: 2,
	}

	var scratch float64
	page, err := Emit(prog, value.ArchAMD64, func() uintptr { return uintptr(unsafe.Pointer(&scratch)) }, 0, false)
	be.Err(t, err, nil)
	defer page.Release()

	be.Equal(t, call(page), 5.0)
}

func TestEmitBindingLoadAndNegate(t *testing.T) {
	x := 4.5
	b := &value.Binding{Name: "x", Kind: value.F64, Addr: unsafe.Pointer(&x)}
	prog := &node.Program{
		Nodes: []node.Node{
			node.NewBindingLeaf(b),
			node.NewCall("neg", []int{0}),
		},
		Root: 1,
	}

	var scratch float64
	page, err := Emit(prog, value.ArchAMD64, func() uintptr { return uintptr(unsafe.Pointer(&scratch)) }, 0, false)
	be.Err(t, err, nil)
	defer page.Release()

	be.Equal(t, call(page), -4.5)

	x = 10
	be.Equal(t, call(page), -10.0)
}

func TestEmitRewrittenCallUsesOverrideBytes(t *testing.T) {
	base := &value.Literal{Text: "3", V: 3}
	prog := &node.Program{
		Nodes: []node.Node{
			node.NewLiteralLeaf(base),
			{Op: "pow", Args: []int{0}, Code: []byte{0xdc, 0xc8}}, // fmul st(0) - base^2
		},
		Root: 1,
	}

	var scratch float64
	page, err := Emit(prog, value.ArchAMD64, func() uintptr { return uintptr(unsafe.Pointer(&scratch)) }, 0, false)
	be.Err(t, err, nil)
	defer page.Release()

	be.Equal(t, call(page), 9.0)
}
