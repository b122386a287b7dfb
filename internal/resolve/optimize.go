package resolve

import (
	"fmt"
	"os"
	"strconv"
	"unsafe"

	"github.com/example/mexce/internal/catalog"
	"github.com/example/mexce/internal/emitter"
	"github.com/example/mexce/internal/node"
	"github.com/example/mexce/internal/value"
)

// Optimize runs the catalog's peephole rewrites over prog in node order,
// then folds every constant subtree to a literal, also in node order -
// a single forward pass suffices for both because a node's arguments
// always sit at lower indices than the node itself, so by the time a
// call is visited its own arguments have already settled.
func Optimize(prog *node.Program, arch value.Arch, verbose bool) error {
	runRewrites(prog, arch, verbose)
	return foldConstants(prog, arch, verbose)
}

func leafArgFor(n *node.Node) catalog.LeafArg {
	if !n.IsLeaf {
		return catalog.LeafArg{}
	}
	v, isConst := n.ConstValue()
	return catalog.LeafArg{
		IsLeaf:       true,
		Kind:         n.Kind(),
		Addr:         n.Addr(),
		IsConstValue: isConst,
		ConstValue:   v,
	}
}

func runRewrites(prog *node.Program, arch value.Arch, verbose bool) {
	for i := range prog.Nodes {
		n := &prog.Nodes[i]
		if n.Dead || n.IsLeaf {
			continue
		}
		entry, ok := catalog.Lookup(n.Op)
		if !ok || entry.Optimizer == nil {
			continue
		}

		args := make([]catalog.LeafArg, len(n.Args))
		for j, argIdx := range n.Args {
			args[j] = leafArgFor(&prog.Nodes[argIdx])
		}

		rw, ok := entry.Optimizer(arch, args)
		if !ok {
			continue
		}

		keptIdx := n.Args[rw.KeepArg]
		for j, argIdx := range n.Args {
			if j == rw.KeepArg {
				continue
			}
			if prog.Nodes[argIdx].Binding != nil {
				n.FoldsBinding = true
			}
			prog.MarkDead(argIdx)
		}
		n.Args = []int{keptIdx}
		n.Code = rw.Code
		n.ExtraFPUSlots = rw.ExtraFPUSlots

		if verbose {
			fmt.Fprintf(os.Stderr, "resolve: rewrote %s -> %d extra FPU slots\n", n.Op, n.ExtraFPUSlots)
		}
	}
}

// foldable reports whether n is a constant-foldable leaf: a named
// constant or a literal, never a binding, whose value is known without
// running any code.
func foldable(n *node.Node) bool {
	_, ok := n.ConstValue()
	return n.IsLeaf && ok
}

func foldConstants(prog *node.Program, arch value.Arch, verbose bool) error {
	for i := range prog.Nodes {
		n := &prog.Nodes[i]
		if n.Dead || n.IsLeaf || n.FoldsBinding {
			continue
		}
		allConst := true
		for _, argIdx := range n.Args {
			if !foldable(&prog.Nodes[argIdx]) {
				allConst = false
				break
			}
		}
		if !allConst {
			continue
		}

		v, err := evalSubtree(prog, n, arch)
		if err != nil {
			return err
		}

		for _, argIdx := range n.Args {
			prog.MarkDead(argIdx)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "resolve: folded %s -> %v\n", n.Op, v)
		}
		prog.Replace(i, node.NewLiteralLeaf(&value.Literal{Text: strconv.FormatFloat(v, 'g', -1, 64), V: v}))
	}
	return nil
}

// evalSubtree compiles n in isolation - n plus the leaves its Args point
// to, which by the time foldConstants reaches n are already known to be
// constant - into a throwaway executable page, runs it once, and
// releases the page before returning.
func evalSubtree(prog *node.Program, n *node.Node, arch value.Arch) (float64, error) {
	sub := &node.Program{}
	argIdxs := make([]int, len(n.Args))
	for i, argIdx := range n.Args {
		sub.Nodes = append(sub.Nodes, prog.Nodes[argIdx])
		argIdxs[i] = i
	}
	call := node.NewCall(n.Op, argIdxs)
	call.Code = n.Code
	call.ExtraFPUSlots = n.ExtraFPUSlots
	sub.Nodes = append(sub.Nodes, call)
	sub.Root = len(sub.Nodes) - 1

	var scratch float64
	page, err := emitter.Emit(sub, arch, func() uintptr { return uintptr(unsafe.Pointer(&scratch)) }, 0, false)
	if err != nil {
		return 0, fmt.Errorf("mexce: internal error: constant folding %q: %w", n.Op, err)
	}
	defer page.Release()

	return emitter.CallFloat64(page), nil
}
