package emitter

import (
	"fmt"

	"github.com/example/mexce/internal/catalog"
	"github.com/example/mexce/internal/jit"
	"github.com/example/mexce/internal/node"
	"github.com/example/mexce/internal/value"
)

// ScratchAddr supplies the absolute address of the evaluator's 64-bit
// return scratch, patched into the amd64 epilogue after assembly so the
// emitter never needs to know how the evaluator lays out its fields.
type ScratchAddr func() uintptr

// Emit lays out prog's live nodes in program order, enforces the
// architectural FPU-stack limit, appends the architecture's
// prologue/epilogue, writes the result into a freshly acquired
// executable page, seals it, and returns that page. The caller is
// responsible for releasing whatever page this one replaces.
func Emit(prog *node.Program, arch value.Arch, scratch ScratchAddr, minPageSize int, verbose bool) (*jit.Page, error) {
	b := &buf{verbose: verbose}

	emitPrologue(b, arch)

	depth := 0
	peak := 0
	track := func(d int) {
		if d > peak {
			peak = d
		}
	}

	for i := range prog.Nodes {
		n := &prog.Nodes[i]
		if n.Dead {
			continue
		}
		if n.IsLeaf {
			if err := emitLeaf(b, arch, n); err != nil {
				return nil, err
			}
			depth++
			track(depth)
			continue
		}

		code, extra, arity, err := resolveCall(n)
		if err != nil {
			return nil, err
		}
		track(depth + extra)
		b.writeSlice(code)
		depth = depth - arity + 1
		track(depth)
	}

	if peak > catalog.MaxFPUDepth {
		return nil, fmt.Errorf("mexce: internal error: FPU stack depth %d exceeds architectural limit %d", peak, catalog.MaxFPUDepth)
	}

	epilogueScratchOff := emitEpilogue(b, arch)
	if epilogueScratchOff >= 0 && scratch != nil {
		patchScratchAddr(b, epilogueScratchOff, uint64(scratch()))
	}

	allocSize := len(b.bytes)
	if minPageSize > allocSize {
		allocSize = minPageSize
	}
	page, err := jit.AcquirePage(allocSize)
	if err != nil {
		return nil, err
	}
	if err := page.Write(0, b.bytes); err != nil {
		page.Release()
		return nil, err
	}
	if err := page.Seal(); err != nil {
		page.Release()
		return nil, err
	}
	return page, nil
}

// resolveCall returns the bytes to emit for a call node, its effective
// extra-FPU-slot count, and its effective arity - all three drawn from
// the node's own override when a rewrite has run, otherwise from its
// catalog entry.
func resolveCall(n *node.Node) (code []byte, extraFPUSlots, arity int, err error) {
	if n.Code != nil {
		return n.Code, n.ExtraFPUSlots, n.Arity(), nil
	}
	entry, ok := catalog.Lookup(n.Op)
	if !ok {
		return nil, 0, 0, fmt.Errorf("mexce: internal error: unknown catalog operation %q", n.Op)
	}
	return entry.Code, entry.ExtraFPUSlots, n.Arity(), nil
}

func patchScratchAddr(b *buf, off int, addr uint64) {
	b.patch8(off, addr)
}
