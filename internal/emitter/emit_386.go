//go:build 386

package emitter

import (
	"fmt"

	"github.com/example/mexce/internal/node"
	"github.com/example/mexce/internal/value"
)

// emitPrologue is empty on 386: the calling convention already expects
// a double result in st(0), which is exactly where the last call node
// leaves it.
func emitPrologue(b *buf, _ value.Arch) {}

// loadAbsOpcode maps a leaf's kind to the x87 opcode pair that loads
// directly from a 32-bit absolute address encoded as the instruction's
// displacement.
func loadAbsOpcode(k value.Kind) (prefix, modrm byte, ok bool) {
	switch k {
	case value.F32:
		return 0xd9, 0x05, true // fld dword ptr [addr]
	case value.F64:
		return 0xdd, 0x05, true // fld qword ptr [addr]
	case value.I16:
		return 0xdf, 0x05, true // fild word ptr [addr]
	case value.I32:
		return 0xdb, 0x05, true // fild dword ptr [addr]
	case value.I64:
		return 0xdf, 0x2d, true // fild qword ptr [addr]
	default:
		return 0, 0, false
	}
}

func emitLeaf(b *buf, _ value.Arch, n *node.Node) error {
	prefix, modrm, ok := loadAbsOpcode(n.Kind())
	if !ok {
		return fmt.Errorf("mexce: internal error: unsupported leaf kind %v", n.Kind())
	}
	b.write(prefix, modrm)
	addr := uint32(n.Addr())
	b.write(byte(addr), byte(addr>>8), byte(addr>>16), byte(addr>>24))
	return nil
}

// emitEpilogue is a bare return: the result is already in st(0), which
// is where the caller expects a returned double on this ABI. There is
// no scratch to patch, so the returned offset is -1.
func emitEpilogue(b *buf, _ value.Arch) int {
	b.write(0xc3)
	return -1
}
