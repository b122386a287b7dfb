//go:build amd64

package emitter

import (
	"fmt"

	"github.com/example/mexce/internal/node"
	"github.com/example/mexce/internal/value"
)

// emitPrologue pushes rax, which the amd64 backend uses throughout as
// the scratch register that carries a leaf's absolute address, and
// which the epilogue reuses as the return-value staging register.
func emitPrologue(b *buf, _ value.Arch) {
	b.write(0x50) // push rax
}

// loadAddrOpcode maps a leaf's kind to the x87 opcode pair that loads
// [rax] once rax already holds the leaf's absolute address.
func loadAddrOpcode(k value.Kind) (prefix, modrm byte, ok bool) {
	switch k {
	case value.F32:
		return 0xd9, 0x00, true // fld dword ptr [rax]
	case value.F64:
		return 0xdd, 0x00, true // fld qword ptr [rax]
	case value.I16:
		return 0xdf, 0x00, true // fild word ptr [rax]
	case value.I32:
		return 0xdb, 0x00, true // fild dword ptr [rax]
	case value.I64:
		return 0xdf, 0x28, true // fild qword ptr [rax]
	default:
		return 0, 0, false
	}
}

func emitLeaf(b *buf, _ value.Arch, n *node.Node) error {
	prefix, modrm, ok := loadAddrOpcode(n.Kind())
	if !ok {
		return fmt.Errorf("mexce: internal error: unsupported leaf kind %v", n.Kind())
	}
	b.write(0x48, 0xb8) // movabs rax, imm64
	b.write8u(n.Addr())
	b.write(prefix, modrm)
	return nil
}

// emitEpilogue stores st(0) to the evaluator's scratch qword and
// reloads it into xmm0, which is where the System V AMD64 ABI expects a
// returned double, then restores rax and returns. It returns the byte
// offset of the scratch address immediate so the caller can patch it in
// once the evaluator's scratch field address is known; that offset is
// fixed by this exact byte layout.
func emitEpilogue(b *buf, _ value.Arch) int {
	b.write(0x48, 0xb8) // movabs rax, imm64 (patched below)
	off := len(b.bytes)
	b.write8u(0)
	b.write(0xdd, 0x18)             // fstp qword ptr [rax]
	b.write(0xf3, 0x0f, 0x7e, 0x00) // movq xmm0, qword ptr [rax]
	b.write(0x58)                   // pop rax
	b.write(0xc3)                   // ret
	return off
}
