package catalog

import (
	"encoding/binary"
	"math"

	"github.com/example/mexce/internal/value"
)

// memOperandPrefix is the x87 opcode byte that, combined with a ModR/M
// byte selecting an arithmetic operation, addresses a memory operand of
// the given kind. 64-bit integers have no single-instruction x87 memory
// form and are not foldable this way.
func memOperandPrefix(k value.Kind) (byte, bool) {
	switch k {
	case value.I16:
		return 0xde, true
	case value.I32:
		return 0xda, true
	case value.F32:
		return 0xd8, true
	case value.F64:
		return 0xdc, true
	default:
		return 0, false
	}
}

// buildMemOperandOp loads addr into the accumulator register (eax on 386,
// rax on amd64) and appends the op's ModR/M byte, which then addresses
// [eax]/[rax]. Both backends go through the scratch register rather than
// direct absolute addressing here, unlike the 386 backend's plain leaf
// loads.
func buildMemOperandOp(arch value.Arch, addr uintptr, kind value.Kind, op byte) ([]byte, bool) {
	prefix, ok := memOperandPrefix(kind)
	if !ok {
		return nil, false
	}
	var buf []byte
	if arch == value.ArchAMD64 {
		buf = make([]byte, 0, 12)
		buf = append(buf, 0x48, 0xb8)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(addr))
	} else {
		buf = make([]byte, 0, 7)
		buf = append(buf, 0xb8)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(addr))
	}
	buf = append(buf, prefix, op)
	return buf, true
}

// foldMemoryOperand builds the memory-operand-folding Rewriter for a
// binary arithmetic op: opRHS is the opcode used when the right-hand
// operand folds into the instruction (the common case, including both
// operands of commutative ops), opLHS is the reversed-operand opcode used
// when only the left-hand operand is foldable (sub/div only - add/mul
// pass the same opcode for both).
func foldMemoryOperand(opRHS, opLHS byte) Rewriter {
	return func(arch value.Arch, args []LeafArg) (*Rewrite, bool) {
		if args[1].IsLeaf {
			if code, ok := buildMemOperandOp(arch, args[1].Addr, args[1].Kind, opRHS); ok {
				return &Rewrite{Code: code, KeepArg: 0}, true
			}
		}
		if args[0].IsLeaf {
			if code, ok := buildMemOperandOp(arch, args[0].Addr, args[0].Kind, opLHS); ok {
				return &Rewrite{Code: code, KeepArg: 1}, true
			}
		}
		return nil, false
	}
}

// integerPowerCode maps |n| (one of the catalog's special-cased integer
// exponents) to the fmul chain that computes base^|n| without invoking
// the generic pow sequence. ok is false for any value outside this fixed
// set, including exponents above 32.
func integerPowerCode(n float64) ([]byte, bool) {
	switch n {
	case 0:
		return []byte{0xdd, 0xd8, 0xd9, 0xe8}, true // fstp st(0); fld1
	case 1:
		return []byte{}, true
	case 2:
		return []byte{0xdc, 0xc8}, true
	case 3:
		return []byte{0xd9, 0xc0, 0xdc, 0xc8, 0xde, 0xc9}, true
	case 4:
		return []byte{0xdc, 0xc8, 0xdc, 0xc8}, true
	case 5:
		return []byte{0xd9, 0xc0, 0xdc, 0xc8, 0xdc, 0xc8, 0xde, 0xc9}, true
	case 6:
		return []byte{0xd9, 0xc0, 0xdc, 0xc8, 0xdc, 0xc8, 0xd8, 0xc9, 0xde, 0xc9}, true
	case 7:
		return []byte{0xd9, 0xc0, 0xdc, 0xc8, 0xdc, 0xc8, 0xd8, 0xc9, 0xd8, 0xc9, 0xde, 0xc9}, true
	case 8:
		return []byte{0xdc, 0xc8, 0xdc, 0xc8, 0xdc, 0xc8}, true
	case 16:
		return []byte{0xdc, 0xc8, 0xdc, 0xc8, 0xdc, 0xc8, 0xdc, 0xc8}, true
	case 32:
		return []byte{0xdc, 0xc8, 0xdc, 0xc8, 0xdc, 0xc8, 0xdc, 0xc8, 0xdc, 0xc8}, true
	default:
		return nil, false
	}
}

// specializeIntegerPower is pow's Rewriter: applicable only when the
// exponent (args[1], the second argument of pow(base, exponent)) is a
// compile-time-known value - a literal or named constant, never a bound
// variable - whose magnitude is a non-negative integer no larger than 32.
func specializeIntegerPower(_ value.Arch, args []LeafArg) (*Rewrite, bool) {
	exp := args[1]
	if !exp.IsConstValue {
		return nil, false
	}
	v := exp.ConstValue
	if math.Round(v) != v {
		return nil, false
	}
	a := math.Abs(v)
	if a > 32 {
		return nil, false
	}
	code, ok := integerPowerCode(a)
	if !ok {
		return nil, false
	}
	extra := integerPowerExtraFPUSlots(a)
	if v < 0 {
		code = append(code, 0xd9, 0xe8, 0xde, 0xf1) // fld1; fdivrp st(1),st (invert)
		if extra < 1 {
			extra = 1
		}
	}
	return &Rewrite{Code: code, KeepArg: 0, ExtraFPUSlots: extra}, true
}

// integerPowerExtraFPUSlots reports the one extra slot the chains for
// 3, 5, 6 and 7 need for their leading "fld st(0)" duplicate; the chains
// for 0, 1 and the powers of two 2 through 32 square st(0) in place (or
// replace it) and need none.
func integerPowerExtraFPUSlots(n float64) int {
	switch n {
	case 3, 5, 6, 7:
		return 1
	default:
		return 0
	}
}
