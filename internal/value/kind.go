// Package value holds the leaf-level data model shared by the catalog,
// parser, resolver, and emitter: binding/constant/literal descriptors and
// the numeric kind tag that drives which FPU load opcode a leaf emits.
package value

// Kind tags the in-memory representation of a value a compiled expression
// loads from: a bound variable, or (always F64) a named constant or a
// literal parsed out of the source text.
type Kind int

const (
	I16 Kind = iota
	I32
	I64
	F32
	F64
)

func (k Kind) String() string {
	switch k {
	case I16:
		return "i16"
	case I32:
		return "i32"
	case I64:
		return "i64"
	case F32:
		return "f32"
	case F64:
		return "f64"
	default:
		return "unknown"
	}
}

// Size reports the width in bytes of the in-memory representation.
func (k Kind) Size() int {
	switch k {
	case I16:
		return 2
	case I32, F32:
		return 4
	case I64, F64:
		return 8
	default:
		return 0
	}
}
