package mexce

import "github.com/example/mexce/internal/value"

// Kind names the storage format of a value the compiled code loads from
// caller-owned memory: a bound variable's declared numeric type. Named
// constants and literals are always internally F64 and never exposed
// through Kind at the Bind boundary.
type Kind = value.Kind

const (
	I16 = value.I16
	I32 = value.I32
	I64 = value.I64
	F32 = value.F32
	F64 = value.F64
)
