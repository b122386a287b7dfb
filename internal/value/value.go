package value

import "unsafe"

// Binding is a caller-owned named variable: a name, a numeric kind, and
// the caller's memory address. mexce never owns this storage; the caller
// must keep it alive until Unbind or compiler teardown. Referenced is set
// while the binding appears in the currently compiled expression, and
// drives invalidation on Unbind.
type Binding struct {
	Name       string
	Kind       Kind
	Addr       unsafe.Pointer
	Referenced bool
}

// AddrUintptr returns the binding's address as an absolute integer,
// suitable for embedding as a machine-code immediate. The Binding itself
// must stay reachable (held by the compiler) for as long as that code
// exists, or the keepalive guarantee implied by the embedded address is
// broken.
func (b *Binding) AddrUintptr() uintptr {
	return uintptr(b.Addr)
}

// Constant is a named 64-bit constant physically stored inside the
// compiler (pi and e). Its address is stable for the compiler's lifetime,
// because the compiler retains the *Constant for as long as it exists.
type Constant struct {
	Name string
	V    float64
}

func NewConstant(name string, v float64) *Constant {
	return &Constant{Name: name, V: v}
}

func (c *Constant) Addr() unsafe.Pointer {
	return unsafe.Pointer(&c.V)
}

func (c *Constant) AddrUintptr() uintptr {
	return uintptr(c.Addr())
}

// Literal is a 64-bit float parsed from source text, deduplicated by that
// text within one compilation. Folded constants (the result of constant
// folding a pure-constant subtree) are also represented as Literal nodes,
// synthesized rather than parsed.
type Literal struct {
	Text string
	V    float64
}

func (l *Literal) Addr() unsafe.Pointer {
	return unsafe.Pointer(&l.V)
}

func (l *Literal) AddrUintptr() uintptr {
	return uintptr(l.Addr())
}
