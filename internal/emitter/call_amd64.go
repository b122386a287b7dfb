//go:build amd64

package emitter

import (
	"unsafe"

	"github.com/example/mexce/internal/jit"
)

type float64Func func() float64

// CallFloat64 invokes a sealed page's entry point as a Go func value and
// returns the float64 it leaves in xmm0, the same unsafe.Pointer
// round-trip the retrieval pack's mmap-based JIT helper uses to turn a
// raw code address into a callable value. A func value is itself a
// pointer to a funcval whose first word is the entry PC, so entry must
// be addressed through one more level of indirection before the cast,
// not cast directly.
func CallFloat64(p *jit.Page) float64 {
	entry := p.Entry()
	entryPtr := &entry
	fn := *(*float64Func)(unsafe.Pointer(&entryPtr))
	return fn()
}
