//go:build 386

package emitter

import (
	"unsafe"

	"github.com/example/mexce/internal/jit"
)

type float64Func func() float64

// CallFloat64 invokes a sealed page's entry point as a Go func value and
// returns the float64 it leaves in st(0) - the 386 epilogue emits a bare
// ret with the result already on the FPU stack, which the 386 Go calling
// convention for a float64-returning func also expects.
func CallFloat64(p *jit.Page) float64 {
	entry := p.Entry()
	entryPtr := &entry
	fn := *(*float64Func)(unsafe.Pointer(&entryPtr))
	return fn()
}
