package mexce

import (
	"errors"
	"sync/atomic"
	"unsafe"

	"github.com/example/mexce/internal/emitter"
	"github.com/example/mexce/internal/jit"
	"github.com/example/mexce/internal/parser"
	"github.com/example/mexce/internal/resolve"
	"github.com/example/mexce/internal/value"
)

// Evaluator compiles one expression at a time against a set of named
// bindings and evaluates it by running native code. It is grounded on
// the teacher's ExecutableBuilder: a single owning type that exposes a
// narrow lifecycle (define bindings, assign an expression, run it) over
// an internally managed executable page.
//
// An Evaluator is single-threaded: Bind, Unbind, and SetExpression must
// not be called concurrently with each other or with Evaluate. Evaluate
// itself is reentrant with itself.
type Evaluator struct {
	cfg  Config
	syms *resolve.SymbolTable
	arch value.Arch

	page    *jit.Page
	fn      unsafe.Pointer // *func() float64, swapped atomically
	scratch float64
}

type evalFn func() float64

// New constructs an Evaluator with the predefined constants pi and e
// already bound, and the default expression "0" already compiled, so
// Evaluate is always callable.
func New(opts ...Option) *Evaluator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	e := &Evaluator{
		cfg:  cfg,
		syms: resolve.NewSymbolTable(),
		arch: value.Current(),
	}
	if err := e.SetExpression("0"); err != nil {
		panic("mexce: internal error: default expression failed to compile: " + err.Error())
	}
	return e
}

// Bind registers a named variable backed by addr, whose declared kind
// determines how the compiled code loads it. Fails with NameInUse if
// name collides with an existing binding, named constant, or catalog
// operation. Binding does not affect the currently compiled expression
// until it is referenced by a future SetExpression call.
func (e *Evaluator) Bind(name string, kind Kind, addr unsafe.Pointer) error {
	if e.syms.NameTaken(name) {
		return nameInUseErr(name)
	}
	e.syms.Bindings[name] = &value.Binding{Name: name, Kind: kind, Addr: addr}
	return nil
}

// Unbind removes a named binding. If it is referenced by the currently
// compiled expression, that expression is invalidated by recompiling
// the constant 0 before the binding is removed, per spec.md's
// invalidation-on-unbind invariant. Fails with NotFound if no such
// binding exists.
func (e *Evaluator) Unbind(name string) error {
	b, ok := e.syms.Bindings[name]
	if !ok {
		return notFoundErr(name)
	}
	if b.Referenced {
		if err := e.SetExpression("0"); err != nil {
			return internalErr("invalidation recompile failed: %v", err)
		}
	}
	delete(e.syms.Bindings, name)
	return nil
}

// SetExpression compiles text against the current bindings and named
// constants and, on success, atomically replaces the installed
// expression. On any error the previously compiled expression remains
// installed and callable.
func (e *Evaluator) SetExpression(text string) error {
	items, err := parser.Parse(text, e.syms)
	if err != nil {
		return wrapParseErr(err)
	}

	prevRef := make(map[*value.Binding]bool, len(e.syms.Bindings))
	for _, b := range e.syms.Bindings {
		prevRef[b] = b.Referenced
		b.Referenced = false
	}
	restoreRef := func() {
		for b, r := range prevRef {
			b.Referenced = r
		}
	}

	prog := resolve.Resolve(items, e.syms)
	if err := resolve.Optimize(prog, e.arch, e.cfg.Verbose); err != nil {
		restoreRef()
		return internalErr("optimize: %v", err)
	}

	scratchFn := emitter.ScratchAddr(func() uintptr { return uintptr(unsafe.Pointer(&e.scratch)) })
	page, err := emitter.Emit(prog, e.arch, scratchFn, e.cfg.PageSizeHint, e.cfg.Verbose)
	if err != nil {
		restoreRef()
		return mapEmitErr(err)
	}

	// A func value is a pointer to a funcval whose first word is the
	// entry PC, so entry must be addressed through one more level of
	// indirection before the cast, not cast directly.
	entry := page.Entry()
	entryPtr := &entry
	fn := *(*evalFn)(unsafe.Pointer(&entryPtr))
	atomic.StorePointer(&e.fn, unsafe.Pointer(&fn))

	old := e.page
	e.page = page
	if old != nil {
		old.Release()
	}
	return nil
}

// Evaluate runs the currently installed expression and returns its
// result. Every call re-reads the memory behind every referenced
// binding; mutating a bound variable between calls changes the result.
func (e *Evaluator) Evaluate() float64 {
	fn := (*evalFn)(atomic.LoadPointer(&e.fn))
	return (*fn)()
}

// Close releases the executable page currently owned by e. An Evaluator
// that has been closed must not be used again.
func (e *Evaluator) Close() error {
	if e.page == nil {
		return nil
	}
	err := e.page.Release()
	e.page = nil
	return err
}

// wrapParseErr maps a parser.Error onto the root package's Error type.
// node construction errors never reach SetExpression as anything other
// than a *parser.Error, since Resolve and Optimize operate on an
// already-validated item stream.
func wrapParseErr(err error) error {
	pe, ok := err.(*parser.Error)
	if !ok {
		return internalErr("unexpected error type from parser: %v", err)
	}
	return parseErr(mapParseReason(pe.Reason), pe.Pos, "%s", parseMessage(pe))
}

func parseMessage(pe *parser.Error) string {
	if pe.Name != "" {
		return pe.Reason.String() + ": " + pe.Name
	}
	return pe.Reason.String()
}

func mapParseReason(r parser.Reason) ParseReason {
	switch r {
	case parser.UnexpectedCharacter:
		return ReasonUnexpectedCharacter
	case parser.UnexpectedEndOfExpression:
		return ReasonUnexpectedEndOfExpression
	case parser.UnknownName:
		return ReasonUnknownName
	case parser.UnbalancedParenthesis:
		return ReasonUnbalancedParenthesis
	case parser.ArityMismatch:
		return ReasonArityMismatch
	case parser.EmptyArgument:
		return ReasonEmptyArgument
	default:
		return ReasonNone
	}
}

// mapEmitErr classifies an emitter failure as OutOfMemory,
// ProtectionFailed, or InternalError. The emitter and jit packages
// return plain errors wrapping the syscall failure or the stack-depth
// violation; this is the one place those get sorted into mexce's
// error kinds.
func mapEmitErr(err error) error {
	switch {
	case errors.Is(err, jit.ErrUnsupportedPlatform), errors.Is(err, jit.ErrAlloc):
		return &Error{Kind: OutOfMemory, Pos: -1, Message: err.Error()}
	case errors.Is(err, jit.ErrSeal):
		return &Error{Kind: ProtectionFailed, Pos: -1, Message: err.Error()}
	default:
		return internalErr("emit: %v", err)
	}
}
