// Package jit allocates small, single-owner executable memory pages: an
// evaluator's compiled expression lives in one of these for as long as
// it is installed. It is a narrowed descendant of the teacher's
// HotReloadManager/CodePage - the mmap/munmap plumbing is the same
// shape, but there is no hot-reload bookkeeping here, no grace period,
// and the write/execute split is enforced rather than optional.
package jit

import "errors"

// ErrUnsupportedPlatform is returned by AcquirePage on any platform
// without a real mmap-backed implementation.
var ErrUnsupportedPlatform = errors.New("jit: executable pages not supported on this platform")

// ErrAlloc wraps a host denial of an executable-page allocation (mmap
// failure). ErrSeal wraps a host denial of the read-write to
// read-execute transition (mprotect failure). Both are returned wrapped
// via %w so callers can match them with errors.Is.
var (
	ErrAlloc = errors.New("jit: page allocation denied")
	ErrSeal  = errors.New("jit: page protection change denied")
)

// Page is one owned region of memory, writable until Seal and
// read-execute afterward. A Page is acquired writable-only
// (PROT_READ|PROT_WRITE, never PROT_EXEC) so that no window exists
// during which the region is simultaneously writable and executable.
type Page struct {
	addr   uintptr
	size   int
	sealed bool
}

// Entry returns the page's base address, valid as a callable function
// pointer only after Seal has succeeded.
func (p *Page) Entry() uintptr {
	return p.addr
}

// Size reports the page's true allocated size, which may be larger than
// what was requested (rounded up to the host page size).
func (p *Page) Size() int {
	return p.size
}
