//go:build linux

package jit

import (
	"fmt"
	"syscall"
	"unsafe"
)

const hostPageSize = 4096

func roundUpToPage(n int) int {
	return ((n + hostPageSize - 1) / hostPageSize) * hostPageSize
}

// AcquirePage mmaps a private, anonymous, zero-filled region of at least
// size bytes, mapped read-write only.
func AcquirePage(size int) (*Page, error) {
	allocSize := roundUpToPage(size)
	if allocSize == 0 {
		allocSize = hostPageSize
	}

	addr, _, errno := syscall.Syscall6(
		syscall.SYS_MMAP,
		0,
		uintptr(allocSize),
		syscall.PROT_READ|syscall.PROT_WRITE,
		syscall.MAP_PRIVATE|syscall.MAP_ANONYMOUS,
		0,
		0,
	)
	if errno != 0 {
		return nil, fmt.Errorf("jit: mmap: %w: %w", ErrAlloc, errno)
	}

	return &Page{addr: addr, size: allocSize}, nil
}

// Write copies b into the page starting at byte offset off. It fails if
// the page has already been sealed, or if b would run past the end of
// the allocated region.
func (p *Page) Write(off int, b []byte) error {
	if p.sealed {
		return fmt.Errorf("jit: write to sealed page")
	}
	if off < 0 || off+len(b) > p.size {
		return fmt.Errorf("jit: write of %d bytes at offset %d exceeds page size %d", len(b), off, p.size)
	}
	dst := unsafe.Slice((*byte)(unsafe.Pointer(p.addr)), p.size)
	copy(dst[off:], b)
	return nil
}

// Seal flips the page from read-write to read-execute. After Seal
// succeeds, Write must not be called again.
func (p *Page) Seal() error {
	if p.sealed {
		return nil
	}
	_, _, errno := syscall.Syscall(
		syscall.SYS_MPROTECT,
		p.addr,
		uintptr(p.size),
		syscall.PROT_READ|syscall.PROT_EXEC,
	)
	if errno != 0 {
		return fmt.Errorf("jit: mprotect: %w: %w", ErrSeal, errno)
	}
	p.sealed = true
	return nil
}

// Release unmaps the page. It is idempotent: calling it twice, or on a
// page that failed to allocate, is a no-op.
func (p *Page) Release() error {
	if p == nil || p.addr == 0 {
		return nil
	}
	_, _, errno := syscall.Syscall(syscall.SYS_MUNMAP, p.addr, uintptr(p.size), 0)
	p.addr = 0
	if errno != 0 {
		return fmt.Errorf("jit: munmap: %w", errno)
	}
	return nil
}
