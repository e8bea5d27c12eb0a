package block

import "unsafe"

// ptrSize is the width of the hidden word that carries the raw base address
// of a manually aligned block.
const ptrSize = unsafe.Sizeof(uintptr(0))

// rawAllocator obtains blocks of raw memory with no particular alignment
// beyond the pointer size. Implementations are build-tag selected.
type rawAllocator interface {
	// alloc returns total bytes of zeroed or platform-initialized memory.
	// The base address must be a multiple of ptrSize. The second return
	// value pins GC-managed backing memory for the lifetime of the block
	// and is nil for memory outside the Go heap. alloc returns a nil
	// pointer when the request cannot be satisfied.
	alloc(total uintptr) (unsafe.Pointer, any)

	// free releases the block at base previously returned by alloc.
	free(base unsafe.Pointer, total uintptr)
}

// totalSize returns the over-allocation that guarantees an aligned block of
// size usable bytes: one full alignment of headroom is enough to round the
// base up to a boundary and still leaves at least ptrSize bytes below the
// aligned address for the hidden base word. Reports false on overflow.
func totalSize(size, alignment uintptr) (uintptr, bool) {
	total := size + alignment
	if total < size {
		return 0, false
	}
	return total, true
}

// fallbackAlloc implements aligned allocation on top of an unaligned source.
//
// The raw base is rounded down to a multiple of alignment and advanced by
// one full alignment, so the aligned address always sits strictly above the
// base. Because the base is ptrSize-aligned, the gap below the aligned
// address is a multiple of ptrSize and holds the base word exactly.
func fallbackAlloc(raw rawAllocator, size, alignment uintptr) (unsafe.Pointer, any) {
	total, ok := totalSize(size, alignment)
	if !ok {
		return nil, nil
	}

	base, pin := raw.alloc(total)
	if base == nil {
		return nil, nil
	}

	addr := uintptr(base)
	gap := alignment - addr&(alignment-1)
	aligned := unsafe.Add(base, gap) //nolint:gosec // unsafe is required for manual alignment

	// Record the raw base immediately below the aligned address so that
	// free can recover it without auxiliary bookkeeping.
	*(*uintptr)(unsafe.Add(aligned, -int(ptrSize))) = addr //nolint:gosec

	return aligned, pin
}

// fallbackFree releases a block produced by fallbackAlloc. size and
// alignment must match the original request so the full raw extent is
// returned to the source.
func fallbackFree(raw rawAllocator, ptr unsafe.Pointer, size, alignment uintptr) {
	addr := *(*uintptr)(unsafe.Add(ptr, -int(ptrSize))) //nolint:gosec

	// The hidden word always points into the live raw block, so the
	// conversion back to a pointer cannot outlive its referent.
	base := unsafe.Pointer(addr) //nolint:gosec // recovered base of a live block

	total, _ := totalSize(size, alignment)
	raw.free(base, total)
}
