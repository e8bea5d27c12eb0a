//go:build !memalign_mmap && !memalign_cgo

package block

import (
	"math"
	"unsafe"
)

// strategyName identifies the block source compiled into this build.
const strategyName = "heap"

// goHeap sources raw blocks from the garbage-collected heap.
//
// The backing array is a []uint64 rather than a []byte: the runtime's tiny
// allocator may return byte slices with no better than single-byte
// alignment, while word slices are always placed on at least pointer-sized
// boundaries, which the manual-alignment fallback depends on.
type goHeap struct{}

func (goHeap) alloc(total uintptr) (unsafe.Pointer, any) {
	// One word of slack instead of exact rounding keeps the arithmetic
	// overflow-free for any total.
	words := total/8 + 1
	if words > uintptr(math.MaxInt) {
		return nil, nil
	}

	buf := make([]uint64, words)
	return unsafe.Pointer(&buf[0]), buf
}

func (goHeap) free(base unsafe.Pointer, total uintptr) {
	// Nothing to do. The tracker drops the pinned backing slice and the
	// garbage collector reclaims it once no view of the block remains.
}

func osAlloc(size, alignment uintptr) (unsafe.Pointer, any) {
	return fallbackAlloc(goHeap{}, size, alignment)
}

func osFree(ptr unsafe.Pointer, size, alignment uintptr) {
	fallbackFree(goHeap{}, ptr, size, alignment)
}
