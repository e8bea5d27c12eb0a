package memalign

import (
	"unsafe"

	"github.com/hupe1980/memalign/internal/block"
)

// MinAlignment is the smallest accepted alignment, one machine word. Below
// that there is no room for the bookkeeping the manual-alignment sources
// keep directly under the aligned address.
const MinAlignment = block.MinAlignment

// Alloc returns a pointer to a block of at least size bytes whose address
// is a multiple of alignment.
//
// It returns nil when size is zero or negative, and when the platform
// source or the budget denies the request. An alignment that is not a
// power of two at least MinAlignment is a caller bug and panics; use
// NewBuffer or NewAllocator for validated, error-returning entry points.
//
// The memory is not guaranteed to be zeroed and must not hold Go pointers.
// Every non-nil result must be released with Free exactly once.
func Alloc(size int, alignment uintptr) unsafe.Pointer {
	ptr := block.Alloc(size, alignment)
	if size > 0 {
		traceAlloc(ptr, size, alignment)
	}
	return ptr
}

// Free releases a block returned by Alloc. Freeing nil is a no-op. Freeing
// any other pointer twice, or a pointer that was never returned by Alloc,
// panics.
func Free(ptr unsafe.Pointer) {
	if ptr != nil {
		traceFree(ptr)
	}
	block.Free(ptr)
}

// Stats is a point-in-time snapshot of allocator activity.
type Stats struct {
	// OutstandingBytes is the total requested size of live blocks.
	OutstandingBytes int64
	// OutstandingBlocks is the number of live blocks.
	OutstandingBlocks int64
	// TotalAllocs counts successful allocations.
	TotalAllocs int64
	// TotalFrees counts completed frees.
	TotalFrees int64
	// FailedAllocs counts requests denied by the budget or the platform.
	FailedAllocs int64
}

// ReadStats returns a snapshot of the allocator counters. The fields are
// read independently, so a snapshot taken during concurrent activity is
// approximate.
func ReadStats() Stats {
	s := block.ReadStats()
	return Stats{
		OutstandingBytes:  s.OutstandingBytes,
		OutstandingBlocks: s.OutstandingBlocks,
		TotalAllocs:       s.TotalAllocs,
		TotalFrees:        s.TotalFrees,
		FailedAllocs:      s.FailedAllocs,
	}
}

// SetLimit caps the total requested bytes of live blocks. Allocations that
// would exceed the cap fail instead of blocking. A limit of zero or less
// removes the cap.
//
// The budget covers allocations made after the call; SetLimit panics while
// blocks are outstanding so its accounting cannot drift.
func SetLimit(limitBytes int64) {
	block.SetLimit(limitBytes)
}

// Limit returns the configured budget in bytes, or 0 when uncapped.
func Limit() int64 {
	return block.Limit()
}

// Strategy identifies the block source compiled into this build: "heap",
// "mmap", "virtualalloc" or "libc".
func Strategy() string {
	return block.StrategyName()
}

// sizeOf returns the size of T.
func sizeOf[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}
