package block

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/memalign/internal/budget"
	"github.com/hupe1980/memalign/internal/conv"
)

// MinAlignment is the smallest accepted alignment. One pointer-sized slot
// must fit between the raw base and the aligned address to hold the hidden
// base word of manually aligned blocks.
const MinAlignment = unsafe.Sizeof(uintptr(0))

// ValidAlignment reports whether alignment is a power of two no smaller
// than MinAlignment.
func ValidAlignment(alignment uintptr) bool {
	return alignment >= MinAlignment && alignment&(alignment-1) == 0
}

// Alloc returns a pointer to a block of at least size bytes whose address
// is a multiple of alignment. It returns nil when size is not positive or
// when the platform source or the budget denies the request. An alignment
// that is not a power of two at least MinAlignment is a caller bug and
// panics.
func Alloc(size int, alignment uintptr) unsafe.Pointer {
	if !ValidAlignment(alignment) {
		panic(fmt.Sprintf("memalign: alignment %d must be a power of two >= %d", alignment, MinAlignment))
	}
	if size <= 0 {
		return nil
	}

	if !blocks.acquire(size) {
		blocks.failedAllocs.Add(1)
		return nil
	}

	usize, _ := conv.IntToUintptr(size) // Safe: size > 0 checked above
	ptr, pin := osAlloc(usize, alignment)
	if ptr == nil {
		blocks.release(size)
		blocks.failedAllocs.Add(1)
		return nil
	}

	blocks.add(uintptr(ptr), blockInfo{size: size, alignment: alignment, pin: pin})
	return ptr
}

// Free releases a block returned by Alloc. Freeing nil is a no-op. Freeing
// an address that is not live, either a double free or a pointer that was
// never allocated here, panics.
func Free(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}

	info, ok := blocks.remove(uintptr(ptr))
	if !ok {
		panic(fmt.Sprintf("memalign: free of untracked pointer %#x (double free or foreign pointer)", uintptr(ptr)))
	}

	usize, _ := conv.IntToUintptr(info.size) // Safe: positive when tracked
	osFree(ptr, usize, info.alignment)

	// Reading info after osFree keeps the pinned backing memory reachable
	// for the duration of the release.
	blocks.release(info.size)
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
	return Stats{
		OutstandingBytes:  blocks.outstandingBytes.Load(),
		OutstandingBlocks: blocks.outstandingBlocks.Load(),
		TotalAllocs:       blocks.totalAllocs.Load(),
		TotalFrees:        blocks.totalFrees.Load(),
		FailedAllocs:      blocks.failedAllocs.Load(),
	}
}

// SetLimit caps the total requested bytes of live blocks. A limit of zero
// or less removes the cap. The budget applies to allocations made after the
// call; to keep its accounting consistent, SetLimit panics while blocks are
// outstanding.
func SetLimit(limitBytes int64) {
	if blocks.outstandingBlocks.Load() != 0 {
		panic("memalign: SetLimit requires all blocks to be freed first")
	}

	if limitBytes <= 0 {
		blocks.limiter.Store(nil)
		return
	}
	blocks.limiter.Store(budget.NewController(limitBytes))
}

// Limit returns the configured budget in bytes, or 0 when uncapped.
func Limit() int64 {
	return blocks.limiter.Load().Limit()
}

// StrategyName identifies the platform block source selected at build time:
// "heap", "mmap", "virtualalloc" or "libc".
func StrategyName() string {
	return strategyName
}
