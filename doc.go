// Package memalign provides aligned memory allocation for SIMD and
// cache-sensitive workloads.
//
// The Go runtime aligns allocations to at most 16 bytes, while AVX2 wants
// 32-byte and AVX-512 wants 64-byte boundaries for aligned vector loads.
// Memalign hands out blocks on any power-of-two boundary and releases them
// explicitly, one block per request, with no pooling in between.
//
// # Quick Start
//
//	// Raw bytes on a 64-byte boundary.
//	ptr := memalign.Alloc(1024, 64)
//	defer memalign.Free(ptr)
//
//	// Owned buffer with io.Closer semantics.
//	buf, _ := memalign.NewBuffer(4096, memalign.RecommendedAlignment())
//	defer buf.Close()
//	vectors := buf.Float32s()
//
//	// Typed slices through an allocator.
//	alloc, _ := memalign.NewAllocator[float32](32)
//	s, _ := alloc.Allocate(256)
//	defer alloc.Deallocate(s)
//
// # Block Sources
//
// Where blocks come from is a build-time choice:
//
//   - default: the Go heap, manually aligned. Works everywhere, no cgo.
//   - -tags memalign_mmap: anonymous mappings (mmap on Unix, VirtualAlloc
//     on Windows). Blocks live outside the garbage-collected heap.
//   - -tags memalign_cgo: posix_memalign/free from the C allocator
//     (Unix only, requires cgo).
//
// Strategy reports the compiled-in source. All sources provide the same
// semantics; only the origin of the pages differs.
//
// # Choosing an Alignment
//
// RecommendedAlignment inspects the CPU at startup and returns the boundary
// that keeps the widest available vector loads aligned (64 on AVX-512 or
// SVE2 hardware, 32 on AVX2, 16 otherwise). CacheLine returns the boundary
// that avoids false sharing. Any power of two at least MinAlignment is
// accepted.
//
// # Safety
//
// Allocated memory is untyped: the garbage collector does not scan it.
// Store only pointer-free data (numbers, bools, fixed arrays of them) in
// allocated blocks. Contents are not guaranteed to be zeroed; the heap and
// mapping sources happen to return zeroed pages, the C allocator does not.
//
// Every block must be freed exactly once. Freeing nil is a no-op; a double
// free or a pointer that did not come from this package panics rather than
// corrupting the underlying source. All functions are safe for concurrent
// use and never block.
//
// # Budget
//
// SetLimit caps the total bytes of live blocks. Allocations beyond the cap
// fail (nil from Alloc, ErrOutOfMemory from the typed interfaces) instead
// of blocking. ReadStats exposes live and cumulative counters.
//
// # Tracing
//
// Setting MEMALIGN_TRACE=1 in the environment, or installing a logger with
// SetTraceLogger, records every allocation and free through log/slog.
package memalign
