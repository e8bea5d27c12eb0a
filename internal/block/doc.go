// Package block obtains and releases aligned memory blocks from the
// platform, one block per request.
//
// # Overview
//
// Alloc returns a pointer whose address is a multiple of the requested
// power-of-two alignment. Blocks are independent: each one is acquired from
// the platform source on Alloc and returned on Free, with no pooling or
// reuse in between. SIMD kernels rely on the alignment guarantee to use
// aligned vector loads and stores.
//
// # Block Sources
//
// The source of raw memory is selected at build time:
//
//   - default: Go heap. Raw word slices are over-allocated and manually
//     aligned; the tracker pins the backing array until Free.
//   - memalign_mmap: anonymous private mappings via mmap(2) on Unix or
//     VirtualAlloc on Windows. Blocks live outside the Go heap.
//   - memalign_cgo: posix_memalign(3)/free(3) from the C allocator
//     (Unix only, requires cgo).
//
// Exactly one source is compiled into a build. StrategyName reports which.
//
// # Manual Alignment
//
// Sources that return memory with no particular alignment are wrapped by a
// fallback that over-allocates by one full alignment, rounds the base up to
// the next boundary, and records the raw base in the word immediately below
// the aligned address. Free reads that hidden word back to release the
// original block. The C allocator source aligns natively and bypasses the
// fallback.
//
// # Safety
//
// Every live block is tracked in a concurrent map keyed by its aligned
// address. Freeing nil is a no-op; freeing an address that is not live
// (a double free or a pointer from another allocator) panics rather than
// corrupting the source's bookkeeping. All entry points are safe for
// concurrent use and never block.
package block
