package memalign

import (
	"unsafe"

	"github.com/hupe1980/memalign/internal/cpu"
)

// Integer covers the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Round returns n rounded up to the next multiple of alignment, which must
// be a power of two. n itself is returned when already aligned.
func Round[I Integer](n, alignment I) I {
	return (n + alignment - 1) &^ (alignment - 1)
}

// IsPow2 reports whether n is a positive power of two.
func IsPow2[I Integer](n I) bool {
	return n > 0 && n&(n-1) == 0
}

// IsAligned reports whether p sits on a multiple of alignment, which must
// be a power of two.
func IsAligned(p unsafe.Pointer, alignment uintptr) bool {
	return uintptr(p)&(alignment-1) == 0
}

// RecommendedAlignment returns the boundary that keeps vector loads of the
// widest SIMD unit on this CPU aligned: 64 bytes on AVX-512 or SVE2
// hardware, 32 on AVX2, 16 otherwise. The MEMALIGN_SIMD environment
// variable overrides detection.
func RecommendedAlignment() uintptr {
	return cpu.RecommendedAlignment()
}

// CacheLine returns the size of a data cache line in bytes. Aligning
// concurrently written structures to it avoids false sharing.
func CacheLine() uintptr {
	return cpu.CacheLine()
}

// ActiveISA names the SIMD instruction set RecommendedAlignment is based
// on, such as "avx2" or "neon".
func ActiveISA() string {
	return cpu.ActiveISA().String()
}
