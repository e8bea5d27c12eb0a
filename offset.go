package memalign

import "unsafe"

// Offset returns the number of elements to process individually before
// processing in groups of blockSize elements continues on a block-aligned
// address. It is the peel count for loops that pair a scalar prologue with
// an aligned SIMD body:
//
//	off := memalign.Offset(&data[0], len(data), lanes)
//	scalarLoop(data[:off])
//	vectorLoop(data[off:]) // starts on a lanes*sizeof(T) boundary
//
// size is the number of addressable elements at p. The result never
// exceeds size; when the data cannot reach a block boundary by skipping
// whole elements (p is not even element-aligned), Offset returns size so
// the caller processes everything individually.
//
// A blockSize of one or less needs no adjustment and returns 0, as do a
// non-positive size and a zero-sized element type.
func Offset[T any](p *T, size, blockSize int) int {
	if size <= 0 || blockSize <= 1 {
		return 0
	}

	elem := sizeOf[T]()
	if elem == 0 {
		return 0
	}

	addr := uintptr(unsafe.Pointer(p))
	if addr%elem != 0 {
		return size
	}

	blk := uintptr(blockSize)
	off := (blk - (addr/elem)%blk) % blk
	if off > uintptr(size) {
		return size
	}

	return int(off)
}

// SliceOffset is Offset applied to the first element of s. An empty slice
// needs no adjustment.
func SliceOffset[T any](s []T, blockSize int) int {
	if len(s) == 0 {
		return 0
	}
	return Offset(&s[0], len(s), blockSize)
}
