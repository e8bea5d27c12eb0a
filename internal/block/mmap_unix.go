//go:build memalign_mmap && !memalign_cgo && unix

package block

import (
	"math"
	"unsafe"

	"golang.org/x/sys/unix"
)

// strategyName identifies the block source compiled into this build.
const strategyName = "mmap"

// anonMap sources raw blocks from anonymous private mappings. Each block
// occupies its own page range entirely outside the Go heap, so the garbage
// collector never scans or moves it.
type anonMap struct{}

func (anonMap) alloc(total uintptr) (unsafe.Pointer, any) {
	if total > uintptr(math.MaxInt) {
		return nil, nil
	}

	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_ANON | unix.MAP_PRIVATE

	data, err := unix.Mmap(-1, 0, int(total), prot, flags)
	if err != nil {
		return nil, nil
	}

	return unsafe.Pointer(&data[0]), nil
}

func (anonMap) free(base unsafe.Pointer, total uintptr) {
	// Rebuild the original slice header; the kernel unmaps whole pages.
	data := unsafe.Slice((*byte)(base), total) //nolint:gosec // unsafe is required to address the mapping
	_ = unix.Munmap(data)
}

func osAlloc(size, alignment uintptr) (unsafe.Pointer, any) {
	return fallbackAlloc(anonMap{}, size, alignment)
}

func osFree(ptr unsafe.Pointer, size, alignment uintptr) {
	fallbackFree(anonMap{}, ptr, size, alignment)
}
