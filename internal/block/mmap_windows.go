//go:build memalign_mmap && !memalign_cgo && windows

package block

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// strategyName identifies the block source compiled into this build.
const strategyName = "virtualalloc"

// virtualMem sources raw blocks from VirtualAlloc. MEM_RESERVE|MEM_COMMIT
// uses demand paging, so pages are only backed by physical memory once
// touched, matching anonymous mmap behavior on Unix.
type virtualMem struct{}

func (virtualMem) alloc(total uintptr) (unsafe.Pointer, any) {
	addr, err := windows.VirtualAlloc(0, total,
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, nil
	}

	return unsafe.Pointer(addr), nil //nolint:gosec // address returned by VirtualAlloc
}

func (virtualMem) free(base unsafe.Pointer, total uintptr) {
	// MEM_RELEASE frees the entire region; the size must be zero.
	_ = windows.VirtualFree(uintptr(base), 0, windows.MEM_RELEASE)
}

func osAlloc(size, alignment uintptr) (unsafe.Pointer, any) {
	return fallbackAlloc(virtualMem{}, size, alignment)
}

func osFree(ptr unsafe.Pointer, size, alignment uintptr) {
	fallbackFree(virtualMem{}, ptr, size, alignment)
}
