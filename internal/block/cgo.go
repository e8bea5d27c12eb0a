//go:build memalign_cgo && unix

package block

/*
#include <stdlib.h>
*/
import "C"

import "unsafe"

// strategyName identifies the block source compiled into this build.
const strategyName = "libc"

// osAlloc obtains natively aligned memory from the C allocator, so the
// manual-alignment fallback and its hidden base word are not needed.
// posix_memalign reports failure through its return code and requires the
// alignment to be a power-of-two multiple of the pointer size, which the
// public entry points already guarantee.
func osAlloc(size, alignment uintptr) (unsafe.Pointer, any) {
	var ptr unsafe.Pointer
	if rc := C.posix_memalign(&ptr, C.size_t(alignment), C.size_t(size)); rc != 0 {
		return nil, nil
	}

	return ptr, nil
}

func osFree(ptr unsafe.Pointer, size, alignment uintptr) {
	C.free(ptr)
}
