package memalign

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/memalign/internal/block"
)

// Buffer owns a single aligned block of bytes and releases it through
// Close. It is the ownership-style counterpart to the raw Alloc and Free
// pair.
type Buffer struct {
	data   []byte
	closed atomic.Bool
}

// NewBuffer allocates a buffer of size bytes starting on an alignment-byte
// boundary. A size of zero or less yields an empty buffer whose Close is a
// no-op. NewBuffer fails with ErrInvalidAlignment for a bad alignment and
// with ErrOutOfMemory when the block cannot be obtained.
func NewBuffer(size int, alignment uintptr) (*Buffer, error) {
	if !block.ValidAlignment(alignment) {
		return nil, &ErrInvalidAlignment{Alignment: alignment}
	}
	if size <= 0 {
		return &Buffer{}, nil
	}

	ptr := Alloc(size, alignment)
	if ptr == nil {
		return nil, fmt.Errorf("%w: %d bytes aligned to %d", ErrOutOfMemory, size, alignment)
	}

	return &Buffer{data: unsafe.Slice((*byte)(ptr), size)}, nil
}

// Bytes returns the aligned contents. It returns nil after Close.
func (b *Buffer) Bytes() []byte {
	if b.closed.Load() {
		return nil
	}
	return b.data
}

// Len returns the usable size in bytes, or 0 after Close.
func (b *Buffer) Len() int {
	return len(b.Bytes())
}

// Float32s returns the buffer viewed as float32 elements, Len/4 of them.
// SIMD kernels consume this view directly; the buffer alignment carries
// over to the first element.
func (b *Buffer) Float32s() []float32 {
	data := b.Bytes()
	if len(data) < 4 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&data[0])), len(data)/4) //nolint:gosec // unsafe is required for the typed view
}

// Int8s returns the buffer viewed as int8 elements, one per byte.
func (b *Buffer) Int8s() []int8 {
	data := b.Bytes()
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(&data[0])), len(data)) //nolint:gosec // unsafe is required for the typed view
}

// Close releases the block. Close is idempotent and safe for concurrent
// use; callers must ensure no goroutine touches the contents afterwards.
func (b *Buffer) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	if len(b.data) == 0 {
		return nil
	}

	Free(unsafe.Pointer(&b.data[0]))
	b.data = nil
	return nil
}
