package memalign

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/memalign/internal/block"
	"github.com/hupe1980/memalign/internal/conv"
)

// Allocator hands out []T slices whose backing arrays start on a fixed
// power-of-two boundary. It is a value type: allocators with the same
// alignment are interchangeable and compare equal, and any of them may
// deallocate slices produced by the others.
//
// T must be pointer-free (numbers, bools, arrays of them): allocated
// memory is invisible to the garbage collector. Elements are not zeroed;
// use Construct to initialize them.
//
// The zero value is not usable; obtain allocators from NewAllocator.
type Allocator[T any] struct {
	alignment uintptr
}

// NewAllocator returns an allocator placing slices on alignment-byte
// boundaries. The alignment must be a power of two at least MinAlignment.
func NewAllocator[T any](alignment uintptr) (Allocator[T], error) {
	if !block.ValidAlignment(alignment) {
		return Allocator[T]{}, &ErrInvalidAlignment{Alignment: alignment}
	}
	return Allocator[T]{alignment: alignment}, nil
}

// Alignment returns the boundary in bytes this allocator guarantees.
func (a Allocator[T]) Alignment() uintptr {
	return a.alignment
}

// Allocate returns a slice of n elements backed by an aligned block.
// Allocate(0) returns nil with no error. It fails with ErrOutOfMemory when
// n is negative, exceeds MaxSize, or the block cannot be obtained.
func (a Allocator[T]) Allocate(n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: %d elements", ErrOutOfMemory, n)
	}

	elem := sizeOf[T]()
	if elem == 0 {
		// Zero-sized elements occupy no memory and need no alignment.
		return make([]T, n), nil
	}

	if uintptr(n) > ^uintptr(0)/elem {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrOutOfMemory, n, elem)
	}
	byteSize, err := conv.UintptrToInt(uintptr(n) * elem)
	if err != nil {
		return nil, fmt.Errorf("%w: %d elements of %d bytes", ErrOutOfMemory, n, elem)
	}

	ptr := Alloc(byteSize, a.alignment)
	if ptr == nil {
		return nil, fmt.Errorf("%w: %d bytes aligned to %d", ErrOutOfMemory, byteSize, a.alignment)
	}

	return unsafe.Slice((*T)(ptr), n), nil
}

// Deallocate releases a slice obtained from Allocate. The slice must be
// exactly the one returned, not a subslice. Deallocating nil or an empty
// slice is a no-op. Any allocator with the same alignment may deallocate
// the slice, regardless of its element type.
func (a Allocator[T]) Deallocate(s []T) {
	if len(s) == 0 || sizeOf[T]() == 0 {
		return
	}
	Free(unsafe.Pointer(&s[0]))
}

// MaxSize returns the largest element count a single Allocate can request.
func (a Allocator[T]) MaxSize() int {
	elem := sizeOf[T]()
	if elem == 0 {
		return math.MaxInt
	}

	elems := ^uintptr(0) / elem
	if elems > uintptr(math.MaxInt) {
		return math.MaxInt
	}
	return int(elems)
}

// Construct stores v into the element at p. Allocated memory starts out
// raw; Construct gives an element a defined value.
func (a Allocator[T]) Construct(p *T, v T) {
	*p = v
}

// Destroy resets the element at p to the zero value, clearing stale data
// before the block is reused or released.
func (a Allocator[T]) Destroy(p *T) {
	var zero T
	*p = zero
}

// Address returns the address of the element p refers to. In Go this is
// the identity; it exists for parity with allocator interfaces that
// abstract over pointer representations.
func (a Allocator[T]) Address(p *T) *T {
	return p
}

// Equal reports whether two allocators are interchangeable: slices from
// one may be deallocated by the other. Allocators are stateless, so only
// the alignment matters, even across element types.
func Equal[T, U any](a Allocator[T], b Allocator[U]) bool {
	return a.alignment == b.alignment
}

// Rebind converts an allocator for one element type into an allocator for
// another with the same alignment:
//
//	floats, _ := memalign.NewAllocator[float32](64)
//	bytes := memalign.Rebind[byte](floats)
func Rebind[U, T any](a Allocator[T]) Allocator[U] {
	return Allocator[U]{alignment: a.alignment}
}
