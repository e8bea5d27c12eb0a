package memalign

import (
	"errors"
	"fmt"

	"github.com/hupe1980/memalign/internal/block"
)

var (
	// ErrOutOfMemory is returned when the platform source or the
	// configured budget cannot satisfy an allocation.
	ErrOutOfMemory = errors.New("memalign: out of memory")
)

// ErrInvalidAlignment indicates an alignment that is not a power of two at
// least MinAlignment.
type ErrInvalidAlignment struct {
	Alignment uintptr
}

func (e *ErrInvalidAlignment) Error() string {
	return fmt.Sprintf("invalid alignment: %d (must be a power of two >= %d)", e.Alignment, block.MinAlignment)
}
