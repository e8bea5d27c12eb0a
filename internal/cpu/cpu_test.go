package cpu

import (
	"fmt"
	"os"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMain runs before all tests and prints ISA diagnostic information.
// This helps CI identify which alignment the host actually selects.
func TestMain(m *testing.M) {
	fmt.Printf("=== CPU Diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("MEMALIGN_SIMD=%q\n", os.Getenv("MEMALIGN_SIMD"))
	fmt.Printf("Active ISA: %s\n", ActiveISA())
	fmt.Printf("Override: %v\n", IsOverridden())
	fmt.Printf("Recommended alignment: %d\n", RecommendedAlignment())
	fmt.Printf("Cache line: %d\n", CacheLine())
	fmt.Printf("=======================\n\n")

	os.Exit(m.Run())
}

func TestISAString(t *testing.T) {
	tests := []struct {
		isa  ISA
		want string
	}{
		{Generic, "generic"},
		{NEON, "neon"},
		{SVE2, "sve2"},
		{AVX2, "avx2"},
		{AVX512, "avx512"},
		{ISA(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.isa.String())
		})
	}
}

func TestParseISA(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		for _, isa := range []ISA{Generic, NEON, SVE2, AVX2, AVX512} {
			parsed, ok := ParseISA(isa.String())
			assert.True(t, ok, "ParseISA(%q)", isa.String())
			assert.Equal(t, isa, parsed)
		}
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		parsed, ok := ParseISA("  AVX2 ")
		assert.True(t, ok)
		assert.Equal(t, AVX2, parsed)
	})

	t.Run("unknown value", func(t *testing.T) {
		parsed, ok := ParseISA("mmx")
		assert.False(t, ok)
		assert.Equal(t, Generic, parsed)
	})
}

func TestVectorBytes(t *testing.T) {
	tests := []struct {
		isa  ISA
		want uintptr
	}{
		{Generic, 16},
		{NEON, 16},
		{SVE2, 64},
		{AVX2, 32},
		{AVX512, 64},
	}

	for _, tt := range tests {
		t.Run(tt.isa.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.isa.VectorBytes())
		})
	}
}

func TestActiveISAIsAvailable(t *testing.T) {
	// Whatever init selected must be backed by the host CPU.
	assert.True(t, isISAAvailable(ActiveISA()))
}

func TestRecommendedAlignment(t *testing.T) {
	a := RecommendedAlignment()
	assert.GreaterOrEqual(t, a, uintptr(16))
	assert.LessOrEqual(t, a, uintptr(64))
	assert.Zero(t, a&(a-1), "alignment must be a power of two")
}

func TestCacheLine(t *testing.T) {
	cl := CacheLine()
	assert.GreaterOrEqual(t, cl, uintptr(16))
	assert.Zero(t, cl&(cl-1), "cache line must be a power of two")
}
