package memalign_test

import (
	"fmt"

	"github.com/hupe1980/memalign"
)

func ExampleAlloc() {
	ptr := memalign.Alloc(1024, 64)
	defer memalign.Free(ptr)

	fmt.Println(memalign.IsAligned(ptr, 64))
	// Output: true
}

func ExampleNewAllocator() {
	alloc, err := memalign.NewAllocator[float32](32)
	if err != nil {
		panic(err)
	}

	s, err := alloc.Allocate(8)
	if err != nil {
		panic(err)
	}
	defer alloc.Deallocate(s)

	for i := range s {
		alloc.Construct(&s[i], float32(i))
	}

	fmt.Println(len(s), s[3])
	// Output: 8 3
}

func ExampleNewBuffer() {
	buf, err := memalign.NewBuffer(256, memalign.RecommendedAlignment())
	if err != nil {
		panic(err)
	}

	fmt.Println(buf.Len())

	if err := buf.Close(); err != nil {
		panic(err)
	}
	fmt.Println(buf.Len())
	// Output:
	// 256
	// 0
}

func ExampleSliceOffset() {
	buf, err := memalign.NewBuffer(4096, 64)
	if err != nil {
		panic(err)
	}
	defer buf.Close()

	data := buf.Float32s()

	// 16 float32 lanes span exactly 64 bytes, so an aligned buffer needs
	// no scalar prologue.
	fmt.Println(memalign.SliceOffset(data, 16))
	// Output: 0
}

func ExampleRound() {
	fmt.Println(memalign.Round(100, 64))
	fmt.Println(memalign.Round(128, 64))
	// Output:
	// 128
	// 128
}
