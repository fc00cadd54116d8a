package zcirc_test

import (
	"fmt"

	"github.com/hmusgrave/zcirc"
)

// Example demonstrates the basic push/pop-oldest/pop-newest workflow.
func Example() {
	a := zcirc.New(zcirc.NewHeapBacking(), 64)
	defer a.Release()

	buf1, err := a.Alloc(4, 1)
	if err != nil {
		panic(err)
	}
	buf2, err := a.Alloc(12, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(buf1), len(buf2))

	a.FreeLeft(buf1)  // retire the oldest live allocation
	a.FreeRight(buf2) // retire the newest live allocation
	fmt.Println(a.Count())

	// Output:
	// 4 12
	// 0
}

// ExampleAllocator_Geometry demonstrates how the reported topology tracks
// the live region as it drains.
func ExampleAllocator_Geometry() {
	a := zcirc.New(zcirc.NewHeapBacking(), 64)
	defer a.Release()

	b, err := a.Alloc(8, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Geometry())

	a.FreeLeft(b)
	fmt.Println(a.Geometry())

	// Output:
	// linear
	// empty-linear
}

// ExampleAllocator_Metrics demonstrates capacity-planning introspection.
func ExampleAllocator_Metrics() {
	a := zcirc.New(zcirc.NewHeapBacking(), 64)
	defer a.Release()

	if _, err := a.Alloc(16, 8); err != nil {
		panic(err)
	}
	m := a.Metrics()
	fmt.Printf("Chunks: %d\n", m.NumChunks)

	// Output:
	// Chunks: 1
}

// ExampleAlloc demonstrates the typed single-value convenience wrapper.
func ExampleAlloc() {
	a := zcirc.New(zcirc.NewHeapBacking(), 64)
	defer a.Release()

	p, err := zcirc.Alloc[int64](a)
	if err != nil {
		panic(err)
	}
	*p = 42
	fmt.Println(*p)

	// Output:
	// 42
}

// ExampleAllocSlice demonstrates the typed slice convenience wrapper.
func ExampleAllocSlice() {
	a := zcirc.New(zcirc.NewHeapBacking(), 64)
	defer a.Release()

	s, err := zcirc.AllocSlice[int32](a, 4)
	if err != nil {
		panic(err)
	}
	for i := range s {
		s[i] = int32(i)
	}
	fmt.Println(s)

	// Output:
	// [0 1 2 3]
}
