package zcirc

import "github.com/pkg/errors"

// Backing is the abstract byte-allocator capability the RingBuffer draws
// its chunks from. Implementations should expose whatever allocation
// primitive their environment provides (a slab pool, an mmap'd arena, a
// plain heap) under this two-method interface.
type Backing interface {
	// Alloc returns a freshly owned byte buffer of exactly n bytes, or an
	// error if the underlying allocation failed.
	Alloc(n int) ([]byte, error)
	// Free releases a buffer previously returned by Alloc. Implementations
	// that rely on garbage collection may treat this as a no-op.
	Free(buf []byte)
}

// heapBacking is the default Backing: every chunk is a plain Go slice, and
// Free is a no-op since the garbage collector reclaims it once
// unreferenced.
type heapBacking struct{}

// NewHeapBacking returns a Backing that allocates chunks with the Go
// runtime's ordinary heap allocator. This is the right choice unless the
// caller has its own memory pool to draw chunks from.
func NewHeapBacking() Backing {
	return heapBacking{}
}

func (heapBacking) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Errorf("zcirc: negative chunk size %d", n)
	}
	return make([]byte, n), nil
}

func (heapBacking) Free([]byte) {}
