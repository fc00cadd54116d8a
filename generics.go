package zcirc

import "unsafe"

// Alloc allocates a zeroed T from a, aligned to T's natural alignment.
// Unlike a plain bump arena, this can fail: the allocation is not
// guaranteed to succeed (OOM, chunk-vector exhaustion), so the error must
// be propagated.
func Alloc[T any](a *Allocator) (*T, error) {
	var zero T
	b, err := a.Alloc(int(unsafe.Sizeof(zero)), int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	if len(b) == 0 {
		return new(T), nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// AllocSlice allocates n uninitialized Ts from a. Returns a nil slice,
// nil error when n == 0.
func AllocSlice[T any](a *Allocator, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	b, err := a.Alloc(elemSize*n, int(unsafe.Alignof(zero)))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}

// FreeLeftT retires the allocation backing t as the oldest live
// allocation, recovering its original payload slice from its address and
// the natural size of T.
func FreeLeftT[T any](a *Allocator, t *T) {
	a.FreeLeft(unsafe.Slice((*byte)(unsafe.Pointer(t)), unsafe.Sizeof(*t)))
}

// FreeRightT retires the allocation backing t as the newest live
// allocation.
func FreeRightT[T any](a *Allocator, t *T) {
	a.FreeRight(unsafe.Slice((*byte)(unsafe.Pointer(t)), unsafe.Sizeof(*t)))
}
