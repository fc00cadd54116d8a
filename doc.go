// Package zcirc implements a growable circular-buffer allocator: variable
// size allocations served in FIFO-like order, freed from either the oldest
// or the newest live edge, backed by a sequence of non-contiguous,
// monotonically appended memory chunks.
//
// # Overview
//
// Unlike a fixed-size ring buffer, the backing storage grows on demand;
// unlike an arena, allocations can be reclaimed without waiting for bulk
// teardown; unlike a general-purpose heap, only the leading or trailing
// edge of the live region is ever reclaimed — there is no interior free.
// This makes it a good fit for:
//
//   - Sliding-window buffers (decode/encode pipelines, protocol framing)
//   - Producer/consumer queues where items are retired in arrival order
//   - LIFO scratch stacks that still want bounded backing growth
//
// # Basic Usage
//
//	a := zcirc.New(zcirc.NewHeapBacking(), 0) // default initial chunk size
//	defer a.Release()
//
//	buf1, err := a.Alloc(4, 1)
//	buf2, err := a.Alloc(12, 1)
//
//	// ... use buf1, buf2 ...
//
//	a.FreeLeft(buf1) // retire the oldest live allocation
//	a.FreeRight(buf2) // retire the newest live allocation
//
// # Allocation Order
//
// Callers must free in strict FIFO-or-LIFO edge order: FreeLeft always
// targets the current oldest live allocation (or a newer one, freeing
// everything older in one call), and FreeRight always targets the current
// newest (or an older one, freeing everything newer in one call). Freeing
// an interior allocation is a programmer error and is not detected.
//
// # Thread Safety
//
// Allocator is not safe for concurrent use. There is no locking anywhere in
// this package: wrapping an Allocator in a mutex defeats the single-threaded
// performance model this allocator targets. Callers needing concurrent
// access must serialize it themselves, typically with one Allocator per
// goroutine or a single owning goroutine that brokers requests.
//
// # Memory Layout
//
// Backing storage grows as a sequence of chunks (geometric growth: each new
// chunk is sized to at least twice the larger of the last chunk's size and
// the request that forced growth). The live region is logically circular:
// it lives in up to three chunk-vector spans (left, right, overflow) that
// never overlap. See Geometry for introspecting which of the four valid
// topologies currently holds.
//
// # Metrics and Monitoring
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//	fmt.Printf("Live bytes (incl. trailers): %d\n", m.SizeInUse)
//	fmt.Printf("Geometry: %s\n", m.Geometry)
package zcirc
