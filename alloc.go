package zcirc

import (
	"unsafe"

	"github.com/pkg/errors"
)

// errInvalidChunkIndex is raised (via panic, see FreeLeft/FreeRight) when
// a trailer decodes to a chunk index outside the current chunk vector —
// a symptom of a corrupted or foreign pointer, not a condition this
// allocator is required to fully diagnose.
var errInvalidChunkIndex = errors.New("zcirc: trailer chunk index out of range")

// Allocator is the public facade: it packs alignment and back-reference
// metadata adjacent to each payload so FreeLeft/FreeRight can recover the
// owning chunk from a bare payload slice, and delegates the actual
// bump/reclaim geometry to the ringBuffer underneath.
//
// Allocator is not safe for concurrent use; see the package doc.
type Allocator struct {
	ring     *ringBuffer
	released bool
}

// New creates an Allocator drawing its chunks from backing. initialSeed
// sizes the first chunk (doubled against the first request); a value <= 0
// selects a reasonable default.
func New(backing Backing, initialSeed int) *Allocator {
	return &Allocator{ring: newRingBuffer(backing, initialSeed)}
}

func (a *Allocator) panicIfReleased() {
	if a.released {
		panic("zcirc: use after Release()")
	}
}

// Alloc returns an n-byte slice aligned to align, a power of two. It
// returns an error if the backing allocator fails or the 64-chunk vector
// cap is reached; n == 0 always succeeds with a zero-length slice and
// touches no allocator state.
func (a *Allocator) Alloc(n, align int) ([]byte, error) {
	a.panicIfReleased()
	if n < 0 {
		panic("zcirc: negative allocation size")
	}
	if align <= 0 || align&(align-1) != 0 {
		panic("zcirc: alignment must be a positive power of two")
	}
	if n == 0 {
		return []byte{}, nil
	}

	envelope := n + trailerSize + (align - 1) + (trailerAlign - 1)
	raw, chunkIdx, err := a.ring.alloc(envelope)
	if err != nil {
		return nil, err
	}

	rawAddr := uintptr(unsafe.Pointer(&raw[0]))
	alignedAddr := alignUp(rawAddr, uintptr(align))
	leadingPad := int(alignedAddr - rawAddr)

	payload := raw[leadingPad : leadingPad+n]
	trailerAddr := trailerAddrFor(alignedAddr, n)
	writeTrailer(raw, trailerAddr, trailer{
		startUnused: uint32(leadingPad),
		totalUnused: uint32(len(raw) - n),
		chunkIndex:  uint8(chunkIdx),
	})

	return payload, nil
}

// decodeTrailer recovers the raw buffer address/length and owning chunk
// for a live payload.
func (a *Allocator) decodeTrailer(p []byte) (rawAddr uintptr, rawLen, chunkIdx int) {
	t := readTrailer(p)
	payloadAddr := uintptr(unsafe.Pointer(&p[0]))
	rawAddr = payloadAddr - uintptr(t.startUnused)
	rawLen = len(p) + int(t.totalUnused)
	chunkIdx = int(t.chunkIndex)
	if chunkIdx < 0 || chunkIdx >= len(a.ring.chunks) {
		panic(errInvalidChunkIndex)
	}
	return rawAddr, rawLen, chunkIdx
}

// FreeLeft retires p, the current oldest live allocation (or a newer one,
// which also retires everything older). Freeing anything else is
// undefined behavior and is not detected.
func (a *Allocator) FreeLeft(p []byte) {
	a.panicIfReleased()
	if len(p) == 0 {
		return
	}
	rawAddr, rawLen, chunkIdx := a.decodeTrailer(p)
	chunkAddr := uintptr(unsafe.Pointer(&a.ring.chunks[chunkIdx].data[0]))
	firstKept := int(rawAddr-chunkAddr) + rawLen
	a.ring.freeLeft(chunkIdx, firstKept)
}

// FreeRight retires p, the current newest live allocation (or an older
// one, which also retires everything newer). Freeing anything else is
// undefined behavior and is not detected.
func (a *Allocator) FreeRight(p []byte) {
	a.panicIfReleased()
	if len(p) == 0 {
		return
	}
	rawAddr, _, chunkIdx := a.decodeTrailer(p)
	chunkAddr := uintptr(unsafe.Pointer(&a.ring.chunks[chunkIdx].data[0]))
	firstRemoved := int(rawAddr - chunkAddr)
	a.ring.freeRight(chunkIdx, firstRemoved)
}

// Count returns the total live bytes across every chunk, including
// per-allocation trailers and padding.
func (a *Allocator) Count() int {
	a.panicIfReleased()
	return a.ring.count()
}

// Release returns every chunk's backing buffer to the Backing and makes
// the Allocator unusable. It does not run destructors on live payloads —
// they are raw bytes.
func (a *Allocator) Release() {
	if a.released {
		return
	}
	for i := range a.ring.chunks {
		a.ring.backing.Free(a.ring.chunks[i].data)
	}
	a.ring.chunks = nil
	a.ring.left, a.ring.right, a.ring.overflow = nil, nil, nil
	a.released = true
}
