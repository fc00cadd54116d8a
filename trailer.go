package zcirc

import "unsafe"

// trailerAlign is the alignment of the trailer's first field (start_unused,
// a u32).
const trailerAlign = 4

// trailerSize is the packed size of the trailer: u32 + u32 + u8, with no
// compiler-inserted padding. A Go struct of these three fields would round
// up to 12 bytes (aligned to its largest field); this module writes the
// fields individually via unsafe.Pointer arithmetic instead, to keep the
// bit-exact 9-byte layout.
const trailerSize = 4 + 4 + 1

// alignUp rounds addr up to the nearest multiple of align, a power of two.
func alignUp(addr uintptr, align uintptr) uintptr {
	return (addr + align - 1) &^ (align - 1)
}

// trailer is the decoded form of a payload trailer.
type trailer struct {
	startUnused uint32
	totalUnused uint32
	chunkIndex  uint8
}

// writeTrailer packs a trailer at trailerAddr, the absolute address of its
// first byte, into the given raw buffer. trailerAddr must fall within raw.
func writeTrailer(raw []byte, trailerAddr uintptr, t trailer) {
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := trailerAddr - base
	p := unsafe.Pointer(&raw[off])
	*(*uint32)(p) = t.startUnused
	*(*uint32)(unsafe.Add(p, 4)) = t.totalUnused
	*(*uint8)(unsafe.Add(p, 8)) = t.chunkIndex
}

// readTrailer locates and decodes the trailer belonging to a live payload,
// purely from the payload's address and length.
func readTrailer(payload []byte) trailer {
	// Callers only invoke this for non-empty payloads; FreeLeft/FreeRight
	// treat a zero-length payload as a no-op before reaching here.
	base := unsafe.Pointer(&payload[0])
	payloadAddr := uintptr(base)
	trailerAddr := alignUp(payloadAddr+uintptr(len(payload)), trailerAlign)
	p := unsafe.Add(base, trailerAddr-payloadAddr)
	return trailer{
		startUnused: *(*uint32)(p),
		totalUnused: *(*uint32)(unsafe.Add(p, 4)),
		chunkIndex:  *(*uint8)(unsafe.Add(p, 8)),
	}
}

// trailerAddrFor computes the absolute trailer address for a payload slice
// of the given length starting at payloadAddr.
func trailerAddrFor(payloadAddr uintptr, n int) uintptr {
	return alignUp(payloadAddr+uintptr(n), trailerAlign)
}
