package zcirc

import "github.com/pkg/errors"

// maxChunks bounds the chunk vector so a chunk index fits in the 8-bit
// field the payload trailer reserves for it.
const maxChunks = 64

// defaultInitialSeed is used when a caller passes initialSeed <= 0 to New.
const defaultInitialSeed = 4096

// ErrChunkVectorFull is returned when an allocation would require a 65th
// chunk.
var ErrChunkVectorFull = errors.New("zcirc: chunk vector exhausted (64 chunk cap reached)")

// ringBuffer composes up to three chunkRuns — left, right, overflow — over
// a single append-only chunk vector to emulate a circular live region with
// wraparound and an overflow escape valve.
type ringBuffer struct {
	backing     Backing
	initialSeed int

	chunks []chunk

	left     *chunkRun
	right    *chunkRun
	overflow *chunkRun

	lastSize int
}

func newRingBuffer(backing Backing, initialSeed int) *ringBuffer {
	if initialSeed <= 0 {
		initialSeed = defaultInitialSeed
	}
	return &ringBuffer{backing: backing, initialSeed: initialSeed}
}

func (rb *ringBuffer) growSize(n int) int {
	size := rb.lastSize
	if n > size {
		size = n
	}
	return size * 2
}

// addChunk appends a freshly backed chunk of the given size to the vector
// and returns its index. State is left unchanged on failure.
func (rb *ringBuffer) addChunk(size int) (int, error) {
	if len(rb.chunks) >= maxChunks {
		return 0, ErrChunkVectorFull
	}
	data, err := rb.backing.Alloc(size)
	if err != nil {
		return 0, errors.Wrap(err, "zcirc: backing allocation failed")
	}
	rb.chunks = append(rb.chunks, newChunk(data))
	rb.lastSize = size
	return len(rb.chunks) - 1, nil
}

// alloc serves an n-byte bump allocation: overflow first if present, then
// left, growing a fresh overflow run when left's tail chunk is full. It
// returns the carved slice and the vector index of the chunk that served it.
func (rb *ringBuffer) alloc(n int) ([]byte, int, error) {
	if rb.left == nil {
		size := rb.initialSeed
		if n > size {
			size = n
		}
		size *= 2
		idx, err := rb.addChunk(size)
		if err != nil {
			return nil, 0, err
		}
		run := newChunkRun(idx)
		rb.left = &run
		return rb.left.alloc(rb.chunks, n), idx, nil
	}

	if rb.overflow != nil {
		if out := rb.overflow.alloc(rb.chunks, n); out != nil {
			return out, rb.overflow.tail(), nil
		}
		idx, err := rb.addChunk(rb.growSize(n))
		if err != nil {
			return nil, 0, err
		}
		rb.overflow.extend()
		return rb.overflow.alloc(rb.chunks, n), idx, nil
	}

	if out := rb.left.alloc(rb.chunks, n); out != nil {
		return out, rb.left.tail(), nil
	}

	idx, err := rb.addChunk(rb.growSize(n))
	if err != nil {
		return nil, 0, err
	}
	run := newChunkRun(idx)
	rb.overflow = &run
	return rb.overflow.alloc(rb.chunks, n), idx, nil
}

// clearRun clears every chunk in the run's current view without altering
// the run's own bookkeeping.
func (rb *ringBuffer) clearRun(r *chunkRun) {
	if r == nil {
		return
	}
	for i := r.base; i < r.base+r.count; i++ {
		rb.chunks[i].clear()
	}
}

// freeLeft frees everything allocated no later than the allocation
// identified by (chunkIdx, firstKept). See DESIGN.md for the Open Question
// resolutions this dispatch encodes.
func (rb *ringBuffer) freeLeft(chunkIdx, firstKept int) {
	switch {
	case rb.overflow != nil && rb.overflow.contains(chunkIdx):
		rb.clearRun(rb.left)
		rb.clearRun(rb.right)
		rb.overflow.freeLeft(rb.chunks, chunkIdx, firstKept)
		if rb.overflow.isEmpty(rb.chunks) {
			n := len(rb.chunks)
			full := chunkRun{base: 0, count: n, head: n - 1}
			rb.left = &full
			rb.right = nil
			rb.overflow = nil
			return
		}
		newHead := rb.overflow.head
		leftRun := chunkRun{base: 0, count: newHead, head: newHead - 1}
		rightRun := chunkRun{base: newHead, count: rb.overflow.tail() - newHead + 1, head: newHead}
		rb.left = &leftRun
		rb.right = &rightRun
		rb.overflow = nil

	case rb.right != nil && rb.left.contains(chunkIdx):
		oldTail := rb.right.tail()
		rb.clearRun(rb.right)
		rb.left.freeLeft(rb.chunks, chunkIdx, firstKept)
		newHead := rb.left.head
		rb.left.base, rb.left.count, rb.left.head = newHead, oldTail-newHead+1, newHead
		if newHead == 0 {
			rb.right = nil
		} else {
			r := chunkRun{base: 0, count: newHead, head: newHead - 1}
			rb.right = &r
		}

	case rb.right != nil && rb.right.contains(chunkIdx):
		origTail := rb.right.tail()
		rb.right.freeLeft(rb.chunks, chunkIdx, firstKept)
		if rb.right.isEmpty(rb.chunks) {
			leftWasEmpty := rb.left.isEmpty(rb.chunks)
			rb.left.count = origTail - rb.left.base + 1
			if leftWasEmpty {
				rb.left.head = origTail
			}
			rb.right = nil
		} else {
			newHead := rb.right.head
			rb.right.base, rb.right.count, rb.right.head = newHead, rb.right.tail()-newHead+1, newHead
		}

	default: // chunk ∈ left, right absent
		rb.left.freeLeft(rb.chunks, chunkIdx, firstKept)
		if rb.left.head != 0 {
			h := rb.left.head
			oldTail := rb.left.tail()
			r := chunkRun{base: 0, count: h, head: h - 1}
			*rb.left = chunkRun{base: h, count: oldTail - h + 1, head: h}
			rb.right = &r
		}
	}
}

// freeRight frees everything allocated no earlier than the allocation
// identified by (chunkIdx, firstRemoved). See DESIGN.md for the Open
// Question resolutions this dispatch encodes.
func (rb *ringBuffer) freeRight(chunkIdx, firstRemoved int) {
	switch {
	case rb.overflow != nil && rb.overflow.contains(chunkIdx):
		rb.overflow.freeRight(rb.chunks, chunkIdx, firstRemoved)
		if rb.overflow.isEmpty(rb.chunks) {
			leftWasEmpty := rb.left.isEmpty(rb.chunks)
			rb.left.count = len(rb.chunks) - rb.left.base
			if leftWasEmpty {
				rb.left.head = len(rb.chunks) - 1
			}
			rb.overflow = nil
		}

	case rb.right != nil && rb.right.contains(chunkIdx):
		leftBase, leftTail := rb.left.base, rb.left.tail()
		rb.clearRun(rb.left)
		rb.right.freeRight(rb.chunks, chunkIdx, firstRemoved)
		if rb.right.isEmpty(rb.chunks) {
			newBase := rb.right.base
			*rb.left = chunkRun{base: newBase, count: leftTail - newBase + 1, head: newBase}
			rb.right = nil
		} else {
			*rb.left = chunkRun{base: leftBase, count: leftTail - leftBase + 1, head: leftTail}
		}

	case rb.right != nil && rb.left.contains(chunkIdx):
		oldBase, oldTail := rb.left.base, rb.left.tail()
		rb.left.freeRight(rb.chunks, chunkIdx, firstRemoved)
		if rb.left.isEmpty(rb.chunks) {
			rightTail := rb.right.tail()
			rb.right.base = oldBase
			rb.right.count = rightTail - oldBase + 1
			*rb.left = chunkRun{base: oldTail, count: 1, head: oldTail}
		}

	default: // chunk ∈ left, right absent
		rb.left.freeRight(rb.chunks, chunkIdx, firstRemoved)
	}
}

// count sums live bytes across every chunk in the vector. Chunks outside
// any run's current view are always empty, so this is equivalent to (and
// simpler than) summing per-run.
func (rb *ringBuffer) count() int {
	total := 0
	for i := range rb.chunks {
		total += rb.chunks[i].len
	}
	return total
}

func (r *chunkRun) contains(idx int) bool {
	return r != nil && idx >= r.base && idx < r.base+r.count
}
