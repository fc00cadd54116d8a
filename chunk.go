package zcirc

// chunk is a single contiguous backing buffer with a live sub-range
// [start, start+len) carved monotonically from its left edge. Allocation
// always bumps the right edge of the live range; free_left/free_right only
// move the range's edges. No hole is ever represented inside a chunk.
type chunk struct {
	data  []byte // owned fixed-size buffer, acquired from Backing at creation
	start int    // offset of the first live byte
	len   int    // live byte count
}

func newChunk(data []byte) chunk {
	return chunk{data: data}
}

// alloc bumps the live range's right edge by n bytes and returns the
// carved-out subslice, or nil if the chunk doesn't have n free bytes past
// its current live range.
func (c *chunk) alloc(n int) []byte {
	end := c.start + c.len
	if end+n > len(c.data) {
		return nil
	}
	out := c.data[end : end+n]
	c.len += n
	return out
}

// freeLeft moves the chunk's left edge to firstKept, an offset into data.
// It normalizes to (0, 0) once the chunk empties.
func (c *chunk) freeLeft(firstKept int) {
	end := c.start + c.len
	c.start = firstKept
	c.len = end - firstKept
	c.normalize()
}

// freeRight truncates the chunk so its live range ends at firstRemoved, an
// offset into data. It normalizes to (0, 0) once the chunk empties.
func (c *chunk) freeRight(firstRemoved int) {
	c.len = firstRemoved - c.start
	c.normalize()
}

// clear empties the chunk without altering its backing buffer's contents.
func (c *chunk) clear() {
	c.start = 0
	c.len = 0
}

func (c *chunk) normalize() {
	if c.len == 0 {
		c.start = 0
	}
}

func (c *chunk) isEmpty() bool {
	return c.len == 0
}

// end returns the offset one past the chunk's live range — the bump
// pointer's current position.
func (c *chunk) end() int {
	return c.start + c.len
}
