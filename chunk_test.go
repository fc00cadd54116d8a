package zcirc

import "testing"

func TestChunkAlloc(t *testing.T) {
	c := newChunk(make([]byte, 16))

	b1 := c.alloc(4)
	if len(b1) != 4 {
		t.Fatalf("alloc(4) length = %d, want 4", len(b1))
	}
	if c.len != 4 {
		t.Fatalf("len after alloc(4) = %d, want 4", c.len)
	}

	b2 := c.alloc(8)
	if len(b2) != 8 {
		t.Fatalf("alloc(8) length = %d, want 8", len(b2))
	}
	if c.len != 12 {
		t.Fatalf("len after alloc(8) = %d, want 12", c.len)
	}

	if out := c.alloc(8); out != nil {
		t.Fatalf("alloc(8) past capacity = %v, want nil", out)
	}
	if out := c.alloc(4); out == nil {
		t.Fatalf("alloc(4) at exact remaining capacity returned nil")
	}
}

func TestChunkAllocDoesNotReusePriorSpace(t *testing.T) {
	c := newChunk(make([]byte, 16))
	c.alloc(8)
	c.freeLeft(4)
	if c.start != 4 || c.len != 4 {
		t.Fatalf("after freeLeft(4): start=%d len=%d, want start=4 len=4", c.start, c.len)
	}
	// bump pointer must not rewind into the freed space
	b := c.alloc(8)
	if len(b) != 8 {
		t.Fatalf("alloc(8) length = %d, want 8", len(b))
	}
	if c.start != 4 || c.len != 12 {
		t.Fatalf("after second alloc: start=%d len=%d, want start=4 len=12", c.start, c.len)
	}
}

func TestChunkFreeLeftNormalizes(t *testing.T) {
	c := newChunk(make([]byte, 16))
	c.alloc(10)
	c.freeLeft(10)
	if c.start != 0 || c.len != 0 {
		t.Fatalf("emptied chunk = (start=%d, len=%d), want (0, 0)", c.start, c.len)
	}
	if !c.isEmpty() {
		t.Fatal("isEmpty() = false after full freeLeft")
	}
}

func TestChunkFreeRightNormalizes(t *testing.T) {
	c := newChunk(make([]byte, 16))
	c.alloc(10)
	c.freeRight(0)
	if c.start != 0 || c.len != 0 {
		t.Fatalf("emptied chunk = (start=%d, len=%d), want (0, 0)", c.start, c.len)
	}
}

func TestChunkFreeRightPartial(t *testing.T) {
	c := newChunk(make([]byte, 16))
	c.alloc(10)
	c.freeRight(6)
	if c.start != 0 || c.len != 6 {
		t.Fatalf("after freeRight(6): start=%d len=%d, want start=0 len=6", c.start, c.len)
	}
	// the freed tail must be reclaimable by a subsequent alloc
	b := c.alloc(10)
	if len(b) != 10 {
		t.Fatalf("alloc(10) after freeRight(6) length = %d, want 10", len(b))
	}
}

func TestChunkClear(t *testing.T) {
	c := newChunk(make([]byte, 16))
	c.alloc(10)
	c.clear()
	if c.start != 0 || c.len != 0 {
		t.Fatalf("cleared chunk = (start=%d, len=%d), want (0, 0)", c.start, c.len)
	}
}

func TestChunkEnd(t *testing.T) {
	c := newChunk(make([]byte, 16))
	c.alloc(4)
	c.freeLeft(2)
	if c.end() != 4 {
		t.Fatalf("end() = %d, want 4", c.end())
	}
}
