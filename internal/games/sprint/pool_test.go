package sprint

import "testing"

func TestPoolCreateResetsFields(t *testing.T) {
	p := NewPool()

	w := p.CreateWallSegment(100, 0, 80, 64)
	p.Update(200) // scrolls past the left edge and gets recycled
	if len(p.ActiveWalls()) != 0 {
		t.Fatalf("active walls = %d, want 0 after recycle", len(p.ActiveWalls()))
	}

	// The recycled item comes back with fresh fields, not stale ones
	w2 := p.CreateWallSegment(800, 200, 80, 64)
	if w2 != w {
		t.Errorf("expected the recycled segment to be reused")
	}
	if w2.X != 800 || w2.Y != 200 || w2.Width != 80 || w2.Height != 64 {
		t.Errorf("reused segment = %+v, want fresh fields", *w2)
	}
}

func TestPoolRecycleBoundary(t *testing.T) {
	p := NewPool()
	p.CreateWallSegment(0, 0, 80, 64)

	// x + width == 0 keeps the item active; only fully past the edge recycles
	p.Update(80)
	if got := len(p.ActiveWalls()); got != 1 {
		t.Fatalf("active walls after shift to x=-80 = %d, want 1", got)
	}
	p.Update(1)
	if got := len(p.ActiveWalls()); got != 0 {
		t.Errorf("active walls after x+width < 0 = %d, want 0", got)
	}
}

func TestPoolFreeListBounded(t *testing.T) {
	p := NewPool()
	for i := 0; i < maxFreeItems+20; i++ {
		p.CreateWallSegment(float64(i), 0, 10, 10)
		p.CreateTunnel(float64(i), 0, 10, 10, false, "")
	}
	p.Clear()

	if len(p.freeWalls) != maxFreeItems {
		t.Errorf("freeWalls = %d, want capped at %d", len(p.freeWalls), maxFreeItems)
	}
	if len(p.freeTunnels) != maxFreeItems {
		t.Errorf("freeTunnels = %d, want capped at %d", len(p.freeTunnels), maxFreeItems)
	}
}

func TestPoolClearIdempotent(t *testing.T) {
	p := NewPool()
	p.CreateWallSegment(0, 0, 10, 10)
	p.CreateTunnel(0, 10, 10, 10, true, "42")

	p.Clear()
	free := len(p.freeWalls)
	p.Clear()
	p.Clear()

	if len(p.ActiveWalls()) != 0 || len(p.ActiveTunnels()) != 0 {
		t.Errorf("active lists not empty after repeated Clear")
	}
	if len(p.freeWalls) != free {
		t.Errorf("repeated Clear grew the free list: %d -> %d", free, len(p.freeWalls))
	}
}

func TestPoolShift(t *testing.T) {
	p := NewPool()
	p.CreateWallSegment(100, 0, 80, 64)
	p.CreateTunnel(100, 64, 80, 120, false, "a")

	p.Shift(160)

	if p.ActiveWalls()[0].X != 260 {
		t.Errorf("wall X after shift = %v, want 260", p.ActiveWalls()[0].X)
	}
	if p.ActiveTunnels()[0].X != 260 {
		t.Errorf("tunnel X after shift = %v, want 260", p.ActiveTunnels()[0].X)
	}
}
