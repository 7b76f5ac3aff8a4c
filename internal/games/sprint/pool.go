package sprint

import "github.com/APorkolab/SprintSolve/internal/core"

// maxFreeItems caps each free list. Recycled items beyond the cap are
// dropped for the garbage collector; the cap bounds memory, it is not a
// correctness constraint.
const maxFreeItems = 32

// WallSegment is a solid rectangular obstacle in world coordinates.
type WallSegment struct {
	X, Y          float64
	Width, Height float64
}

// Bounds returns the segment's collision box.
func (w *WallSegment) Bounds() core.AABB {
	return core.NewAABB(w.X, w.Y, w.Width, w.Height)
}

// Tunnel is a gap in the wall band annotated with one candidate answer.
type Tunnel struct {
	X, Y          float64
	Width, Height float64
	IsCorrect     bool
	AnswerText    string
}

// Bounds returns the tunnel's box.
func (t *Tunnel) Bounds() core.AABB {
	return core.NewAABB(t.X, t.Y, t.Width, t.Height)
}

// Pool supplies and recycles wall segments and tunnels so the per-frame
// update never churns the heap. Active lists are mutated only by the
// single-threaded tick: through CreateWallSegment/CreateTunnel, Update,
// Shift, and Clear.
type Pool struct {
	walls   []*WallSegment
	tunnels []*Tunnel

	freeWalls   []*WallSegment
	freeTunnels []*Tunnel
}

// NewPool creates an empty obstacle pool.
func NewPool() *Pool {
	return &Pool{
		walls:       make([]*WallSegment, 0, 8),
		tunnels:     make([]*Tunnel, 0, 4),
		freeWalls:   make([]*WallSegment, 0, maxFreeItems),
		freeTunnels: make([]*Tunnel, 0, maxFreeItems),
	}
}

// CreateWallSegment takes a segment from the free list (or allocates one if
// the pool is empty), resets its fields, and appends it to the active list.
// Pool exhaustion never blocks allocation.
func (p *Pool) CreateWallSegment(x, y, width, height float64) *WallSegment {
	var w *WallSegment
	if n := len(p.freeWalls); n > 0 {
		w = p.freeWalls[n-1]
		p.freeWalls = p.freeWalls[:n-1]
	} else {
		w = &WallSegment{}
	}
	*w = WallSegment{X: x, Y: y, Width: width, Height: height}
	p.walls = append(p.walls, w)
	return w
}

// CreateTunnel is the tunnel analogue of CreateWallSegment.
func (p *Pool) CreateTunnel(x, y, width, height float64, isCorrect bool, answerText string) *Tunnel {
	var t *Tunnel
	if n := len(p.freeTunnels); n > 0 {
		t = p.freeTunnels[n-1]
		p.freeTunnels = p.freeTunnels[:n-1]
	} else {
		t = &Tunnel{}
	}
	*t = Tunnel{X: x, Y: y, Width: width, Height: height, IsCorrect: isCorrect, AnswerText: answerText}
	p.tunnels = append(p.tunnels, t)
	return t
}

// Update shifts all active geometry left by speed and recycles items that
// have fully scrolled past the left edge (x + width < 0).
func (p *Pool) Update(speed float64) {
	activeWalls := p.walls[:0]
	for _, w := range p.walls {
		w.X -= speed
		if w.X+w.Width < 0 {
			p.recycleWall(w)
			continue
		}
		activeWalls = append(activeWalls, w)
	}
	p.walls = activeWalls

	activeTunnels := p.tunnels[:0]
	for _, t := range p.tunnels {
		t.X -= speed
		if t.X+t.Width < 0 {
			p.recycleTunnel(t)
			continue
		}
		activeTunnels = append(activeTunnels, t)
	}
	p.tunnels = activeTunnels
}

// Shift moves all active geometry right by dx. Used when a shield absorbs a
// hit and the wall band is pushed back to grant a second chance.
func (p *Pool) Shift(dx float64) {
	for _, w := range p.walls {
		w.X += dx
	}
	for _, t := range p.tunnels {
		t.X += dx
	}
}

// Clear recycles all active items and empties the active lists.
// Used on restart, category change, and before regenerating a wall.
func (p *Pool) Clear() {
	for _, w := range p.walls {
		p.recycleWall(w)
	}
	for _, t := range p.tunnels {
		p.recycleTunnel(t)
	}
	p.walls = p.walls[:0]
	p.tunnels = p.tunnels[:0]
}

// ActiveWalls returns the active wall segments. Callers must not mutate.
func (p *Pool) ActiveWalls() []*WallSegment {
	return p.walls
}

// ActiveTunnels returns the active tunnels. Callers must not mutate.
func (p *Pool) ActiveTunnels() []*Tunnel {
	return p.tunnels
}

func (p *Pool) recycleWall(w *WallSegment) {
	if len(p.freeWalls) < maxFreeItems {
		p.freeWalls = append(p.freeWalls, w)
	}
}

func (p *Pool) recycleTunnel(t *Tunnel) {
	if len(p.freeTunnels) < maxFreeItems {
		p.freeTunnels = append(p.freeTunnels, t)
	}
}
