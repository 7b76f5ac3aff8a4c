package sprint

import "github.com/APorkolab/SprintSolve/internal/core"

// Character is the player-controlled projectile. X stays fixed for the whole
// session; only Y and VelocityY evolve through physics. Y is the vertical
// center of the square collision box.
type Character struct {
	X           float64
	Y           float64
	Size        float64
	VelocityY   float64
	Gravity     float64
	JumpImpulse float64
}

// Jump sets the vertical velocity to the jump impulse. Jumping mid-fall
// overwrites the velocity rather than accumulating, so there is no double
// jump.
func (c *Character) Jump() {
	c.VelocityY = c.JumpImpulse
}

// Update advances one physics tick: gravity accelerates, then position
// integrates. Velocity is deliberately unclamped; terminal fall speed is
// bounded in practice by the canvas height.
func (c *Character) Update() {
	c.VelocityY += c.Gravity
	c.Y += c.VelocityY
}

// Reset centers the character vertically and zeroes its velocity.
// Called at the start of every round and on restart.
func (c *Character) Reset(canvasH float64) {
	c.Y = canvasH / 2
	c.VelocityY = 0
}

// Bounds returns the collision box, a square of side Size centered on (X, Y).
func (c *Character) Bounds() core.AABB {
	half := c.Size / 2
	return core.NewAABB(c.X-half, c.Y-half, c.Size, c.Size)
}
