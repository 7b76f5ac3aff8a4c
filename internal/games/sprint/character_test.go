package sprint

import "testing"

func TestCharacterFallSequence(t *testing.T) {
	c := Character{X: 120, Y: 200, Size: 40, Gravity: 0.5, JumpImpulse: -10}

	// Velocity integrates before position, so each step moves by the new velocity
	steps := []struct {
		wantVel float64
		wantY   float64
	}{
		{0.5, 200.5},
		{1.0, 201.5},
		{1.5, 203.0},
	}
	for i, want := range steps {
		c.Update()
		if c.VelocityY != want.wantVel {
			t.Errorf("step %d: VelocityY = %v, want %v", i+1, c.VelocityY, want.wantVel)
		}
		if c.Y != want.wantY {
			t.Errorf("step %d: Y = %v, want %v", i+1, c.Y, want.wantY)
		}
	}
}

func TestCharacterJumpOverwritesVelocity(t *testing.T) {
	c := Character{Y: 400, Gravity: 0.5, JumpImpulse: -10}

	// Build up downward speed, then jump: velocity must be replaced, not added to
	for i := 0; i < 40; i++ {
		c.Update()
	}
	if c.VelocityY != 20 {
		t.Fatalf("VelocityY after 40 steps = %v, want 20", c.VelocityY)
	}

	c.Jump()
	if c.VelocityY != -10 {
		t.Errorf("VelocityY after jump = %v, want -10", c.VelocityY)
	}

	// Jumping while already rising also overwrites
	c.VelocityY = -3
	c.Jump()
	if c.VelocityY != -10 {
		t.Errorf("VelocityY after second jump = %v, want -10", c.VelocityY)
	}
}

func TestCharacterXFixed(t *testing.T) {
	c := Character{X: 120, Y: 400, Gravity: 0.5, JumpImpulse: -10}
	for i := 0; i < 100; i++ {
		if i%10 == 0 {
			c.Jump()
		}
		c.Update()
	}
	if c.X != 120 {
		t.Errorf("X drifted to %v, want 120", c.X)
	}
}

func TestCharacterVelocityUnclamped(t *testing.T) {
	c := Character{Y: 0, Gravity: 0.5, JumpImpulse: -10}
	for i := 0; i < 200; i++ {
		c.Update()
	}
	if c.VelocityY != 100 {
		t.Errorf("VelocityY after 200 steps = %v, want 100", c.VelocityY)
	}
}

func TestCharacterResetCenters(t *testing.T) {
	c := Character{X: 120, Y: 790, Size: 40, VelocityY: 17}
	c.Reset(800)
	if c.Y != 400 {
		t.Errorf("Y after reset = %v, want 400", c.Y)
	}
	if c.VelocityY != 0 {
		t.Errorf("VelocityY after reset = %v, want 0", c.VelocityY)
	}
}

func TestCharacterBoundsCentered(t *testing.T) {
	c := Character{X: 120, Y: 200, Size: 40}
	b := c.Bounds()
	if b.X != 100 || b.Y != 180 || b.W != 40 || b.H != 40 {
		t.Errorf("Bounds() = %+v, want box at (100,180) size 40", b)
	}
}
