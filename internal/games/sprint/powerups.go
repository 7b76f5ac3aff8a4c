package sprint

import "github.com/APorkolab/SprintSolve/internal/core"

// PickupType represents the kind of a floating power-up.
type PickupType int

const (
	// PickupShield grants a one-hit shield against walls, ceiling, and floor.
	PickupShield PickupType = iota
)

// Glyph returns the display character for a pickup type.
func (p PickupType) Glyph() rune {
	switch p {
	case PickupShield:
		return '◆'
	default:
		return '?'
	}
}

// Pickup is a power-up drifting left with the world. Collected on overlap
// with the character.
type Pickup struct {
	Type   PickupType
	X, Y   float64
	Size   float64
	Active bool
}

// Bounds returns the pickup's collision box centered on (X, Y).
func (p *Pickup) Bounds() core.AABB {
	half := p.Size / 2
	return core.NewAABB(p.X-half, p.Y-half, p.Size, p.Size)
}

// pickupSize is the world-space side length of a pickup box.
const pickupSize = 30.0

// maybeSpawnPickup rolls the configured chance and spawns a shield pickup at
// the right edge at a random height. Only one shield can be held at a time,
// so nothing spawns while one is held or already floating.
func (g *Game) maybeSpawnPickup() {
	if g.hasShield {
		return
	}
	for i := range g.pickups {
		if g.pickups[i].Active {
			return
		}
	}
	if g.rng.Float64() >= g.conf.Gameplay.PowerupChance {
		return
	}

	margin := pickupSize
	y := margin + g.rng.Float64()*(g.conf.Canvas.Height-2*margin)
	g.pickups = append(g.pickups[:0], Pickup{
		Type:   PickupShield,
		X:      g.conf.Canvas.Width + pickupSize,
		Y:      y,
		Size:   pickupSize,
		Active: true,
	})
	g.emit(EventPowerupSpawned)
}

// updatePickups drifts pickups left, drops the ones that scrolled out, and
// collects any that touch the character.
func (g *Game) updatePickups(speed float64) {
	charBounds := g.character.Bounds()
	for i := range g.pickups {
		p := &g.pickups[i]
		if !p.Active {
			continue
		}
		p.X -= speed
		if p.X+p.Size < 0 {
			p.Active = false
			continue
		}
		if charBounds.Overlaps(p.Bounds()) {
			p.Active = false
			g.hasShield = true
			g.emit(EventPowerupCollected)
		}
	}
}
