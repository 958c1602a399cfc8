// Package sim implements the glider simulation core: actor kinematics,
// obstacle lifecycle, collision and scoring, and the session state machine.
// It is pure single-threaded logic with no platform dependencies; the
// Bubble Tea shell drives it with wall-clock deltas and player intents.
package sim

import (
	"github.com/vovakirdan/tui-glider/internal/config"
	"github.com/vovakirdan/tui-glider/internal/core"
)

// LifeStatus is the tri-state life status of the actor.
type LifeStatus int

const (
	LifeFlying  LifeStatus = iota // Velocity carries the actor upward or level
	LifeFalling                   // Gravity has won, velocity points down
	LifeDead                      // No further physics or input applies
)

// String returns a human-readable name for the status.
func (s LifeStatus) String() string {
	switch s {
	case LifeFlying:
		return "Flying"
	case LifeFalling:
		return "Falling"
	case LifeDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Actor is the player-controlled kinematic body. It owns its position,
// vertical velocity, and rotation; the orchestrator is its sole mutator.
type Actor struct {
	X, Y     float64 // Center position in playfield cells
	Velocity float64 // Vertical velocity, cells/s (positive = down)
	Rotation float64 // Radians (positive = nose down)
	Status   LifeStatus

	phys config.Physics
	body config.Actor
}

// NewActor creates an actor at the given vertical center.
// The horizontal offset is fixed by configuration.
func NewActor(phys config.Physics, body config.Actor, centerY float64) *Actor {
	a := &Actor{phys: phys, body: body}
	a.Reset(centerY)
	return a
}

// Reset restores the actor for a new session without reallocating it.
func (a *Actor) Reset(centerY float64) {
	a.X = a.body.X
	a.Y = centerY
	a.Velocity = 0
	a.Rotation = 0
	a.Status = LifeFlying
}

// ApplyGravity integrates gravitational acceleration over dt and clamps
// the velocity magnitude to terminal velocity. No-op once dead.
func (a *Actor) ApplyGravity(dt float64) {
	if a.Status == LifeDead {
		return
	}
	a.Velocity += a.phys.Gravity * dt
	a.Velocity = core.ClampF(a.Velocity, -a.phys.TerminalVelocity, a.phys.TerminalVelocity)
}

// Jump assigns the upward impulse velocity. No-op once dead.
func (a *Actor) Jump() {
	if a.Status == LifeDead {
		return
	}
	a.Velocity = a.phys.JumpImpulse
}

// Update advances the actor by dt: gravity, then position, then a damped
// rotation toward an angle proportional to velocity, then the
// flying/falling classification. No-op once dead.
func (a *Actor) Update(dt float64) {
	if a.Status == LifeDead {
		return
	}

	a.ApplyGravity(dt)
	a.Y += a.Velocity * dt

	// Rotation eases toward a target angle scaled by how close the
	// actor is to terminal velocity.
	target := core.ClampF(
		(a.Velocity/a.phys.TerminalVelocity)*a.body.MaxRotation,
		a.body.MinRotation, a.body.MaxRotation,
	)
	blend := core.ClampF(a.body.RotationRate*dt, 0, 1)
	a.Rotation += (target - a.Rotation) * blend
	a.Rotation = core.ClampF(a.Rotation, a.body.MinRotation, a.body.MaxRotation)

	if a.Velocity > 0 {
		a.Status = LifeFalling
	} else {
		a.Status = LifeFlying
	}
}

// Bounds returns the actor's axis-aligned hitbox centered on its position.
func (a *Actor) Bounds() core.Rect {
	return core.NewRect(
		a.X-a.body.Width/2,
		a.Y-a.body.Height/2,
		a.body.Width,
		a.body.Height,
	)
}

// OutOfBounds reports whether the actor's hitbox lies entirely above the
// ceiling or entirely below the playfield floor.
func (a *Actor) OutOfBounds(playfieldH float64) bool {
	b := a.Bounds()
	return b.Bottom() < 0 || b.Y > playfieldH
}

// Die marks the actor dead and zeroes its velocity. Idempotent.
func (a *Actor) Die() {
	a.Status = LifeDead
	a.Velocity = 0
}
