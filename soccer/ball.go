package soccer

import "math"

// Ball physics constants
const (
	BallRadius        = 12.0
	BallFriction      = 0.95 // velocity retained per frame
	BallBounceDamping = 0.7  // velocity retained on a wall bounce
	BallStopThreshold = 0.1  // velocity components below this snap to zero
	KickPower         = 8.0
)

// Circle is anything with a center and a collision radius
type Circle interface {
	Center() Vec2
	CollisionRadius() float64
}

// Ball is the soccer ball. It drifts under friction and bounces off the
// field walls.
type Ball struct {
	Pos Vec2
	Vel Vec2

	Radius        float64
	Friction      float64
	BounceDamping float64

	bounds Bounds

	// position and speed sampled after integration, before wall bounces
	travelPos   Vec2
	travelSpeed float64
}

// NewBall creates a resting ball at (x, y) inside bounds
func NewBall(x, y float64, bounds Bounds) *Ball {
	return &Ball{
		Pos:           Vec2{x, y},
		Radius:        BallRadius,
		Friction:      BallFriction,
		BounceDamping: BallBounceDamping,
		bounds:        bounds,
	}
}

// Center returns the ball position
func (b *Ball) Center() Vec2 {
	return b.Pos
}

// CollisionRadius returns the ball radius
func (b *Ball) CollisionRadius() float64 {
	return b.Radius
}

// Speed returns the magnitude of the ball velocity
func (b *Ball) Speed() float64 {
	return b.Vel.Length()
}

// Update advances the ball by one frame: friction, rest snapping,
// integration, then wall bounces on each axis.
func (b *Ball) Update() {
	b.Vel = b.Vel.Scale(b.Friction)

	if math.Abs(b.Vel.X) < BallStopThreshold {
		b.Vel.X = 0
	}
	if math.Abs(b.Vel.Y) < BallStopThreshold {
		b.Vel.Y = 0
	}

	b.Pos = b.Pos.Add(b.Vel)
	b.travelPos = b.Pos
	b.travelSpeed = b.Vel.Length()

	b.Pos.X, b.Vel.X = b.bounce(b.Pos.X, b.Vel.X, b.bounds.WallMinX(), b.bounds.WallMaxX())
	b.Pos.Y, b.Vel.Y = b.bounce(b.Pos.Y, b.Vel.Y, b.bounds.WallMinY(), b.bounds.WallMaxY())
}

// bounce reflects and damps v when pos touches either wall, and clamps
// pos so the ball edge sits exactly on the wall. The low wall wins if
// both are touched.
func (b *Ball) bounce(pos, v, lo, hi float64) (float64, float64) {
	hitLo := pos-b.Radius <= lo
	hitHi := pos+b.Radius >= hi
	if !hitLo && !hitHi {
		return pos, v
	}

	v = -v * b.BounceDamping
	if hitLo {
		return lo + b.Radius, v
	}
	return hi - b.Radius, v
}

// Kick overwrites the ball velocity with direction scaled by KickPower.
// direction is expected to be unit length.
func (b *Ball) Kick(direction Vec2) {
	b.Vel = direction.Scale(KickPower)
}
