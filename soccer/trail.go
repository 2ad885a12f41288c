package soccer

// Trail tuning
const (
	TrailMinSpeed  = 3.0 // ball speed above which particles are emitted
	TrailLifetime  = 20  // frames
	TrailSizeRatio = 0.6 // particle size relative to ball radius
)

// TrailParticle is one fading mark behind a fast ball
type TrailParticle struct {
	Pos     Vec2
	Life    int
	MaxLife int
	Size    float64
}

// Alpha returns the remaining life as a fraction in (0, 1]
func (p TrailParticle) Alpha() float64 {
	return float64(p.Life) / float64(p.MaxLife)
}

// Trail is a decorative particle trail behind the ball. It never feeds
// back into the physics.
type Trail struct {
	Particles []TrailParticle
}

// Update emits a particle where the ball was moving fast during its last
// update, then ages every particle by one frame and drops the dead ones.
// Speed and position are taken before the wall bounce, so a fast ball
// striking a wall still leaves a mark.
func (t *Trail) Update(ball *Ball) {
	if ball.travelSpeed > TrailMinSpeed {
		t.Particles = append(t.Particles, TrailParticle{
			Pos:     ball.travelPos,
			Life:    TrailLifetime,
			MaxLife: TrailLifetime,
			Size:    ball.Radius * TrailSizeRatio,
		})
	}

	alive := t.Particles[:0]
	for _, p := range t.Particles {
		p.Life--
		if p.Life > 0 {
			alive = append(alive, p)
		}
	}
	t.Particles = alive
}

// Clear removes every particle
func (t *Trail) Clear() {
	t.Particles = t.Particles[:0]
}
