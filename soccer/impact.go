package soccer

import (
	"math"
	"math/rand"
)

// Impact burst tuning
const (
	KickImpactIntensity = 1.5
	impactBaseCount     = 5
	impactMinSpeed      = 0.5
	impactSpeedRange    = 2.0 // scaled by intensity
	impactMinSize       = 1.0
	impactSizeRange     = 2.0
	ImpactLifetime      = 20   // frames
	impactSizeDecay     = 0.95 // size retained per frame
	impactVanishSize    = 0.1
)

// ImpactParticle is one spark thrown off the ball by a kick
type ImpactParticle struct {
	Pos     Vec2
	Vel     Vec2
	Size    float64
	Life    int
	MaxLife int
}

// Alpha returns the remaining life as a fraction in (0, 1]
func (p ImpactParticle) Alpha() float64 {
	return float64(p.Life) / float64(p.MaxLife)
}

// Impacts holds the sparks from recent kicks. Like Trail it is purely
// visual.
type Impacts struct {
	Particles []ImpactParticle

	rng *rand.Rand
}

// NewImpacts creates an empty emitter drawing randomness from rng
func NewImpacts(rng *rand.Rand) *Impacts {
	return &Impacts{rng: rng}
}

// BurstSize returns how many sparks a burst of the given intensity emits
func BurstSize(intensity float64) int {
	return int(math.Floor(impactBaseCount * intensity))
}

// Burst scatters sparks in random directions from pos
func (im *Impacts) Burst(pos Vec2, intensity float64) {
	for i := 0; i < BurstSize(intensity); i++ {
		angle := im.rng.Float64() * 2 * math.Pi
		speed := impactMinSpeed + im.rng.Float64()*impactSpeedRange*intensity
		im.Particles = append(im.Particles, ImpactParticle{
			Pos:     pos,
			Vel:     Vec2{math.Cos(angle) * speed, math.Sin(angle) * speed},
			Size:    impactMinSize + im.rng.Float64()*impactSizeRange,
			Life:    ImpactLifetime,
			MaxLife: ImpactLifetime,
		})
	}
}

// Update moves and shrinks every spark, dropping those that have expired
// or shrunk away.
func (im *Impacts) Update() {
	alive := im.Particles[:0]
	for _, p := range im.Particles {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		p.Size *= impactSizeDecay
		if p.Life > 0 && p.Size > impactVanishSize {
			alive = append(alive, p)
		}
	}
	im.Particles = alive
}

// Clear removes every spark
func (im *Impacts) Clear() {
	im.Particles = im.Particles[:0]
}
