package soccer

import (
	"math/rand"
	"testing"
)

func TestImpactBurstSize(t *testing.T) {
	im := NewImpacts(rand.New(rand.NewSource(1)))

	im.Burst(Vec2{400, 300}, KickImpactIntensity)

	if len(im.Particles) != 7 {
		t.Fatalf("burst emitted %d sparks, want 7", len(im.Particles))
	}
	for i, p := range im.Particles {
		if p.Pos != (Vec2{400, 300}) {
			t.Fatalf("spark %d starts at %+v", i, p.Pos)
		}
		if p.Size < 1 || p.Size >= 3 {
			t.Fatalf("spark %d size = %f, want [1,3)", i, p.Size)
		}
		if s := p.Vel.Length(); s < 0.5-epsilon || s > 0.5+2*KickImpactIntensity+epsilon {
			t.Fatalf("spark %d speed = %f out of range", i, s)
		}
	}
}

func TestImpactParticlesExpire(t *testing.T) {
	im := NewImpacts(rand.New(rand.NewSource(2)))
	im.Burst(Vec2{400, 300}, 1)

	for i := 0; i < ImpactLifetime-1; i++ {
		im.Update()
	}
	if len(im.Particles) != 5 {
		t.Fatalf("%d sparks left before lifetime ends, want 5", len(im.Particles))
	}

	im.Update()
	if len(im.Particles) != 0 {
		t.Fatalf("%d sparks outlived their lifetime", len(im.Particles))
	}
}

func TestMatchKickThrowsSparks(t *testing.T) {
	m := NewMatchWithRand(DefaultBounds(), rand.New(rand.NewSource(3)))
	m.Ball.Pos = m.Player.Pos

	m.Step(MoveInput{})
	if len(m.Impacts.Particles) != BurstSize(KickImpactIntensity) {
		t.Fatalf("sparks after one kick = %d", len(m.Impacts.Particles))
	}

	m.Step(MoveInput{})
	if len(m.Impacts.Particles) != 2*BurstSize(KickImpactIntensity) {
		t.Fatalf("sparks after re-kick = %d", len(m.Impacts.Particles))
	}
}
