package soccer

import (
	"math/rand"
	"time"
)

// Ball spawn offset below the field center
const ballSpawnOffsetY = 50.0

// Match owns one field, one player and one ball and advances them one
// frame at a time.
type Match struct {
	Bounds  Bounds
	Field   *Field
	Player  *Player
	Ball    *Ball
	Trail   *Trail
	Impacts *Impacts

	// Frame counts completed steps
	Frame uint64
	// Kicks counts frames on which a kick fired
	Kicks uint64
}

// NewMatch places the player at the field center and the ball just below it
func NewMatch(bounds Bounds) *Match {
	return NewMatchWithRand(bounds, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewMatchWithRand is NewMatch with an explicit source for decorative effects
func NewMatchWithRand(bounds Bounds, rng *rand.Rand) *Match {
	m := &Match{
		Bounds:  bounds,
		Field:   NewField(bounds),
		Trail:   &Trail{},
		Impacts: NewImpacts(rng),
	}
	m.Reset()
	return m
}

// Reset puts the player back on the center spot and a resting ball just
// below it, clears every effect and zeroes the counters.
func (m *Match) Reset() {
	center := m.Bounds.Center()
	m.Player = NewPlayer(center.X, center.Y, m.Bounds)
	m.Ball = NewBall(center.X, center.Y+ballSpawnOffsetY, m.Bounds)
	m.Trail.Clear()
	m.Impacts.Clear()
	m.Frame = 0
	m.Kicks = 0
}

// Step runs one frame: player movement, ball physics, effects, then the
// player-ball collision test. It reports whether the ball was kicked.
//
// The kick is not edge-triggered. Every frame the circles overlap the
// ball is kicked again at full power and throws another burst of sparks.
func (m *Match) Step(input MoveInput) bool {
	m.Player.Update(input)
	m.Ball.Update()
	m.Trail.Update(m.Ball)
	m.Impacts.Update()
	m.Frame++

	if !m.Player.CollidesWith(m.Ball) {
		return false
	}
	m.Ball.Kick(m.Player.KickDirection())
	m.Impacts.Burst(m.Ball.Pos, KickImpactIntensity)
	m.Kicks++
	return true
}

// Stop clears the decorative effects once the match is over
func (m *Match) Stop() {
	m.Trail.Clear()
	m.Impacts.Clear()
}
