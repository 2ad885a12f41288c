package soccer

import "testing"

func TestNewMatchLayout(t *testing.T) {
	m := NewMatch(DefaultBounds())

	if m.Player.Pos != (Vec2{400, 300}) {
		t.Fatalf("player spawn = %+v, want (400,300)", m.Player.Pos)
	}
	if m.Ball.Pos != (Vec2{400, 350}) {
		t.Fatalf("ball spawn = %+v, want (400,350)", m.Ball.Pos)
	}
	if !m.Ball.Vel.IsZero() {
		t.Fatalf("ball starts moving: %+v", m.Ball.Vel)
	}
}

func TestMatchKicksWhenPlayerReachesBall(t *testing.T) {
	m := NewMatch(DefaultBounds())
	down := MoveInput{Down: true}

	// Player centers at y=305, 310, 315 stay at least 32 from the ball.
	for i, wantY := range []float64{305, 310, 315} {
		if m.Step(down) {
			t.Fatalf("step %d: unexpected kick with player at y=%f", i, m.Player.Pos.Y)
		}
		if m.Player.Pos.Y != wantY {
			t.Fatalf("step %d: player y = %f, want %f", i, m.Player.Pos.Y, wantY)
		}
		if m.Ball.Pos != (Vec2{400, 350}) {
			t.Fatalf("step %d: ball moved to %+v before any kick", i, m.Ball.Pos)
		}
	}

	if !m.Step(down) {
		t.Fatalf("expected kick with player at y=%f", m.Player.Pos.Y)
	}
	if m.Ball.Vel != (Vec2{0, 8}) {
		t.Fatalf("ball vel after kick = %+v, want (0,8)", m.Ball.Vel)
	}
	if m.Kicks != 1 || m.Frame != 4 {
		t.Fatalf("kicks=%d frame=%d, want 1 and 4", m.Kicks, m.Frame)
	}
}

func TestMatchRekicksEveryOverlappingFrame(t *testing.T) {
	m := NewMatch(DefaultBounds())
	m.Ball.Pos = m.Player.Pos

	if !m.Step(MoveInput{}) {
		t.Fatal("expected kick on first overlapping frame")
	}
	if m.Ball.Vel != (Vec2{8, 0}) {
		t.Fatalf("default kick vel = %+v, want (8,0)", m.Ball.Vel)
	}

	// Ball travels 7.6 units, still inside the player, and gets kicked again.
	if !m.Step(MoveInput{}) {
		t.Fatal("expected a second kick while still overlapping")
	}
	if m.Ball.Vel != (Vec2{8, 0}) {
		t.Fatalf("re-kick vel = %+v, want full power (8,0)", m.Ball.Vel)
	}
	if m.Kicks != 2 {
		t.Fatalf("kicks = %d, want 2", m.Kicks)
	}
}

func TestMatchBallComesToRest(t *testing.T) {
	m := NewMatch(DefaultBounds())
	m.Ball.Kick(Vec2{0, -1})

	for i := 0; i < 200; i++ {
		m.Step(MoveInput{})
	}

	if !m.Ball.Vel.IsZero() {
		t.Fatalf("ball still moving after 200 frames: %+v", m.Ball.Vel)
	}
	if len(m.Trail.Particles) != 0 {
		t.Fatalf("trail has %d particles after ball stopped", len(m.Trail.Particles))
	}
}

func TestMatchReset(t *testing.T) {
	m := NewMatch(DefaultBounds())
	m.Ball.Pos = m.Player.Pos
	for i := 0; i < 10; i++ {
		m.Step(MoveInput{Right: true, Up: true})
	}
	if m.Kicks == 0 || len(m.Trail.Particles) == 0 {
		t.Fatalf("setup did not kick: kicks=%d trail=%d", m.Kicks, len(m.Trail.Particles))
	}

	m.Reset()

	if m.Player.Pos != (Vec2{400, 300}) || !m.Player.LastMove.IsZero() {
		t.Fatalf("player after reset = %+v last move %+v", m.Player.Pos, m.Player.LastMove)
	}
	if m.Ball.Pos != (Vec2{400, 350}) || !m.Ball.Vel.IsZero() {
		t.Fatalf("ball after reset = %+v vel %+v", m.Ball.Pos, m.Ball.Vel)
	}
	if len(m.Trail.Particles) != 0 || len(m.Impacts.Particles) != 0 {
		t.Fatalf("effects survived reset: trail=%d sparks=%d", len(m.Trail.Particles), len(m.Impacts.Particles))
	}
	if m.Frame != 0 || m.Kicks != 0 {
		t.Fatalf("counters after reset: frame=%d kicks=%d", m.Frame, m.Kicks)
	}
}

func TestMatchStopClearsEffects(t *testing.T) {
	m := NewMatch(DefaultBounds())
	m.Ball.Pos = m.Player.Pos
	m.Step(MoveInput{})
	m.Step(MoveInput{})

	m.Stop()

	if len(m.Trail.Particles) != 0 || len(m.Impacts.Particles) != 0 {
		t.Fatalf("effects survived stop: trail=%d sparks=%d", len(m.Trail.Particles), len(m.Impacts.Particles))
	}
}
