package soccer

// Player constants
const (
	PlayerRadius = 20.0
	PlayerSpeed  = 5.0 // units per frame
)

// MoveInput is the set of directional keys held this frame
type MoveInput struct {
	Left  bool // Left arrow or A
	Right bool // Right arrow or D
	Up    bool // Up arrow or W
	Down  bool // Down arrow or S
}

// Axes converts held keys into per-axis deltas. Opposing keys do not
// cancel: Right overwrites Left and Down overwrites Up.
func (in MoveInput) Axes(speed float64) (dx, dy float64) {
	if in.Left {
		dx = -speed
	}
	if in.Right {
		dx = speed
	}
	if in.Up {
		dy = -speed
	}
	if in.Down {
		dy = speed
	}
	return dx, dy
}

// Player is the controllable circle
type Player struct {
	Pos    Vec2
	Radius float64
	Speed  float64

	// LastMove is the raw delta requested by the latest Update, before
	// any boundary rejection. It only feeds KickDirection.
	LastMove Vec2

	bounds Bounds
}

// NewPlayer creates a player at (x, y) inside bounds
func NewPlayer(x, y float64, bounds Bounds) *Player {
	return &Player{
		Pos:    Vec2{x, y},
		Radius: PlayerRadius,
		Speed:  PlayerSpeed,
		bounds: bounds,
	}
}

// Center returns the player position
func (p *Player) Center() Vec2 {
	return p.Pos
}

// CollisionRadius returns the player radius
func (p *Player) CollisionRadius() float64 {
	return p.Radius
}

// Update moves the player by one frame of input. Each axis is committed
// only when its candidate coordinate stays inside the player range, so
// the player slides along a wall when moving diagonally into it.
func (p *Player) Update(input MoveInput) {
	dx, dy := input.Axes(p.Speed)

	newX := p.Pos.X + dx
	newY := p.Pos.Y + dy

	if newX >= p.bounds.PlayerMinX() && newX <= p.bounds.PlayerMaxX() {
		p.Pos.X = newX
	}
	if newY >= p.bounds.PlayerMinY() && newY <= p.bounds.PlayerMaxY() {
		p.Pos.Y = newY
	}

	p.LastMove = Vec2{dx, dy}
}

// CollidesWith reports whether the player overlaps other. Circles that
// exactly touch do not collide.
func (p *Player) CollidesWith(other Circle) bool {
	distance := p.Pos.Sub(other.Center()).Length()
	return distance < p.Radius+other.CollisionRadius()
}

// KickDirection returns the unit direction of the last move, or a
// rightward kick when the player has not moved.
func (p *Player) KickDirection() Vec2 {
	if p.LastMove.IsZero() {
		return Vec2{1, 0}
	}
	return p.LastMove.Normalize()
}
