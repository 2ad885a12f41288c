package soccer

// Bounds describes the playing field shared by the ball, the player and
// the field drawing. Ball walls sit one margin in from the canvas edge,
// the player is held one further margin inside.
type Bounds struct {
	Width  float64
	Height float64
	Margin float64
}

// DefaultBounds returns the 800x600 reference layout with a 20 unit margin
func DefaultBounds() Bounds {
	return Bounds{
		Width:  800,
		Height: 600,
		Margin: 20,
	}
}

// Center returns the middle of the canvas
func (b Bounds) Center() Vec2 {
	return Vec2{b.Width / 2, b.Height / 2}
}

// WallMinX is the left wall the ball bounces off
func (b Bounds) WallMinX() float64 { return b.Margin }

// WallMaxX is the right wall the ball bounces off
func (b Bounds) WallMaxX() float64 { return b.Width - b.Margin }

// WallMinY is the top wall the ball bounces off
func (b Bounds) WallMinY() float64 { return b.Margin }

// WallMaxY is the bottom wall the ball bounces off
func (b Bounds) WallMaxY() float64 { return b.Height - b.Margin }

// PlayerMinX is the lowest x a player center may take
func (b Bounds) PlayerMinX() float64 { return 2 * b.Margin }

// PlayerMaxX is the highest x a player center may take
func (b Bounds) PlayerMaxX() float64 { return b.Width - 2*b.Margin }

// PlayerMinY is the lowest y a player center may take
func (b Bounds) PlayerMinY() float64 { return 2 * b.Margin }

// PlayerMaxY is the highest y a player center may take
func (b Bounds) PlayerMaxY() float64 { return b.Height - 2*b.Margin }
