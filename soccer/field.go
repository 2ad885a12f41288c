package soccer

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Field markings
const (
	CenterCircleRadius = 80.0
	LineWidth          = 3.0
	GoalDepth          = 30.0
	GoalHeight         = 150.0
)

// Rect is an axis-aligned rectangle with its top-left corner at X, Y
type Rect struct {
	X, Y, W, H float64
}

// Field describes the pitch markings. It has no collision or scoring
// semantics; goals are decoration only.
type Field struct {
	Width  float64
	Height float64

	LineColor color.Color
	GoalColor color.Color

	bounds Bounds
}

// NewField creates the field for bounds
func NewField(bounds Bounds) *Field {
	return &Field{
		Width:     bounds.Width,
		Height:    bounds.Height,
		LineColor: colornames.White,
		GoalColor: colornames.Yellow,
		bounds:    bounds,
	}
}

// CenterCircle returns the center and radius of the center circle
func (f *Field) CenterCircle() (Vec2, float64) {
	return f.bounds.Center(), CenterCircleRadius
}

// CenterLine returns the endpoints of the halfway line
func (f *Field) CenterLine() (Vec2, Vec2) {
	return Vec2{f.Width / 2, 0}, Vec2{f.Width / 2, f.Height}
}

// Border returns the touchline rectangle
func (f *Field) Border() Rect {
	m := f.bounds.Margin
	return Rect{X: m, Y: m, W: f.Width - 2*m, H: f.Height - 2*m}
}

// LeftGoal returns the goal marker on the left touchline
func (f *Field) LeftGoal() Rect {
	return Rect{X: f.bounds.Margin, Y: f.goalTop(), W: GoalDepth, H: GoalHeight}
}

// RightGoal returns the goal marker on the right touchline
func (f *Field) RightGoal() Rect {
	return Rect{X: f.Width - f.bounds.Margin - GoalDepth, Y: f.goalTop(), W: GoalDepth, H: GoalHeight}
}

func (f *Field) goalTop() float64 {
	return (f.Height - GoalHeight) / 2
}
