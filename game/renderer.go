package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"kidsoccer/soccer"
)

// Colors
var (
	colorGrass      = colornames.Forestgreen
	colorPlayer     = color.RGBA{0, 100, 255, 255}
	colorBall       = colornames.White
	colorBallShadow = color.RGBA{200, 200, 200, 255}
	colorBallLines  = colornames.Black
	colorEyeWhite   = colornames.White
	colorPupil      = colornames.Black
)

// Sprite geometry
const (
	ballShadowOffset  = 3.0
	ballOutlineWidth  = 2.0
	ballPatchCount    = 5
	ballPatchRadius   = 2.0
	playerEyeOffsetX  = 6.0
	playerEyeOffsetY  = -5.0
	playerEyeRadius   = 3.0
	playerPupilRadius = 1.0
	trailMaxOpacity   = 0.6
)

// Renderer draws a match onto the screen
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render clears the screen and draws the field, then the player, then the ball
func (r *Renderer) Render(screen *ebiten.Image, m *soccer.Match) {
	screen.Fill(colorGrass)
	r.drawField(screen, m.Field)
	r.drawPlayer(screen, m.Player)
	r.drawTrail(screen, m.Trail)
	r.drawBall(screen, m.Ball)
	r.drawImpacts(screen, m.Impacts)
}

// drawField draws the center circle, halfway line, touchlines and goals
func (r *Renderer) drawField(screen *ebiten.Image, f *soccer.Field) {
	center, radius := f.CenterCircle()
	vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(radius), soccer.LineWidth, f.LineColor, true)

	top, bottom := f.CenterLine()
	vector.StrokeLine(screen, float32(top.X), float32(top.Y), float32(bottom.X), float32(bottom.Y), soccer.LineWidth, f.LineColor, true)

	strokeRect(screen, f.Border(), f.LineColor)
	strokeRect(screen, f.LeftGoal(), f.GoalColor)
	strokeRect(screen, f.RightGoal(), f.GoalColor)
}

// drawPlayer draws the player body with a simple face
func (r *Renderer) drawPlayer(screen *ebiten.Image, p *soccer.Player) {
	x, y := float32(p.Pos.X), float32(p.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius), colorPlayer, true)

	eyeY := y + playerEyeOffsetY
	for _, eyeX := range []float32{x - playerEyeOffsetX, x + playerEyeOffsetX} {
		vector.DrawFilledCircle(screen, eyeX, eyeY, playerEyeRadius, colorEyeWhite, true)
		vector.DrawFilledCircle(screen, eyeX, eyeY, playerPupilRadius, colorPupil, true)
	}
}

// drawBall draws the ball shadow, body, outline and patch pattern
func (r *Renderer) drawBall(screen *ebiten.Image, b *soccer.Ball) {
	x, y, radius := float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius)

	vector.DrawFilledCircle(screen, x+ballShadowOffset, y+ballShadowOffset, radius, colorBallShadow, true)
	vector.DrawFilledCircle(screen, x, y, radius, colorBall, true)
	vector.StrokeCircle(screen, x, y, radius, ballOutlineWidth, colorBallLines, true)

	patchDist := math.Floor(b.Radius / 2)
	for i := 0; i < ballPatchCount; i++ {
		angle := float64(i) * 2 * math.Pi / ballPatchCount
		px := b.Pos.X + math.Cos(angle)*patchDist
		py := b.Pos.Y + math.Sin(angle)*patchDist
		vector.DrawFilledCircle(screen, float32(px), float32(py), ballPatchRadius, colorBallLines, true)
	}
}

// drawTrail draws fading marks behind a fast ball
func (r *Renderer) drawTrail(screen *ebiten.Image, t *soccer.Trail) {
	for _, p := range t.Particles {
		alpha := p.Alpha()
		clr := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * alpha * trailMaxOpacity)}
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size*alpha), clr, true)
	}
}

// drawImpacts draws the sparks thrown off by kicks
func (r *Renderer) drawImpacts(screen *ebiten.Image, im *soccer.Impacts) {
	for _, p := range im.Particles {
		clr := color.NRGBA{R: 255, G: 255, B: 255, A: uint8(255 * p.Alpha())}
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Size), clr, true)
	}
}

// strokeRect draws a rectangle outline with the field line width
func strokeRect(screen *ebiten.Image, rect soccer.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.W), float32(rect.H), soccer.LineWidth, clr, true)
}
