package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"kidsoccer/soccer"
)

// DebugState holds debug flags owned by a single game
type DebugState struct {
	ShowOverlay bool // Show entity state and frame counters
}

// Toggle flips the overlay on or off
func (d *DebugState) Toggle() {
	d.ShowOverlay = !d.ShowOverlay
}

// debugText formats the overlay contents
func debugText(m *soccer.Match, tps float64) string {
	p, b := m.Player, m.Ball
	return fmt.Sprintf(
		"TPS: %0.1f | Frame: %d | Kicks: %d\nPlayer: (%0.1f, %0.1f) last move (%0.0f, %0.0f)\nBall: (%0.1f, %0.1f) vel (%0.2f, %0.2f) trail %d sparks %d\nF1: toggle overlay | R: restart | Esc: quit",
		tps, m.Frame, m.Kicks,
		p.Pos.X, p.Pos.Y, p.LastMove.X, p.LastMove.Y,
		b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y, len(m.Trail.Particles), len(m.Impacts.Particles),
	)
}

// drawDebug draws the debug overlay in the top-left corner
func drawDebug(screen *ebiten.Image, m *soccer.Match, tps float64) {
	ebitenutil.DebugPrint(screen, debugText(m, tps))
}
