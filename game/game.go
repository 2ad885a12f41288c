package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"kidsoccer/soccer"
)

// Game owns the match and everything needed to drive it from ebiten.
// It is the single context for a running process; there is no package
// level state.
type Game struct {
	config   Config
	match    *soccer.Match
	renderer *Renderer
	input    InputSource
	debug    DebugState
	monitor  *FrameMonitor

	// tps reports the measured tick rate
	tps func() float64

	running bool
}

// NewGame creates a game reading from the keyboard
func NewGame(config Config) *Game {
	return NewGameWithInput(config, NewKeyboardInput())
}

// NewGameWithInput creates a game driven by the given input source
func NewGameWithInput(config Config, input InputSource) *Game {
	return &Game{
		config:   config,
		match:    soccer.NewMatch(config.Bounds()),
		renderer: NewRenderer(),
		input:    input,
		monitor:  NewFrameMonitor(config.LowTPSThreshold, time.Now()),
		tps:      ebiten.ActualTPS,
		running:  true,
	}
}

// Match returns the simulation driven by this game
func (g *Game) Match() *soccer.Match {
	return g.match
}

// Running reports whether the loop should keep going
func (g *Game) Running() bool {
	return g.running
}

// Update polls for quit and restart, then advances the match by one
// frame. Either request takes the place of that frame's simulation.
func (g *Game) Update() error {
	if !g.running {
		return ebiten.Termination
	}
	if g.input.QuitRequested() {
		g.running = false
		log.Println("Quit requested, stopping game loop")
		return ebiten.Termination
	}

	if g.input.RestartRequested() {
		g.match.Reset()
		log.Println("Match restarted")
		return nil
	}

	if g.input.DebugToggled() {
		g.debug.Toggle()
	}

	g.match.Step(g.input.Movement())

	g.monitor.Record(g.tps(), time.Now())
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.match)
	if g.debug.ShowOverlay {
		drawDebug(screen, g.match, g.tps())
	}
}

// Layout returns the game's fixed canvas size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// Close tears down the game after the loop exits. Further Update calls
// return ebiten.Termination.
func (g *Game) Close() {
	g.running = false
	g.match.Stop()
	log.Printf("Game closed after %d frames, %d kicks", g.match.Frame, g.match.Kicks)
}
