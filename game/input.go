package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"kidsoccer/soccer"
)

// InputSource provides the per-frame control state to the game loop
type InputSource interface {
	// Movement returns the directional keys currently held
	Movement() soccer.MoveInput

	// QuitRequested returns true if the window is closing or Escape was pressed
	QuitRequested() bool

	// RestartRequested returns true on the frame the restart key goes down
	RestartRequested() bool

	// DebugToggled returns true on the frame the debug key goes down
	DebugToggled() bool
}

// KeyboardInput reads the keyboard through ebiten
type KeyboardInput struct{}

// NewKeyboardInput creates a new keyboard input source
func NewKeyboardInput() *KeyboardInput {
	return &KeyboardInput{}
}

// Movement returns movement based on arrow keys or WASD
func (k *KeyboardInput) Movement() soccer.MoveInput {
	return soccer.MoveInput{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
	}
}

// QuitRequested checks the window close button and the Escape key
func (k *KeyboardInput) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// DebugToggled returns true when F1 was just pressed
func (k *KeyboardInput) DebugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1)
}

// RestartRequested returns true when R was just pressed
func (k *KeyboardInput) RestartRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
