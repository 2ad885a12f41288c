package game

import "kidsoccer/soccer"

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the canvas width in pixels
	ScreenWidth int

	// ScreenHeight is the canvas height in pixels
	ScreenHeight int

	// FieldMargin is the inset of the touchlines from the canvas edge
	FieldMargin float64

	// TPS is the target number of updates per second
	TPS int

	// Title is the window title
	Title string

	// LowTPSThreshold is the measured TPS below which the frame monitor warns
	LowTPSThreshold float64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:     800,
		ScreenHeight:    600,
		FieldMargin:     20,
		TPS:             60,
		Title:           "Kids Soccer Game!",
		LowTPSThreshold: 55,
	}
}

// Bounds returns the field bounds shared by the ball, the player and the field
func (c Config) Bounds() soccer.Bounds {
	return soccer.Bounds{
		Width:  float64(c.ScreenWidth),
		Height: float64(c.ScreenHeight),
		Margin: c.FieldMargin,
	}
}
