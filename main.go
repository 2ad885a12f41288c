package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"kidsoccer/game"
)

func main() {
	config := game.DefaultConfig()
	g := game.NewGame(config)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TPS)

	log.Printf("Starting game loop at %d TPS", config.TPS)

	err := ebiten.RunGame(g)
	g.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
