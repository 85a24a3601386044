package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"paddleclash/game"
)

func main() {
	config := game.DefaultConfig()
	g := game.NewGame(config)

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
