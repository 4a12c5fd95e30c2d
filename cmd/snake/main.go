//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"gridsnake/internal/app"
	"gridsnake/internal/snake"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sc, err := cfg.SnakeConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger, closer, err := cfg.Logger()
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	sim, err := snake.NewSim(sc, logger)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.TPS, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("gridsnake")
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
