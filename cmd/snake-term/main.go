package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"gridsnake/internal/app"
	"gridsnake/internal/snake"
	"gridsnake/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "snake-term: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *app.Config) error {
	sc, err := cfg.SnakeConfig()
	if err != nil {
		return err
	}
	// stderr is covered by the screen, so -v alone stays quiet here.
	cfg.Verbose = false
	logger, closer, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer closer.Close()

	sim, err := snake.NewSim(sc, logger)
	if err != nil {
		return err
	}

	var sound *term.Sound
	if cfg.Sound {
		sound, err = term.NewSound()
		if err != nil {
			// Non-fatal, the game runs without sound.
			if logger != nil {
				logger.Printf("audio initialization failed: %v", err)
			}
			sound = nil
		}
		defer sound.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	w, h := screen.Size()
	if w < 2*sc.Width+2 || h < sc.Height+3 {
		return fmt.Errorf("terminal is %dx%d, a %dx%d board needs %dx%d", w, h, sc.Width, sc.Height, 2*sc.Width+2, sc.Height+3)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := term.NewSession(screen, sim, term.Options{
		TPS:    cfg.TPS,
		FPS:    cfg.FPS,
		Sound:  sound,
		Logger: logger,
	})
	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
