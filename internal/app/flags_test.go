package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gridsnake/internal/snake"
)

func TestConfigBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "20", "-h", "12", "-seed", "9", "-tps", "5", "-v"}); err != nil {
		t.Fatal(err)
	}
	sc, err := cfg.SnakeConfig()
	if err != nil {
		t.Fatal(err)
	}
	if sc != (snake.Config{Width: 20, Height: 12, Seed: 9}) {
		t.Fatalf("SnakeConfig = %+v", sc)
	}
	if cfg.TPS != 5 || !cfg.Verbose {
		t.Fatalf("tps=%d verbose=%v", cfg.TPS, cfg.Verbose)
	}
}

func TestSnakeConfigRejectsBadSize(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 0
	if _, err := cfg.SnakeConfig(); !errors.Is(err, snake.ErrInvalidDimensions) {
		t.Fatalf("SnakeConfig error = %v, want ErrInvalidDimensions", err)
	}
}

func TestLogger(t *testing.T) {
	cfg := NewConfig()
	l, closer, err := cfg.Logger()
	if err != nil || l != nil || closer == nil {
		t.Fatalf("quiet config: logger=%v closer=%v err=%v", l, closer, err)
	}

	cfg.LogPath = filepath.Join(t.TempDir(), "snake.log")
	l, closer, err = cfg.Logger()
	if err != nil {
		t.Fatal(err)
	}
	l.Printf("hello %d", 1)
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(cfg.LogPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello 1") {
		t.Fatalf("log file = %q", data)
	}
}

func TestStatus(t *testing.T) {
	sim, err := snake.NewSim(snake.Config{Width: 6, Height: 3, Seed: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := Status(sim, false); got != "score 0" {
		t.Fatalf("Status = %q", got)
	}
	if got := Status(sim, true); !strings.HasPrefix(got, "paused") {
		t.Fatalf("paused Status = %q", got)
	}
	sim.Step() // eats the food next to the start cell
	if got := Status(sim, false); got != "score 1" {
		t.Fatalf("Status after eating = %q", got)
	}
}

func TestStatusKeepsWin(t *testing.T) {
	sim, err := snake.NewSim(snake.Config{Width: 2, Height: 1, Seed: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	sim.Step() // clears the 2x1 board
	sim.Step()
	sim.Step()
	if got := Status(sim, false); !strings.HasPrefix(got, "board cleared! score 1") {
		t.Fatalf("Status after the win = %q", got)
	}
}

func TestStatusGameOver(t *testing.T) {
	sim, err := snake.NewSim(snake.Config{Width: 1, Height: 1, Seed: 1}, nil)
	if err != nil {
		t.Fatal(err)
	}
	sim.Step()
	if got := Status(sim, false); !strings.HasPrefix(got, "game over") {
		t.Fatalf("Status = %q", got)
	}
}
