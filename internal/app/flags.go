package app

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"gridsnake/internal/snake"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Width  int
	Height int
	Seed   int64

	Scale int
	TPS   int
	FPS   int

	Verbose bool
	Sound   bool
	LogPath string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	def := snake.DefaultConfig()
	return &Config{
		Width:  def.Width,
		Height: def.Height,
		Seed:   def.Seed,
		Scale:  24,
		TPS:    8,
		FPS:    60,
		Sound:  true,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for food placement")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "snake moves per second")
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second of the render loop")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log game diagnostics")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "play sound effects (terminal only)")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "write diagnostics to this file instead of stderr")
}

// Params renders the board settings as the string map accepted by snake.FromMap.
func (c *Config) Params() map[string]string {
	return map[string]string{
		"w":    strconv.Itoa(c.Width),
		"h":    strconv.Itoa(c.Height),
		"seed": strconv.FormatInt(c.Seed, 10),
	}
}

// SnakeConfig returns the validated board configuration. Unlike FromMap it
// reports non-positive sizes instead of silently using defaults.
func (c *Config) SnakeConfig() (snake.Config, error) {
	sc := snake.Config{Width: c.Width, Height: c.Height, Seed: c.Seed}
	if err := sc.Validate(); err != nil {
		return snake.Config{}, err
	}
	return snake.FromMap(c.Params()), nil
}

// Logger builds the diagnostics logger. It returns a nil logger when neither
// -v nor -log is set. The returned closer is never nil.
func (c *Config) Logger() (*log.Logger, io.Closer, error) {
	if c.LogPath != "" {
		f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
		}
		return log.New(f, "snake: ", log.LstdFlags|log.Lmicroseconds), f, nil
	}
	if c.Verbose {
		return log.New(os.Stderr, "snake: ", log.LstdFlags), io.NopCloser(nil), nil
	}
	return nil, io.NopCloser(nil), nil
}

// Status returns the one-line message a driver shows under the board.
func Status(sim *snake.Sim, paused bool) string {
	g := sim.Game()
	state, _ := sim.Parameters().Lookup("state")
	switch {
	case state.Value == snake.StateWon:
		return fmt.Sprintf("board cleared! score %d - r to restart", g.Score())
	case state.Value == snake.StateOver:
		return fmt.Sprintf("game over, score %d - r to restart", g.Score())
	case paused:
		return "paused - space to resume"
	}
	return fmt.Sprintf("score %d", g.Score())
}
