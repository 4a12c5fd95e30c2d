//go:build ebiten

package app

import (
	"log"
	"time"

	"gridsnake/internal/core"
	"gridsnake/internal/render"
	"gridsnake/internal/snake"
	"gridsnake/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Polled in order, so of two keys pressed in one frame the later entry wins.
var steerKeys = []struct {
	key ebiten.Key
	dir snake.Direction
}{
	{ebiten.KeyArrowUp, snake.Up},
	{ebiten.KeyW, snake.Up},
	{ebiten.KeyArrowRight, snake.Right},
	{ebiten.KeyD, snake.Right},
	{ebiten.KeyArrowDown, snake.Down},
	{ebiten.KeyS, snake.Down},
	{ebiten.KeyArrowLeft, snake.Left},
	{ebiten.KeyA, snake.Left},
}

// Game adapts a snake simulation to the ebiten.Game interface.
type Game struct {
	sim     *snake.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	step    *core.FixedStep
	log     *log.Logger

	scale  int
	paused bool
}

// New constructs a Game for the provided simulation. tps is the number of
// snake moves per second, independent of the ebiten frame rate.
func New(sim *snake.Sim, scale, tps int, logger *log.Logger) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(sim, hudWidth),
		step:    core.NewFixedStep(tps),
		log:     logger,
		scale:   scale,
	}
}

// Reset starts a new game with the provided seed.
func (g *Game) Reset(seed int64) {
	g.sim.Reset(seed)
	g.step.Reset()
	g.paused = false
	if g.log != nil {
		g.log.Printf("reset with seed %d", g.sim.Seed())
	}
}

// Update handles per-frame input and advances the snake on its own cadence.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.step.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.sim.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.Reset(time.Now().UnixNano())
	}
	for _, k := range steerKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.sim.Steer(k.dir)
		}
	}

	if !g.paused && g.step.ShouldStep() {
		g.sim.Step()
	}
	g.hud.SetStatus(Status(g.sim, g.paused))
	g.hud.Update()
	return nil
}

// Draw renders the board and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.sim.Palette(), g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, s.H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
