package snake

import (
	"log"
	"strconv"

	"gridsnake/internal/core"
	rng "gridsnake/pkg/core"
)

// Values of the "state" parameter.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateOver    = "game over"
)

// Sim wraps a Game for the rendering drivers: it owns the seed, restarts the
// game on Reset and keeps a display buffer in sync with the board.
type Sim struct {
	cfg  Config
	seed int64
	log  *log.Logger

	game    *Game
	display *core.ByteGrid
	last    Outcome
	dirty   bool
}

// NewSim validates cfg and starts a game seeded with cfg.Seed.
func NewSim(cfg Config, logger *log.Logger) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Sim{
		cfg:     cfg,
		log:     logger,
		display: core.NewByteGrid(cfg.Width, cfg.Height),
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "snake" }

// Size reports the board dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Reset starts a fresh game. A zero seed falls back to the configured one.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed
	// cfg was validated in NewSim, so New cannot fail here.
	g, err := New(s.cfg.Width, s.cfg.Height, WithRand(rng.NewRNG(seed)), WithLogger(s.log))
	if err != nil {
		panic(err)
	}
	s.game = g
	s.last = OutcomeIdle
	s.dirty = true
}

// Step advances the game by one tick.
func (s *Sim) Step() { s.Tick() }

// Tick advances the game and returns what the move did. Idle ticks on a
// finished game leave LastOutcome alone so a win stays visible until Reset.
func (s *Sim) Tick() Outcome {
	out := s.game.Tick()
	if out != OutcomeIdle {
		s.last = out
		s.dirty = true
	}
	return out
}

// Steer forwards a direction request to the game.
func (s *Sim) Steer(d Direction) bool { return s.game.ChangeDirection(d) }

// Cells exposes the display buffer, repainted lazily after state changes.
func (s *Sim) Cells() []uint8 {
	if s.dirty {
		s.paint()
		s.dirty = false
	}
	return s.display.Cells()
}

// Game exposes the running game.
func (s *Sim) Game() *Game { return s.game }

// LastOutcome returns the result of the most recent tick that changed the
// game, or OutcomeIdle after Reset.
func (s *Sim) LastOutcome() Outcome { return s.last }

// Seed returns the seed of the running game.
func (s *Sim) Seed() int64 { return s.seed }

// Parameters describes the board and the running game for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	g := s.game
	state := StatePlaying
	switch {
	case s.last == OutcomeFilled:
		state = StateWon
	case g.Finished():
		state = StateOver
	}
	s.Cells()
	free := s.display.Count(CellEmpty)
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.seed, 10)},
			},
		},
		{
			Name: "Game",
			Params: []core.Parameter{
				intParam("score", "Score", g.Score()),
				intParam("length", "Length", g.Len()),
				intParam("free", "Free cells", free),
				{Key: "direction", Label: "Heading", Type: core.ParamTypeString, Value: g.Direction().String()},
				{Key: "state", Label: "State", Type: core.ParamTypeString, Value: state},
				{Key: "finished", Label: "Finished", Type: core.ParamTypeBool, Value: strconv.FormatBool(g.Finished())},
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}
