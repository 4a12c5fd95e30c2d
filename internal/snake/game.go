// Package snake implements the deterministic state machine behind a grid
// snake game. A Game is advanced one cell per Tick by an external driver and
// steered between ticks with ChangeDirection.
package snake

import (
	"errors"
	"fmt"
	"log"

	"gridsnake/internal/core"
	rng "gridsnake/pkg/core"
)

// DefaultSeed seeds the random source when none is injected.
const DefaultSeed int64 = 42

// ErrInvalidDimensions is returned when a board is not at least 1x1.
var ErrInvalidDimensions = errors.New("snake: board dimensions must be positive")

// Rand supplies uniformly distributed indices in [0, n) for n > 0.
type Rand interface {
	IntN(n int) int
}

// Outcome reports what a single Tick did.
type Outcome uint8

const (
	// OutcomeIdle means the game was already finished and nothing changed.
	OutcomeIdle Outcome = iota
	// OutcomeMoved means the snake advanced without eating.
	OutcomeMoved
	// OutcomeAte means the snake ate, grew by one and food was relocated.
	OutcomeAte
	// OutcomeCollided means the head ran into the body and the game ended.
	OutcomeCollided
	// OutcomeFilled means the last free cell was eaten and the game ended.
	OutcomeFilled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeCollided:
		return "collided"
	case OutcomeFilled:
		return "filled"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// Terminal reports whether the outcome ended the game.
func (o Outcome) Terminal() bool {
	return o == OutcomeCollided || o == OutcomeFilled
}

// Option configures a Game at construction.
type Option func(*Game)

// WithRand injects the random source used for food placement.
func WithRand(r Rand) Option {
	return func(g *Game) {
		if r != nil {
			g.rng = r
		}
	}
}

// WithLogger enables diagnostic output. A nil logger keeps the game silent.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

const occupied uint8 = 1

// Game is the complete state of one snake game. It is not safe for
// concurrent use; drivers must serialize ChangeDirection and Tick.
type Game struct {
	width, height int

	body body
	occ  *core.ByteGrid

	direction Direction
	next      Direction

	food     Position
	finished bool
	score    int

	rng  Rand
	log  *log.Logger
	free []Position
}

// New starts a game on a width x height board. The snake is a single segment
// three cells from the right edge on the middle row, heading left towards
// food two cells from the left edge.
func New(width, height int, opts ...Option) (*Game, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	g := alloc(width, height, opts)
	g.push(Position{X: max(width-3, 0), Y: height / 2})
	g.direction = Left
	g.next = Left
	g.food = Position{X: min(2, width-1), Y: height / 2}
	return g, nil
}

func alloc(width, height int, opts []Option) *Game {
	g := &Game{
		width:  width,
		height: height,
		body:   newBody(width * height),
		occ:    core.NewByteGrid(width, height),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rng.NewRNG(DefaultSeed)
	}
	return g
}

// ChangeDirection queues d for the next tick. Requests equal to the current
// heading or reversing it are dropped, as is any request once the game has
// finished. A later accepted request replaces an earlier pending one. The
// return value reports whether d was accepted.
func (g *Game) ChangeDirection(d Direction) bool {
	if g.finished || !d.Valid() {
		return false
	}
	if d == g.direction || d == g.direction.Opposite() {
		return false
	}
	g.next = d
	return true
}

// Tick advances the game by one cell.
func (g *Game) Tick() Outcome {
	if g.finished || g.body.len() == 0 {
		return OutcomeIdle
	}
	g.direction = g.next

	step := g.body.head().Step(g.direction)
	head, wrapped := g.wrap(step)
	if wrapped {
		g.logf("wrap %v -> %v heading %v", step, head, g.direction)
	}

	// The tail has not moved yet, so stepping onto it is a collision too.
	if g.occ.At(head.X, head.Y) == occupied {
		g.finished = true
		g.logf("collision at %v, length %d, score %d", head, g.body.len(), g.score)
		return OutcomeCollided
	}

	if head != g.food {
		tail := g.body.popBack()
		g.occ.Set(tail.X, tail.Y, 0)
		g.push(head)
		return OutcomeMoved
	}

	g.score++
	free := g.freeCells(head)
	if len(free) == 0 {
		// The winning cell stays unoccupied and no food is placed.
		g.finished = true
		g.logf("board filled at %v, score %d", head, g.score)
		return OutcomeFilled
	}
	g.food = free[g.rng.IntN(len(free))]
	g.push(head)
	return OutcomeAte
}

// Neighbor returns the cell a head at p would enter moving d, wrapping at the
// board edges the same way Tick does.
func (g *Game) Neighbor(p Position, d Direction) Position {
	n, _ := g.wrap(p.Step(d))
	return n
}

// wrap maps a cell one step off the board onto the opposite edge. Leaving the
// board never kills the snake.
func (g *Game) wrap(p Position) (Position, bool) {
	x, y, wrapped := g.occ.Wrap(p.X, p.Y)
	return Position{X: x, Y: y}, wrapped
}

func (g *Game) push(p Position) {
	g.body.pushFront(p)
	g.occ.Set(p.X, p.Y, occupied)
}

// freeCells lists unoccupied cells other than skip in row-major order. The
// returned slice is reused across calls.
func (g *Game) freeCells(skip Position) []Position {
	g.free = g.free[:0]
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.occ.At(x, y) == occupied || (x == skip.X && y == skip.Y) {
				continue
			}
			g.free = append(g.free, Position{X: x, Y: y})
		}
	}
	return g.free
}

func (g *Game) logf(format string, args ...any) {
	if g.log == nil {
		return
	}
	g.log.Printf(format, args...)
}

// Width returns the board width.
func (g *Game) Width() int { return g.width }

// Height returns the board height.
func (g *Game) Height() int { return g.height }

// Len returns the number of body segments.
func (g *Game) Len() int { return g.body.len() }

// Head returns the first body segment. It reports false for an empty body.
func (g *Game) Head() (Position, bool) {
	if g.body.len() == 0 {
		return Position{}, false
	}
	return g.body.head(), true
}

// Body returns a copy of the segments, head first.
func (g *Game) Body() []Position { return g.body.positions() }

// Occupied reports whether p is covered by the body.
func (g *Game) Occupied(p Position) bool { return g.occ.At(p.X, p.Y) == occupied }

// Direction returns the heading applied on the most recent tick.
func (g *Game) Direction() Direction { return g.direction }

// NextDirection returns the heading the next tick will apply.
func (g *Game) NextDirection() Direction { return g.next }

// Food returns the food cell.
func (g *Game) Food() Position { return g.food }

// Score returns the number of food items eaten.
func (g *Game) Score() int { return g.score }

// Finished reports whether the game has ended.
func (g *Game) Finished() bool { return g.finished }
