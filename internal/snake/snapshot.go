package snake

import (
	"errors"
	"fmt"
)

// ErrInvalidSnapshot is returned by Restore for states a Game cannot hold.
var ErrInvalidSnapshot = errors.New("snake: invalid snapshot")

// Snapshot is a detached copy of a Game's state.
type Snapshot struct {
	Width, Height int
	Body          []Position
	Direction     Direction
	Pending       Direction
	Food          Position
	Score         int
	Finished      bool
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Width:     g.width,
		Height:    g.height,
		Body:      g.body.positions(),
		Direction: g.direction,
		Pending:   g.next,
		Food:      g.food,
		Score:     g.score,
		Finished:  g.finished,
	}
}

// Restore rebuilds a Game from s. The body must be on the board and free of
// overlaps; an empty body is only accepted for a finished game. The food may
// sit under the body, which New itself produces on some narrow boards.
func Restore(s Snapshot, opts ...Option) (*Game, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, s.Width, s.Height)
	}
	if !s.Direction.Valid() || !s.Pending.Valid() {
		return nil, fmt.Errorf("%w: unknown direction %v/%v", ErrInvalidSnapshot, s.Direction, s.Pending)
	}
	if s.Score < 0 {
		return nil, fmt.Errorf("%w: negative score %d", ErrInvalidSnapshot, s.Score)
	}
	if len(s.Body) == 0 && !s.Finished {
		return nil, fmt.Errorf("%w: active game with empty body", ErrInvalidSnapshot)
	}
	if !inBounds(s.Food, s.Width, s.Height) {
		return nil, fmt.Errorf("%w: food %v outside %dx%d", ErrInvalidSnapshot, s.Food, s.Width, s.Height)
	}

	g := alloc(s.Width, s.Height, opts)
	// Segments are pushed tail first so index 0 ends up as the head.
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		if !inBounds(p, s.Width, s.Height) {
			return nil, fmt.Errorf("%w: segment %d at %v outside %dx%d", ErrInvalidSnapshot, i, p, s.Width, s.Height)
		}
		if g.Occupied(p) {
			return nil, fmt.Errorf("%w: segment %d overlaps body at %v", ErrInvalidSnapshot, i, p)
		}
		g.push(p)
	}
	g.direction = s.Direction
	g.next = s.Pending
	g.food = s.Food
	g.score = s.Score
	g.finished = s.Finished
	return g, nil
}

func inBounds(p Position, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}
