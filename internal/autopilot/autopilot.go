// Package autopilot steers a snake greedily towards the food.
package autopilot

import (
	"gridsnake/internal/snake"
	rng "gridsnake/pkg/core"
)

var headings = [...]snake.Direction{snake.Up, snake.Right, snake.Down, snake.Left}

// Pilot picks a heading each tick: the safe move that shortens the toroidal
// distance to the food most. Ties are broken randomly so runs with different
// seeds explore different paths.
type Pilot struct {
	rng *rng.RNG
}

// New returns a pilot drawing tie-breaks from r.
func New(r *rng.RNG) *Pilot {
	return &Pilot{rng: r}
}

// Choose returns the heading to request before the next tick. When every
// move collides it keeps the current heading.
func (p *Pilot) Choose(g *snake.Game) snake.Direction {
	head, ok := g.Head()
	if !ok {
		return g.Direction()
	}
	order := headings
	p.rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	best, bestDist := g.Direction(), -1
	for _, d := range order {
		if d == g.Direction().Opposite() {
			continue
		}
		next := g.Neighbor(head, d)
		if g.Occupied(next) {
			continue
		}
		dist := Distance(next, g.Food(), g.Width(), g.Height())
		if bestDist < 0 || dist < bestDist || (dist == bestDist && p.rng.Bool()) {
			best, bestDist = d, dist
		}
	}
	return best
}

// Distance is the Manhattan distance between a and b on a board that wraps
// at its edges.
func Distance(a, b snake.Position, w, h int) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	if dx > w/2 {
		dx = w - dx
	}
	if dy > h/2 {
		dy = h - dy
	}
	return dx + dy
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
