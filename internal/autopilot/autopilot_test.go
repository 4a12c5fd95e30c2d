package autopilot

import (
	"testing"

	"gridsnake/internal/snake"
	rng "gridsnake/pkg/core"
)

func TestDistanceWraps(t *testing.T) {
	cases := []struct {
		a, b snake.Position
		want int
	}{
		{snake.Position{X: 0, Y: 0}, snake.Position{X: 2, Y: 1}, 3},
		{snake.Position{X: 0, Y: 0}, snake.Position{X: 9, Y: 0}, 1},
		{snake.Position{X: 1, Y: 0}, snake.Position{X: 1, Y: 7}, 1},
	}
	for _, tc := range cases {
		if got := Distance(tc.a, tc.b, 10, 8); got != tc.want {
			t.Fatalf("Distance(%v, %v) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestChooseAvoidsBody(t *testing.T) {
	// Heading left with the food straight ahead, but the cell ahead is body.
	g, err := snake.Restore(snake.Snapshot{
		Width: 7, Height: 7,
		Body: []snake.Position{
			{X: 3, Y: 3}, {X: 3, Y: 4}, {X: 2, Y: 4}, {X: 1, Y: 4}, {X: 1, Y: 3}, {X: 2, Y: 3},
		},
		Direction: snake.Up, Pending: snake.Up,
		Food:      snake.Position{X: 0, Y: 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	p := New(rng.NewRNG(1))
	for i := 0; i < 20; i++ {
		d := p.Choose(g)
		if g.Occupied(g.Neighbor(snake.Position{X: 3, Y: 3}, d)) {
			t.Fatalf("pilot chose %v into the body", d)
		}
	}
}

func TestPilotEatsOnOpenBoard(t *testing.T) {
	g, err := snake.New(12, 12, snake.WithRand(rng.NewRNG(8)))
	if err != nil {
		t.Fatal(err)
	}
	p := New(rng.NewRNG(8))
	for i := 0; i < 400 && !g.Finished(); i++ {
		g.ChangeDirection(p.Choose(g))
		g.Tick()
	}
	if g.Score() < 3 {
		t.Fatalf("greedy pilot only scored %d on an open board", g.Score())
	}
}
