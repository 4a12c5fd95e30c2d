package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"gridsnake/internal/autopilot"
	"gridsnake/internal/snake"
	rng "gridsnake/pkg/core"
)

type gameResult struct {
	seed     int64
	score    int
	ticks    int
	outcome  snake.Outcome
	maxLen   int
	timedOut bool
}

func main() {
	width := flag.Int("w", 15, "board width")
	height := flag.Int("h", 15, "board height")
	games := flag.Int("games", 200, "number of games to play")
	firstSeed := flag.Int64("seed", 1, "seed of the first game; game i uses seed+i")
	maxTicks := flag.Int("ticks", 20000, "tick limit per game")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	verbose := flag.Bool("v", false, "print every game")
	replayMoves := flag.String("replay", "", "comma-separated moves (up,l,d,...) to replay one game on -seed, one per tick")
	flag.Parse()

	cfg := snake.Config{Width: *width, Height: *height, Seed: *firstSeed}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *replayMoves != "" {
		moves, err := parseMoves(*replayMoves)
		if err != nil {
			log.Fatal(err)
		}
		res := replay(cfg, moves)
		fmt.Printf("seed=%d score=%d length=%d ticks=%d end=%v\n", res.seed, res.score, res.maxLen, res.ticks, res.outcome)
		return
	}
	if *workers < 1 {
		*workers = 1
	}

	fmt.Printf("Playing %d games on %dx%d (%d workers, %d tick limit)\n", *games, cfg.Width, cfg.Height, *workers, *maxTicks)

	jobs := make(chan int64)
	results := make(chan gameResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- play(cfg, seed, *maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *games; i++ {
			jobs <- *firstSeed + int64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []gameResult
	wins, timeouts := 0, 0
	for res := range results {
		all = append(all, res)
		if res.outcome == snake.OutcomeFilled {
			wins++
		}
		if res.timedOut {
			timeouts++
		}
		if *verbose {
			fmt.Printf("seed=%d score=%d ticks=%d end=%v\n", res.seed, res.score, res.ticks, res.outcome)
		}
	}
	if len(all) == 0 {
		return
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].score != all[j].score {
			return all[i].score > all[j].score
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(start)

	total := 0
	for _, res := range all {
		total += res.score
	}
	fmt.Printf("\nTop 5 games (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 5; i++ {
		res := all[i]
		fmt.Printf("%2d) seed=%d score=%d length=%d ticks=%d end=%v\n", i+1, res.seed, res.score, res.maxLen, res.ticks, res.outcome)
	}
	fmt.Printf("\nmean=%.2f median=%d worst=%d cleared=%d timeouts=%d\n",
		float64(total)/float64(len(all)), all[len(all)/2].score, all[len(all)-1].score, wins, timeouts)
}

func play(cfg snake.Config, seed int64, maxTicks int) gameResult {
	g, err := snake.New(cfg.Width, cfg.Height, snake.WithRand(rng.NewRNG(seed)))
	if err != nil {
		log.Fatal(err)
	}
	pilot := autopilot.New(rng.NewRNG(seed ^ 0x5eed))

	res := gameResult{seed: seed, maxLen: g.Len()}
	for res.ticks < maxTicks {
		g.ChangeDirection(pilot.Choose(g))
		out := g.Tick()
		res.ticks++
		if g.Len() > res.maxLen {
			res.maxLen = g.Len()
		}
		if out.Terminal() {
			res.outcome = out
			break
		}
	}
	res.score = g.Score()
	res.timedOut = !g.Finished()
	return res
}

func parseMoves(s string) ([]snake.Direction, error) {
	var moves []snake.Direction
	for _, f := range strings.Split(s, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}
		d, err := snake.ParseDirection(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, d)
	}
	return moves, nil
}

// replay steers one game seeded with cfg.Seed through moves, one request per
// tick, and stops early when the game ends.
func replay(cfg snake.Config, moves []snake.Direction) gameResult {
	g, err := snake.New(cfg.Width, cfg.Height, snake.WithRand(rng.NewRNG(cfg.Seed)))
	if err != nil {
		log.Fatal(err)
	}
	res := gameResult{seed: cfg.Seed, maxLen: g.Len()}
	for _, d := range moves {
		g.ChangeDirection(d)
		out := g.Tick()
		res.ticks++
		if g.Len() > res.maxLen {
			res.maxLen = g.Len()
		}
		if out.Terminal() {
			res.outcome = out
			break
		}
	}
	res.score = g.Score()
	return res
}
