// Package term drives a snake game in a terminal through tcell.
package term

import (
	"context"
	"log"
	"time"

	"gridsnake/internal/app"
	"gridsnake/internal/core"
	"gridsnake/internal/snake"

	"github.com/gdamore/tcell/v2"
)

// CellWriter is the drawing surface a Session renders onto. tcell.Screen
// satisfies it.
type CellWriter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Options tune a Session.
type Options struct {
	TPS    int // snake moves per second
	FPS    int // redraws per second
	Sound  *Sound
	Logger *log.Logger
}

// Session owns the terminal loop for one Sim. All game calls happen on the
// goroutine running Run; input arrives over a channel.
type Session struct {
	screen tcell.Screen
	sim    *snake.Sim
	step   *core.FixedStep
	frame  time.Duration
	sound  *Sound
	log    *log.Logger

	paused bool
	styles []tcell.Style
}

// NewSession prepares a session. The screen must already be initialized.
func NewSession(screen tcell.Screen, sim *snake.Sim, opts Options) *Session {
	s := &Session{
		screen: screen,
		sim:    sim,
		step:   core.NewFixedStep(opts.TPS),
		frame:  core.NewFixedStep(opts.FPS).Interval(),
		sound:  opts.Sound,
		log:    opts.Logger,
	}
	for _, c := range sim.Palette() {
		bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		s.styles = append(s.styles, tcell.StyleDefault.Background(bg))
	}
	return s
}

// Run polls input and advances the game until the player quits or ctx is
// cancelled. It returns nil on a normal quit.
func (s *Session) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.frame)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	s.redraw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !s.handleEvent(ev) {
				return nil
			}
			s.redraw()
		case <-ticker.C:
			if !s.paused && s.step.ShouldStep() {
				s.Advance()
			}
			s.redraw()
		}
	}
}

func (s *Session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

// HandleKey applies one key press. It returns false when the player quits.
func (s *Session) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		s.sim.Steer(snake.Up)
	case tcell.KeyRight:
		s.sim.Steer(snake.Right)
	case tcell.KeyDown:
		s.sim.Steer(snake.Down)
	case tcell.KeyLeft:
		s.sim.Steer(snake.Left)
	case tcell.KeyRune:
		return s.handleRune(r)
	}
	return true
}

func (s *Session) handleRune(r rune) bool {
	switch r {
	case 'q', 'Q':
		return false
	case 'w', 'k':
		s.sim.Steer(snake.Up)
	case 'd', 'l':
		s.sim.Steer(snake.Right)
	case 's', 'j':
		s.sim.Steer(snake.Down)
	case 'a', 'h':
		s.sim.Steer(snake.Left)
	case ' ':
		s.paused = !s.paused
		if !s.paused {
			s.step.Reset()
		}
	case 'r':
		s.restart(s.sim.Seed())
	case 'n':
		s.restart(time.Now().UnixNano())
	}
	return true
}

func (s *Session) restart(seed int64) {
	s.sim.Reset(seed)
	s.step.Reset()
	s.paused = false
	s.logf("restart with seed %d", s.sim.Seed())
}

// Advance moves the game one tick and plays the matching sound.
func (s *Session) Advance() snake.Outcome {
	out := s.sim.Tick()
	switch out {
	case snake.OutcomeAte:
		s.sound.Eat()
	case snake.OutcomeCollided:
		s.sound.Crash()
		s.logf("game over, score %d", s.sim.Game().Score())
	case snake.OutcomeFilled:
		s.sound.Win()
		s.logf("board cleared, score %d", s.sim.Game().Score())
	}
	return out
}

// Paused reports whether ticking is suspended.
func (s *Session) Paused() bool { return s.paused }

func (s *Session) redraw() {
	s.screen.Clear()
	s.Draw(s.screen)
	s.screen.Show()
}

// Draw renders a bordered board with the status line beneath it. Each cell
// is two columns wide so the board looks square in most fonts.
func (s *Session) Draw(w CellWriter) {
	size := s.sim.Size()
	cells := s.sim.Cells()
	right := 2*size.W + 1
	bottom := size.H + 1

	border := tcell.StyleDefault
	w.SetContent(0, 0, tcell.RuneULCorner, nil, border)
	w.SetContent(right, 0, tcell.RuneURCorner, nil, border)
	w.SetContent(0, bottom, tcell.RuneLLCorner, nil, border)
	w.SetContent(right, bottom, tcell.RuneLRCorner, nil, border)
	for x := 1; x < right; x++ {
		w.SetContent(x, 0, tcell.RuneHLine, nil, border)
		w.SetContent(x, bottom, tcell.RuneHLine, nil, border)
	}
	for y := 1; y < bottom; y++ {
		w.SetContent(0, y, tcell.RuneVLine, nil, border)
		w.SetContent(right, y, tcell.RuneVLine, nil, border)
	}

	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			style := s.styleFor(cells[y*size.W+x])
			w.SetContent(1+2*x, 1+y, ' ', nil, style)
			w.SetContent(2+2*x, 1+y, ' ', nil, style)
		}
	}

	drawText(w, 0, bottom+1, app.Status(s.sim, s.paused), tcell.StyleDefault)
}

func (s *Session) styleFor(v uint8) tcell.Style {
	if len(s.styles) == 0 {
		return tcell.StyleDefault
	}
	if int(v) >= len(s.styles) {
		return s.styles[len(s.styles)-1]
	}
	return s.styles[v]
}

func drawText(w CellWriter, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		w.SetContent(x, y, r, nil, style)
		x++
	}
}

func (s *Session) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.Printf(format, args...)
}
