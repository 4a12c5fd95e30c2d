package term

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Sound plays short tones for game events. A nil *Sound is silent, so the
// session can run without audio.
type Sound struct {
	ready bool
}

// NewSound initializes the speaker.
func NewSound() (*Sound, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Sound{ready: true}, nil
}

// Eat plays a short high blip.
func (s *Sound) Eat() { s.play(880, 880*1.5) }

// Crash plays a low buzz.
func (s *Sound) Crash() { s.play(220, 110) }

// Win plays a rising arpeggio.
func (s *Sound) Win() { s.play(523.25, 659.25, 783.99, 1046.5) }

// Close releases the speaker.
func (s *Sound) Close() {
	if s == nil || !s.ready {
		return
	}
	speaker.Close()
	s.ready = false
}

func (s *Sound) play(freqs ...float64) {
	if s == nil || !s.ready {
		return
	}
	st, err := chime(60*time.Millisecond, freqs...)
	if err != nil {
		return
	}
	speaker.Play(st)
}

// chime strings together one sine note of length d per frequency.
func chime(d time.Duration, freqs ...float64) (beep.Streamer, error) {
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(sampleRate, f)
		if err != nil {
			return nil, err
		}
		notes = append(notes, beep.Take(sampleRate.N(d), sine))
	}
	return beep.Seq(notes...), nil
}
