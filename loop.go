package main

import (
	"fmt"
	"time"

	"github.com/icy-engine/icy/window"
	"github.com/loov/hrtime"
	"github.com/veandco/go-sdl2/sdl"
)

type frameStats struct {
	frames  int
	elapsed time.Duration
	slowest time.Duration
}

func (s *frameStats) add(frame time.Duration) {
	s.frames++
	if frame > s.slowest {
		s.slowest = frame
	}
}

func (s frameStats) fps() float64 {
	if s.elapsed <= 0 {
		return 0
	}
	return float64(s.frames) / s.elapsed.Seconds()
}

func (s frameStats) String() string {
	return fmt.Sprintf("Elapsed: %v, frames: %d, avg fps: %.1f, slowest frame: %v", s.elapsed, s.frames, s.fps(), s.slowest)
}

// handleEvent closes w on a quit request or when ESC is pressed.
func handleEvent(w window.Window, event sdl.Event) {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		w.Close()
	case *sdl.KeyboardEvent:
		if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
			w.Close()
		}
	}
}

// loop drains the events and displays a frame until w is closed.
func loop(w window.Window) (frameStats, error) {
	var stats frameStats
	t0 := hrtime.Now()

	for w.IsOpen() {
		for event := w.PollEvent(); event != nil; event = w.PollEvent() {
			handleEvent(w, event)
		}
		if !w.IsOpen() {
			break
		}
		start := hrtime.Now()
		if err := w.Display(); err != nil {
			stats.elapsed = hrtime.Since(t0)
			return stats, err
		}
		stats.add(hrtime.Since(start))
	}
	stats.elapsed = hrtime.Since(t0)
	return stats, nil
}
