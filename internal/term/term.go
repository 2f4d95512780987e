// Package term runs the show inside a terminal using half-block cells.
package term

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/fireworks/internal/sim"
)

// upperHalf draws the top pixel as foreground and the bottom one as background.
const upperHalf = '▀'

// Audio is the part of the player the terminal controls.
type Audio interface {
	SetPaused(paused bool)
	ToggleMute() bool
}

// Recorder receives a stats snapshot every tick.
type Recorder interface {
	Observe(st sim.Stats) error
}

// Terminal draws a show on a tcell screen at a fixed tick rate.
type Terminal struct {
	screen tcell.Screen
	show   *sim.Show
	audio  Audio
	stats  Recorder
	raster *raster
	paused bool
}

// Run takes over the terminal until the user quits. audio and stats may be nil.
func Run(show *sim.Show, audio Audio, stats Recorder) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	t := New(screen, show, audio, stats)
	t.loop()
	return nil
}

// New wraps an initialised screen.
func New(screen tcell.Screen, show *sim.Show, audio Audio, stats Recorder) *Terminal {
	t := &Terminal{screen: screen, show: show, audio: audio, stats: stats}
	t.resize()
	return t
}

func (t *Terminal) resize() {
	cols, rows := t.screen.Size()
	cfg := t.show.Config()
	t.raster = newRaster(cols, rows, cfg.Screen.Width, cfg.Screen.Height)
}

func (t *Terminal) loop() {
	ticker := time.NewTicker(time.Second / time.Duration(t.show.Config().Screen.TPS))
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case ev := <-events:
			if !t.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			t.tick()
		}
	}
}

func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		t.screen.Sync()
		t.resize()
	}
	return true
}

// handleKey applies a key press and reports whether the show keeps running.
func (t *Terminal) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return false
		case ' ':
			t.paused = !t.paused
			if t.audio != nil {
				t.audio.SetPaused(t.paused)
			}
		case 'm', 'M':
			if t.audio != nil {
				t.audio.ToggleMute()
			}
		}
	}
	return true
}

// tick advances the show unless paused and presents a frame.
func (t *Terminal) tick() {
	if !t.paused {
		t.show.Step()
		if t.stats != nil {
			if err := t.stats.Observe(t.show.Stats()); err != nil {
				slog.Warn("stats disabled", "error", err)
				t.stats = nil
			}
		}
	}
	t.draw()
}

func (t *Terminal) draw() {
	t.show.Draw(t.raster)

	cols, rows := t.raster.w, t.raster.h/2
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			style := tcell.StyleDefault.
				Foreground(cellColor(t.raster.at(x, 2*y))).
				Background(cellColor(t.raster.at(x, 2*y+1)))
			t.screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
	t.screen.Show()
}

func cellColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
