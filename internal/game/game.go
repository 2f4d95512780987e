// Package game runs the show in a desktop window through ebiten.
package game

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/sim"
)

// Audio is the part of the player the window controls.
type Audio interface {
	SetPaused(paused bool)
	ToggleMute() bool
}

// Recorder receives a stats snapshot every tick.
type Recorder interface {
	Observe(st sim.Stats) error
}

type Game struct {
	show  *sim.Show
	cfg   config.Config
	audio Audio
	stats Recorder

	// input edge detection
	prevKey map[ebiten.Key]bool

	paused  bool
	overlay bool
	muted   bool
}

// New builds a Game. audio and stats may be nil.
func New(show *sim.Show, audio Audio, stats Recorder) *Game {
	cfg := show.Config()
	return &Game{
		show:    show,
		cfg:     cfg,
		audio:   audio,
		stats:   stats,
		prevKey: map[ebiten.Key]bool{},
		muted:   cfg.Audio.Muted,
	}
}

// Run opens the window and blocks until the user quits.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.cfg.Screen.Width, g.cfg.Screen.Height)
	ebiten.SetWindowTitle(g.cfg.Screen.Title)
	ebiten.SetTPS(g.cfg.Screen.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

func (g *Game) justPressed(k ebiten.Key) bool {
	pressed := ebiten.IsKeyPressed(k)
	jp := pressed && !g.prevKey[k]
	g.prevKey[k] = pressed
	return jp
}

func (g *Game) Update() error {
	if g.justPressed(ebiten.KeyEscape) || g.justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.justPressed(ebiten.KeySpace) {
		g.togglePause()
	}
	if g.justPressed(ebiten.KeyM) {
		g.toggleMute()
	}
	if g.justPressed(ebiten.KeyTab) {
		g.overlay = !g.overlay
	}

	if g.paused {
		return nil
	}
	g.show.Step()
	g.record()
	return nil
}

func (g *Game) record() {
	if g.stats == nil {
		return
	}
	if err := g.stats.Observe(g.show.Stats()); err != nil {
		slog.Warn("stats disabled", "error", err)
		g.stats = nil
	}
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.audio != nil {
		g.audio.SetPaused(g.paused)
	}
}

func (g *Game) toggleMute() {
	if g.audio == nil {
		return
	}
	g.muted = g.audio.ToggleMute()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.show.Draw(canvas{dst: screen})

	if g.overlay || g.paused {
		ebitenutil.DebugPrintAt(screen, g.status(), 12, 12)
	}
}

// status is the text of the overlay line.
func (g *Game) status() string {
	st := g.show.Stats()
	s := fmt.Sprintf("%s  fireworks %d  rockets %d  sparks %d  launched %d",
		formatDuration(ticksToDuration(st.Tick, g.cfg.Screen.TPS)),
		st.Fireworks, st.Rockets, st.Sparks, st.Launched)
	if g.muted {
		s += "  [muted]"
	}
	if g.paused {
		s += "  [paused - Space to resume]"
	}
	return s
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
