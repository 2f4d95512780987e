package audio

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/fireworks/internal/config"
)

// Player owns the channels and the two cues of the show.
type Player struct {
	channels  [numChannels]channel
	mixer     beep.Mixer
	volume    *effects.Volume
	ctrl      *beep.Ctrl
	liftoff   *Sound
	explosion *Sound
	started   bool
}

// New loads both cues named in cfg. A missing or undecodable file is an error.
func New(cfg config.Config) (*Player, error) {
	liftoff, err := Load(cfg.SoundPath(cfg.Audio.Liftoff))
	if err != nil {
		return nil, fmt.Errorf("liftoff cue: %w", err)
	}
	explosion, err := Load(cfg.SoundPath(cfg.Audio.Explosion))
	if err != nil {
		return nil, fmt.Errorf("explosion cue: %w", err)
	}
	slog.Info("sounds loaded",
		"liftoff", cfg.Audio.Liftoff, "liftoff_samples", liftoff.Len(),
		"explosion", cfg.Audio.Explosion, "explosion_samples", explosion.Len())

	p := NewPlayer(liftoff, explosion)
	p.volume.Volume = cfg.Audio.Volume
	p.volume.Silent = cfg.Audio.Muted
	return p, nil
}

// NewPlayer wires the mixing chain without touching the speaker.
// Chain: channels -> mixer -> volume -> ctrl.
func NewPlayer(liftoff, explosion *Sound) *Player {
	p := &Player{liftoff: liftoff, explosion: explosion}
	for i := range p.channels {
		p.mixer.Add(&p.channels[i])
	}
	p.volume = &effects.Volume{Streamer: &p.mixer, Base: 2}
	p.ctrl = &beep.Ctrl{Streamer: p.volume}
	return p
}

// Start opens the speaker and begins streaming.
func (p *Player) Start() error {
	if p.started {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.ctrl)
	p.started = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// PlayOn starts s on channel id, replacing whatever that channel was playing.
func (p *Player) PlayOn(id ChannelID, s *Sound) {
	if s == nil || id < 0 || id >= numChannels {
		return
	}
	p.channels[id].play(s.streamer())
}

// Liftoff plays the liftoff cue.
func (p *Player) Liftoff() { p.PlayOn(LiftoffChannel, p.liftoff) }

// Explosion plays the explosion cue.
func (p *Player) Explosion() { p.PlayOn(ExplosionChannel, p.explosion) }

// Busy reports whether channel id is playing.
func (p *Player) Busy(id ChannelID) bool {
	if id < 0 || id >= numChannels {
		return false
	}
	return p.channels[id].busy()
}

func (p *Player) SetPaused(paused bool) {
	speaker.Lock()
	p.ctrl.Paused = paused
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new one.
func (p *Player) ToggleMute() bool {
	speaker.Lock()
	p.volume.Silent = !p.volume.Silent
	muted := p.volume.Silent
	speaker.Unlock()
	return muted
}

func (p *Player) Muted() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return p.volume.Silent
}
