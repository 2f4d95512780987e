package game

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/sim"
)

type fakeAudio struct {
	paused []bool
	muted  bool
}

func (a *fakeAudio) SetPaused(p bool) { a.paused = append(a.paused, p) }
func (a *fakeAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

type failRecorder struct{ calls int }

func (r *failRecorder) Observe(sim.Stats) error {
	r.calls++
	return errors.New("disk full")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00"},
		{59 * time.Second, "00:59"},
		{61 * time.Second, "01:01"},
		{ticksToDuration(3600, 60), "01:00"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
	if ticksToDuration(10, 0) != 0 {
		t.Errorf("zero tps should yield zero duration")
	}
}

func TestTogglesReachAudio(t *testing.T) {
	show := sim.NewShow(config.Default(), sim.NewRand(1), nil)
	a := &fakeAudio{}
	g := New(show, a, nil)

	g.togglePause()
	g.togglePause()
	if len(a.paused) != 2 || !a.paused[0] || a.paused[1] {
		t.Fatalf("pause calls = %v, want [true false]", a.paused)
	}

	g.toggleMute()
	if !g.muted || !strings.Contains(g.status(), "[muted]") {
		t.Fatalf("mute not reflected in status %q", g.status())
	}
}

func TestFailingRecorderIsDropped(t *testing.T) {
	show := sim.NewShow(config.Default(), sim.NewRand(2), nil)
	r := &failRecorder{}
	g := New(show, nil, r)

	g.record()
	g.record()
	if r.calls != 1 {
		t.Fatalf("recorder called %d times after failing, want 1", r.calls)
	}
}

func TestLayoutIsLogicalCanvas(t *testing.T) {
	g := New(sim.NewShow(config.Default(), sim.NewRand(3), nil), nil, nil)
	w, h := g.Layout(1920, 1080)
	if w != 1000 || h != 730 {
		t.Fatalf("Layout = %dx%d, want 1000x730", w, h)
	}
}
