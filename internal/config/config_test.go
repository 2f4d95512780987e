package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	if cfg.Screen.Width != 1000 || cfg.Screen.Height != 730 {
		t.Fatalf("screen = %dx%d, want 1000x730", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Screen.TPS != 60 {
		t.Fatalf("tps = %d, want 60", cfg.Screen.TPS)
	}
	if cfg.Physics.GravityY != 0.3 {
		t.Fatalf("gravity = %v, want 0.3", cfg.Physics.GravityY)
	}
	if cfg.Spark.CountMin != 200 || cfg.Spark.CountMax != 400 {
		t.Fatalf("spark count = [%d,%d], want [200,400]", cfg.Spark.CountMin, cfg.Spark.CountMax)
	}
	if got, want := cfg.Trail.Colors[0].NRGBA(), (color.NRGBA{R: 249, G: 199, B: 79, A: 255}); got != want {
		t.Fatalf("trail color 0 = %v, want %v", got, want)
	}
	if len(cfg.Palette.Accents) != 9 {
		t.Fatalf("accents = %d, want 9", len(cfg.Palette.Accents))
	}
	if cfg.Audio.ExplosionPerSpark {
		t.Fatalf("explosion cue should default to once per burst")
	}
}

func TestTrailAlpha(t *testing.T) {
	cfg := Default()
	want := []uint8{255, 205, 155, 105, 55}
	for n, w := range want {
		if got := cfg.TrailAlpha(n); got != w {
			t.Errorf("TrailAlpha(%d) = %d, want %d", n, got, w)
		}
	}
	if got := cfg.TrailAlpha(9); got != 0 {
		t.Errorf("TrailAlpha(9) = %d, want clamp to 0", got)
	}
}

func TestLaunchSlots(t *testing.T) {
	got := Default().LaunchSlots()
	want := []float64{100, 250, 400, 550, 700, 850}
	if len(got) != len(want) {
		t.Fatalf("slots = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("slots = %v, want %v", got, want)
		}
	}
}

func TestLoadOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "show.yaml")
	data := []byte("physics:\n  gravity_y: 0.5\nrocket:\n  color: \"#ff0000\"\naudio:\n  muted: true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Physics.GravityY != 0.5 {
		t.Errorf("gravity = %v, want 0.5", cfg.Physics.GravityY)
	}
	if cfg.Rocket.Color.NRGBA() != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("rocket color = %v", cfg.Rocket.Color)
	}
	if !cfg.Audio.Muted {
		t.Errorf("muted not applied")
	}
	// untouched sections keep their defaults
	if cfg.Spark.Drag != 0.8 {
		t.Errorf("drag = %v, want default 0.8", cfg.Spark.Drag)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad yaml", "screen: [", false},
		{"bad color", "rocket:\n  color: \"#zz\"\n", false},
		{"inverted spark count", "spark:\n  count_min: 500\n", true},
		{"short trail table", "trail:\n  colors: [\"#ffffff\"]\n", true},
		{"offset past history", "trail:\n  static_offset: 6\n", true},
		{"negative drag", "spark:\n  drag: -0.5\n", true},
		{"zero spark size", "spark:\n  size_min: 0\n", true},
		{"zero spawn odds", "spawn:\n  odds: 0\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Fatalf("errors.Is(err, ErrInvalid) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestCloneDetachesSlices(t *testing.T) {
	cfg := Default()
	c := cfg.Clone()

	cfg.Trail.Colors[0] = Color{R: 1, G: 2, B: 3, A: 255}
	cfg.Palette.Accents[0] = Color{R: 9, G: 9, B: 9, A: 255}

	if c.Trail.Colors[0] == cfg.Trail.Colors[0] {
		t.Errorf("clone trail color 0 follows the original: %v", c.Trail.Colors[0])
	}
	if c.Palette.Accents[0] == cfg.Palette.Accents[0] {
		t.Errorf("clone accent 0 follows the original: %v", c.Palette.Accents[0])
	}
}
