// Package config holds the tuning of the fireworks show.
//
// A Config is loaded once at startup and passed by value to the simulation;
// nothing in it is mutated afterwards.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// TrailCount is the number of trails every particle owns.
const TrailCount = 5

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all show parameters.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Physics PhysicsConfig `yaml:"physics"`
	Rocket  RocketConfig  `yaml:"rocket"`
	Spark   SparkConfig   `yaml:"spark"`
	Decay   DecayConfig   `yaml:"decay"`
	Trail   TrailConfig   `yaml:"trail"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Palette PaletteConfig `yaml:"palette"`
	Audio   AudioConfig   `yaml:"audio"`
}

// ScreenConfig describes the logical canvas and frame pacing.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TPS        int    `yaml:"tps"`
	Title      string `yaml:"title"`
	Background Color  `yaml:"background"`
}

type PhysicsConfig struct {
	GravityX float64 `yaml:"gravity_x"`
	GravityY float64 `yaml:"gravity_y"`
}

// RocketConfig tunes the ascending body.
type RocketConfig struct {
	Size     float64 `yaml:"size"`
	SpeedMin int     `yaml:"speed_min"`
	SpeedMax int     `yaml:"speed_max"`
	Color    Color   `yaml:"color"`
	// ExplodeVelocity is the vertical velocity at or above which the rocket bursts.
	ExplodeVelocity float64 `yaml:"explode_velocity"`
}

// SparkConfig tunes post-explosion debris.
type SparkConfig struct {
	CountMin int     `yaml:"count_min"`
	CountMax int     `yaml:"count_max"`
	SizeMin  int     `yaml:"size_min"`
	SizeMax  int     `yaml:"size_max"`
	Speed    float64 `yaml:"speed"`
	Drag     float64 `yaml:"drag"`

	// Arming radius is drawn from [RadiusMin, RadiusMax) in RadiusStep increments.
	RadiusMin  int `yaml:"radius_min"`
	RadiusMax  int `yaml:"radius_max"`
	RadiusStep int `yaml:"radius_step"`

	// Per-tick force is (gx + U(-1,1)*JitterX, gy*GravityScale + U{LiftMin..LiftMax}/LiftDivisor).
	JitterX      float64 `yaml:"jitter_x"`
	GravityScale float64 `yaml:"gravity_scale"`
	LiftMin      int     `yaml:"lift_min"`
	LiftMax      int     `yaml:"lift_max"`
	LiftDivisor  float64 `yaml:"lift_divisor"`
}

// DecayConfig holds the spark lifetime bands.
type DecayConfig struct {
	FlareTicks int `yaml:"flare_ticks"`
	TailTicks  int `yaml:"tail_ticks"`
	GlowOdds   int `yaml:"glow_odds"`
	TailOdds   int `yaml:"tail_odds"`
}

type TrailConfig struct {
	History       int     `yaml:"history"`
	DynamicOffset int     `yaml:"dynamic_offset"`
	StaticOffset  int     `yaml:"static_offset"`
	AlphaBase     int     `yaml:"alpha_base"`
	AlphaStep     int     `yaml:"alpha_step"`
	Colors        []Color `yaml:"colors"`
}

// SpawnConfig controls how often and where rockets launch.
type SpawnConfig struct {
	Odds   int `yaml:"odds"`
	Margin int `yaml:"margin"`
	Step   int `yaml:"step"`
}

type PaletteConfig struct {
	White   Color   `yaml:"white"`
	Accents []Color `yaml:"accents"`
}

// AudioConfig names the sound cues and playback options.
type AudioConfig struct {
	Dir       string  `yaml:"dir"`
	Liftoff   string  `yaml:"liftoff"`
	Explosion string  `yaml:"explosion"`
	Volume    float64 `yaml:"volume"`
	Muted     bool    `yaml:"muted"`
	// ExplosionPerSpark replays the explosion cue once per spark instead of once per burst.
	ExplosionPerSpark bool `yaml:"explosion_per_spark"`
}

// Color is an opaque RGB colour written as a hex string in YAML.
type Color color.NRGBA

// UnmarshalYAML parses "#rrggbb" or "#rgb".
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return fmt.Errorf("color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	*c = Color{R: r, G: g, B: b, A: 0xff}
	return nil
}

// NRGBA returns c as a non-premultiplied colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA(c)
}

// Default returns the embedded defaults.
func Default() Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Clone returns a copy of c that shares no slices with it.
func (c Config) Clone() Config {
	c.Trail.Colors = slices.Clone(c.Trail.Colors)
	c.Palette.Accents = slices.Clone(c.Palette.Accents)
	return c
}

// Validate reports the first parameter that would break the simulation.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen size %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.TPS <= 0:
		return fmt.Errorf("%w: tps %d", ErrInvalid, c.Screen.TPS)
	case c.Rocket.SpeedMin > c.Rocket.SpeedMax:
		return fmt.Errorf("%w: rocket speed range [%d,%d]", ErrInvalid, c.Rocket.SpeedMin, c.Rocket.SpeedMax)
	case c.Spark.CountMin < 0 || c.Spark.CountMin > c.Spark.CountMax:
		return fmt.Errorf("%w: spark count range [%d,%d]", ErrInvalid, c.Spark.CountMin, c.Spark.CountMax)
	case c.Spark.Drag < 0 || c.Spark.SizeMin < 1:
		return fmt.Errorf("%w: spark drag %v size min %d", ErrInvalid, c.Spark.Drag, c.Spark.SizeMin)
	case c.Spark.SizeMin > c.Spark.SizeMax:
		return fmt.Errorf("%w: spark size range [%d,%d]", ErrInvalid, c.Spark.SizeMin, c.Spark.SizeMax)
	case c.Spark.RadiusStep <= 0 || c.Spark.RadiusMin >= c.Spark.RadiusMax:
		return fmt.Errorf("%w: spark radius range [%d,%d) step %d", ErrInvalid,
			c.Spark.RadiusMin, c.Spark.RadiusMax, c.Spark.RadiusStep)
	case c.Spark.LiftMin > c.Spark.LiftMax || c.Spark.LiftDivisor == 0:
		return fmt.Errorf("%w: spark lift [%d,%d]/%v", ErrInvalid, c.Spark.LiftMin, c.Spark.LiftMax, c.Spark.LiftDivisor)
	case c.Decay.GlowOdds <= 0 || c.Decay.TailOdds <= 0:
		return fmt.Errorf("%w: decay odds %d/%d", ErrInvalid, c.Decay.GlowOdds, c.Decay.TailOdds)
	case c.Decay.FlareTicks >= c.Decay.TailTicks:
		return fmt.Errorf("%w: decay bands %d..%d", ErrInvalid, c.Decay.FlareTicks, c.Decay.TailTicks)
	case len(c.Trail.Colors) != TrailCount:
		return fmt.Errorf("%w: %d trail colors, want %d", ErrInvalid, len(c.Trail.Colors), TrailCount)
	case c.Trail.DynamicOffset < 0 || c.Trail.StaticOffset < 0 ||
		c.Trail.DynamicOffset+TrailCount > c.Trail.History ||
		c.Trail.StaticOffset+TrailCount > c.Trail.History:
		return fmt.Errorf("%w: trail offsets %d/%d exceed history %d", ErrInvalid,
			c.Trail.DynamicOffset, c.Trail.StaticOffset, c.Trail.History)
	case c.Spawn.Odds <= 0:
		return fmt.Errorf("%w: spawn odds %d", ErrInvalid, c.Spawn.Odds)
	case c.Spawn.Step <= 0 || c.Spawn.Margin >= c.Screen.Width-c.Spawn.Margin:
		return fmt.Errorf("%w: launch band margin %d step %d", ErrInvalid, c.Spawn.Margin, c.Spawn.Step)
	case len(c.Palette.Accents) == 0:
		return fmt.Errorf("%w: empty accent palette", ErrInvalid)
	}
	return nil
}

// TrailAlpha returns the opacity of trail slot n, brighter first.
func (c Config) TrailAlpha(n int) uint8 {
	a := c.Trail.AlphaBase - n*c.Trail.AlphaStep
	if a < 0 {
		return 0
	}
	if a > 0xff {
		return 0xff
	}
	return uint8(a)
}

// LaunchSlots returns the horizontal launch positions, margin to width-margin exclusive.
func (c Config) LaunchSlots() []float64 {
	var xs []float64
	for x := c.Spawn.Margin; x < c.Screen.Width-c.Spawn.Margin; x += c.Spawn.Step {
		xs = append(xs, float64(x))
	}
	return xs
}

// SoundPath joins the audio directory with a cue file name.
func (c Config) SoundPath(name string) string {
	return filepath.Join(c.Audio.Dir, name)
}
