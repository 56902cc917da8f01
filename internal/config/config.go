// Package config loads settings shared by the spotlight commands from the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/gogpu/spotlight"
)

// Environment variable names.
const (
	EnvScreenWidth     = "SPOTLIGHT_SCREEN_WIDTH"
	EnvScreenHeight    = "SPOTLIGHT_SCREEN_HEIGHT"
	EnvStatusBar       = "SPOTLIGHT_STATUS_BAR_HEIGHT"
	EnvFitsUnderChrome = "SPOTLIGHT_FITS_UNDER_CHROME"
	EnvFullScreen      = "SPOTLIGHT_FULL_SCREEN"
	EnvShape           = "SPOTLIGHT_SHAPE"
	EnvRadiusFactor    = "SPOTLIGHT_RADIUS_FACTOR"
	EnvTargets         = "SPOTLIGHT_TARGETS"
	EnvAnimMax         = "SPOTLIGHT_ANIM_MAX"
	EnvAnimStep        = "SPOTLIGHT_ANIM_STEP"
	EnvLogLevel        = "SPOTLIGHT_LOG_LEVEL"
)

// ErrInvalidTarget is returned for a malformed target specification.
var ErrInvalidTarget = errors.New("config: invalid target")

// Config holds presentation settings for a showcase preview.
type Config struct {
	Screen          spotlight.ScreenMetrics
	Dimensions      spotlight.Dimensions
	FitsUnderChrome bool
	FullScreen      bool
	Shape           spotlight.FocusShape
	RadiusFactor    float64
	Targets         []spotlight.TargetBox
	AnimMax         int
	AnimStep        float64
	LogLevel        slog.Level
}

// Default returns the settings used when nothing is configured: a
// 1080×1920 phone with a 63px status bar and one circle target.
func Default() Config {
	return Config{
		Screen:       spotlight.ScreenMetrics{Width: 1080, Height: 1920},
		Dimensions:   spotlight.Dimensions{spotlight.StatusBarDimension: 63},
		Shape:        spotlight.ShapeCircle,
		RadiusFactor: 1.0,
		Targets:      []spotlight.TargetBox{{Left: 390, Top: 800, Width: 300, Height: 120}},
		AnimMax:      20,
		AnimStep:     1.0,
		LogLevel:     slog.LevelInfo,
	}
}

// Options converts the configuration into calculator options.
func (c Config) Options() []spotlight.Option {
	return []spotlight.Option{
		spotlight.WithChromeInset(spotlight.StatusBarHeight(c.Dimensions)),
		spotlight.WithFitsUnderChrome(c.FitsUnderChrome),
		spotlight.WithFullScreenWindow(c.FullScreen),
		spotlight.WithRadiusFactor(c.RadiusFactor),
	}
}

// Calculator builds a calculator for the configured presentation.
func (c Config) Calculator() *spotlight.Calculator {
	return spotlight.New(c.Screen, c.Shape, c.Targets, c.Options()...)
}

// Load reads the given .env files (".env" when none are given) into the
// process environment and returns the resulting configuration. Missing
// files are not an error. Variables already set in the environment win.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a configuration from Default, overriding every field whose
// variable lookup reports as set.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	p := parser{lookup: lookup}

	p.intVar(EnvScreenWidth, &cfg.Screen.Width)
	p.intVar(EnvScreenHeight, &cfg.Screen.Height)
	if v, ok := lookup(EnvStatusBar); ok {
		px, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			p.fail(EnvStatusBar, err)
		} else {
			cfg.Dimensions = spotlight.Dimensions{spotlight.StatusBarDimension: px}
		}
	}
	p.boolVar(EnvFitsUnderChrome, &cfg.FitsUnderChrome)
	p.boolVar(EnvFullScreen, &cfg.FullScreen)
	p.floatVar(EnvRadiusFactor, &cfg.RadiusFactor)
	p.intVar(EnvAnimMax, &cfg.AnimMax)
	p.floatVar(EnvAnimStep, &cfg.AnimStep)

	if v, ok := lookup(EnvShape); ok {
		shape, err := ParseShape(v)
		if err != nil {
			p.fail(EnvShape, err)
		}
		cfg.Shape = shape
	}
	if v, ok := lookup(EnvTargets); ok {
		targets, err := ParseTargets(v)
		if err != nil {
			p.fail(EnvTargets, err)
		}
		cfg.Targets = targets
	}
	if v, ok := lookup(EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.TrimSpace(v))); err != nil {
			p.fail(EnvLogLevel, err)
		}
	}

	if p.err != nil {
		return Config{}, p.err
	}
	return cfg, nil
}

// ParseShape parses "circle" or "rect" / "rounded_rectangle".
func ParseShape(s string) (spotlight.FocusShape, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return spotlight.ShapeCircle, nil
	case "rect", "rounded_rectangle", "roundedrectangle":
		return spotlight.ShapeRoundedRectangle, nil
	default:
		return spotlight.ShapeNone, fmt.Errorf("config: unknown shape %q", s)
	}
}

// ParseTargets parses semicolon-separated "left,top,width,height" boxes.
// An empty string yields no targets.
func ParseTargets(s string) ([]spotlight.TargetBox, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []spotlight.TargetBox
	for i, part := range strings.Split(s, ";") {
		fields := strings.Split(part, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w %d %q: want left,top,width,height", ErrInvalidTarget, i, part)
		}
		var v [4]int
		for j, f := range fields {
			n, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return nil, fmt.Errorf("%w %d %q: %w", ErrInvalidTarget, i, part, err)
			}
			v[j] = n
		}
		out = append(out, spotlight.TargetBox{Left: v[0], Top: v[1], Width: v[2], Height: v[3]})
	}
	return out, nil
}

// parser records the first lookup failure.
type parser struct {
	lookup func(string) (string, bool)
	err    error
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("config: %s: %w", key, err)
	}
}

func (p *parser) intVar(key string, dst *int) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		p.fail(key, err)
		return
	}
	*dst = n
}

func (p *parser) floatVar(key string, dst *float64) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		p.fail(key, err)
		return
	}
	*dst = f
}

func (p *parser) boolVar(key string, dst *bool) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		p.fail(key, err)
		return
	}
	*dst = b
}
