// Package config loads the game tunables from an optional .env file,
// MAZERUN_* environment variables and command line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/cbodonnell/mazerun/pkg/game/constants"
	"github.com/cbodonnell/mazerun/pkg/gesture"
	"github.com/cbodonnell/mazerun/pkg/log"
	"github.com/joho/godotenv"
)

const EnvPrefix = "MAZERUN_"

// Config holds every tunable of the game and its simulators. The env tags
// name the variables without EnvPrefix.
type Config struct {
	TickInterval     time.Duration `env:"TICK"`             // control loop period
	EncoderDebounce  time.Duration `env:"ENCODER_DEBOUNCE"` // minimum gap between accepted encoder steps
	AngleThreshold   float64       `env:"ANGLE_THRESHOLD"`  // tilt in degrees that starts a gesture
	GestureHold      time.Duration `env:"GESTURE_HOLD"`     // how long a tilt must hold
	GestureCooldown  time.Duration `env:"GESTURE_COOLDOWN"` // quiet period after an accepted move
	RenderInterval   time.Duration `env:"RENDER_INTERVAL"`  // play screen refresh throttle
	FlashTimes       int           `env:"FLASH_TIMES"`
	FlashDelay       time.Duration `env:"FLASH_DELAY"`
	SweepDuration    time.Duration `env:"SWEEP_DURATION"`
	BlockingFeedback bool          `env:"BLOCKING_FEEDBACK"` // pause the game while an LED sequence plays
	LogLevel         string        `env:"LOG_LEVEL"`
	Sound            bool          `env:"SOUND"` // play buzzer tones with the LED
	Scale            int           `env:"SCALE"` // simulator window scale
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickInterval:     constants.TickInterval,
		EncoderDebounce:  constants.EncoderDebounce,
		AngleThreshold:   constants.AngleThreshold,
		GestureHold:      constants.GestureHold,
		GestureCooldown:  constants.GestureCooldown,
		RenderInterval:   constants.RenderInterval,
		FlashTimes:       constants.FlashTimes,
		FlashDelay:       constants.FlashDelay,
		SweepDuration:    constants.SweepDuration,
		BlockingFeedback: true,
		LogLevel:         "info",
		Scale:            4,
	}
}

// Load starts from Default and applies the given .env files (".env" when none
// is given) and then the process environment. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	environment := map[string]string{}
	for _, file := range files {
		values, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug("No env file at %s", file)
				continue
			}
			return Config{}, fmt.Errorf("failed to read %s: %v", file, err)
		}
		for k, v := range values {
			environment[k] = v
		}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			environment[k] = v
		}
	}

	cfg := Default()
	if err := env.ParseWithOptions(&cfg, env.Options{
		Prefix:      EnvPrefix,
		Environment: environment,
	}); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %v", err)
	}
	return cfg, cfg.Validate()
}

// RegisterFlags binds command line flags to c, using its current values as
// the flag defaults.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.DurationVar(&c.TickInterval, "tick", c.TickInterval, "Control loop period")
	flags.DurationVar(&c.EncoderDebounce, "encoder-debounce", c.EncoderDebounce, "Minimum time between encoder steps")
	flags.Float64Var(&c.AngleThreshold, "angle-threshold", c.AngleThreshold, "Tilt angle in degrees that starts a move")
	flags.DurationVar(&c.GestureHold, "gesture-hold", c.GestureHold, "How long a tilt must be held")
	flags.DurationVar(&c.GestureCooldown, "gesture-cooldown", c.GestureCooldown, "Pause after an accepted move")
	flags.DurationVar(&c.RenderInterval, "render-interval", c.RenderInterval, "Play screen refresh interval")
	flags.IntVar(&c.FlashTimes, "flash-times", c.FlashTimes, "LED flashes per event")
	flags.DurationVar(&c.FlashDelay, "flash-delay", c.FlashDelay, "LED flash phase length")
	flags.DurationVar(&c.SweepDuration, "sweep-duration", c.SweepDuration, "Victory rainbow length")
	flags.BoolVar(&c.BlockingFeedback, "blocking-feedback", c.BlockingFeedback, "Pause the game while the LED animates")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level")
	flags.BoolVar(&c.Sound, "sound", c.Sound, "Play buzzer tones")
	flags.IntVar(&c.Scale, "scale", c.Scale, "Simulator window scale")
}

// Validate reports the first out of range value.
func (c Config) Validate() error {
	positive := []struct {
		name string
		d    time.Duration
	}{
		{"tick", c.TickInterval},
		{"gesture hold", c.GestureHold},
		{"flash delay", c.FlashDelay},
		{"sweep duration", c.SweepDuration},
	}
	for _, p := range positive {
		if p.d <= 0 {
			return fmt.Errorf("%s must be positive, got %s", p.name, p.d)
		}
	}
	if c.EncoderDebounce < 0 || c.GestureCooldown < 0 || c.RenderInterval < 0 {
		return errors.New("debounce, cooldown and render interval must not be negative")
	}
	if c.AngleThreshold <= 0 || c.AngleThreshold >= 90 {
		return fmt.Errorf("angle threshold must be between 0 and 90 degrees, got %v", c.AngleThreshold)
	}
	if c.FlashTimes < 1 {
		return fmt.Errorf("flash times must be at least 1, got %d", c.FlashTimes)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if _, err := log.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Gesture returns the classifier settings.
func (c Config) Gesture() gesture.Config {
	return gesture.Config{
		AngleThreshold: c.AngleThreshold,
		HoldDuration:   c.GestureHold,
		Cooldown:       c.GestureCooldown,
	}
}
