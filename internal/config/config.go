package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override (e.g. GPSTIME_STEP_MS).
const EnvPrefix = "GPSTIME_"

// DefaultStepMS applies when arange.step_ms is absent.
const DefaultStepMS = 1000.0

type Config struct {
	Arange ArangeConfig `yaml:"arange"`
	Weeks  []WeekPair   `yaml:"weeks"`
}

// ArangeConfig describes a GPSTime sequence. StartUTC is RFC3339; empty means
// the current time.
type ArangeConfig struct {
	StartUTC string        `yaml:"start_utc" env:"START_UTC"`
	Duration time.Duration `yaml:"duration" env:"DURATION"`
	// StepMS is nil when unset; an explicit zero is an error.
	StepMS   *float64      `yaml:"step_ms" env:"STEP_MS"`

	// Start is StartUTC parsed; zero when StartUTC is empty.
	Start time.Time `yaml:"-"`
}

// Step returns StepMS, or DefaultStepMS when it is unset.
func (a ArangeConfig) Step() float64 {
	if a.StepMS == nil {
		return DefaultStepMS
	}
	return *a.StepMS
}

// WeekPair is a full GPS week and the mod-1024 week it was broadcast as.
type WeekPair struct {
	FullWeek int `yaml:"full_week"`
	GPSWeek  int `yaml:"gps_week"`
}

// Load reads YAML from path (skipped when path is empty), applies GPSTIME_*
// environment overrides, then defaults and validation.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&cfg.Arange, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("config env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) normalize() error {
	if cfg.Arange.StepMS == nil {
		v := DefaultStepMS
		cfg.Arange.StepMS = &v
	}
	if *cfg.Arange.StepMS <= 0 {
		return fmt.Errorf("arange.step_ms must be > 0")
	}
	if cfg.Arange.Duration < 0 {
		return fmt.Errorf("arange.duration must be >= 0")
	}

	cfg.Arange.StartUTC = strings.TrimSpace(cfg.Arange.StartUTC)
	cfg.Arange.Start = time.Time{}
	if cfg.Arange.StartUTC != "" {
		t, err := time.Parse(time.RFC3339Nano, cfg.Arange.StartUTC)
		if err != nil {
			return fmt.Errorf("arange.start_utc must be RFC3339: %q", cfg.Arange.StartUTC)
		}
		cfg.Arange.Start = t.UTC()
	}

	for i, w := range cfg.Weeks {
		if w.FullWeek < 0 {
			return fmt.Errorf("weeks[%d].full_week must be >= 0", i)
		}
	}
	return nil
}
