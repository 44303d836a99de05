package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Pet     PetConfig     `yaml:"pet"`
	Clock   ClockConfig   `yaml:"clock"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

type PetConfig struct {
	Name string `yaml:"name" env:"MYPET_NAME"`
}

type ClockConfig struct {
	// StepInterval drives automatic time steps; 0 means steps are manual only.
	StepInterval time.Duration `yaml:"step_interval" env:"MYPET_STEP_INTERVAL"`
	QueueSize    int           `yaml:"queue_size" env:"MYPET_QUEUE_SIZE"`
}

type DisplayConfig struct {
	BarWidth int  `yaml:"bar_width" env:"MYPET_BAR_WIDTH"`
	Emoji    bool `yaml:"emoji" env:"MYPET_EMOJI"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"MYPET_LOG_LEVEL"` // debug, info, warn, error
}

// Load builds the config from defaults, then the YAML file at path (if it
// exists), then the environment. A .env file in the working directory fills
// in variables that are not already set.
func Load(path string) (*Config, error) {
	cfg := defaults()

	loadDotEnv(".env")

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	// Env vars override the file.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing env: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SlogLevel maps the configured level name onto slog.
func (c *Config) SlogLevel() slog.Level {
	lvl, _ := ParseLevel(c.Log.Level)
	return lvl
}

// ParseLevel parses a level name. Unknown names fall back to info.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// loadDotEnv reads a .env file and sets env vars that aren't already set.
func loadDotEnv(path string) {
	f, err := os.Open(path)
	if err != nil {
		return // no .env, that's fine
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		// Strip surrounding quotes
		if len(val) >= 2 {
			if (val[0] == '"' && val[len(val)-1] == '"') ||
				(val[0] == '\'' && val[len(val)-1] == '\'') {
				val = val[1 : len(val)-1]
			}
		}

		if os.Getenv(key) == "" && val != "" {
			os.Setenv(key, val)
		}
	}
}

func defaults() *Config {
	return &Config{
		Pet: PetConfig{
			Name: "Pip",
		},
		Clock: ClockConfig{
			StepInterval: 0,
			QueueSize:    8,
		},
		Display: DisplayConfig{
			BarWidth: 10,
			Emoji:    true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func validate(cfg *Config) error {
	if cfg.Clock.StepInterval < 0 {
		return fmt.Errorf("clock.step_interval must not be negative, got %s", cfg.Clock.StepInterval)
	}
	if cfg.Clock.QueueSize < 0 {
		return fmt.Errorf("clock.queue_size must not be negative, got %d", cfg.Clock.QueueSize)
	}
	if cfg.Display.BarWidth < 1 || cfg.Display.BarWidth > 50 {
		return fmt.Errorf("display.bar_width must be between 1 and 50, got %d", cfg.Display.BarWidth)
	}
	if _, err := ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
