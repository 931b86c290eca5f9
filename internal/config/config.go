package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// JudgeMode selects how a learner's reply to "did you get it right?" is read.
type JudgeMode string

const (
	// JudgeSentiment classifies free-form replies ("indeed", "nope", ...).
	JudgeSentiment JudgeMode = "sentiment"
	// JudgeKeystroke counts any reply starting with "y" as correct.
	JudgeKeystroke JudgeMode = "keystroke"
)

// Config holds all qtime configuration.
type Config struct {
	// Banks is the path of the question file (tagged text or .json).
	Banks string `yaml:"banks"`

	// Judge selects the reply interpretation. Default: sentiment.
	Judge JudgeMode `yaml:"judge"`

	// DefaultBank names the bank that collects questions appearing before
	// any heading. Empty drops them.
	DefaultBank string `yaml:"default_bank"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // append JSON logs here; empty logs to the fallback writer
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Banks: "questions.txt",
		Judge: JudgeSentiment,
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load builds a Config from defaults, the YAML file at path, and QTIME_*
// environment variables, in increasing priority. An empty path means
// DefaultPath(); a missing file there is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
		// No config file; defaults apply.
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	cfg = ApplyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// decode strictly unmarshals YAML on top of cfg.
func decode(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides cfg with any QTIME_* environment variables that are set.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("QTIME_BANKS"); v != "" {
		cfg.Banks = v
	}
	if v := os.Getenv("QTIME_JUDGE"); v != "" {
		cfg.Judge = JudgeMode(v)
	}
	if v := os.Getenv("QTIME_DEFAULT_BANK"); v != "" {
		cfg.DefaultBank = v
	}
	if v := os.Getenv("QTIME_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("QTIME_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	return cfg
}

// Validate reports every problem with cfg in a single error.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Banks) == "" {
		problems = append(problems, "banks path is empty")
	}
	switch c.Judge {
	case JudgeSentiment, JudgeKeystroke:
	default:
		problems = append(problems, fmt.Sprintf("unknown judge %q (want %s or %s)",
			c.Judge, JudgeSentiment, JudgeKeystroke))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DefaultPath resolves the config file path in priority order:
// 1. QTIME_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/qtime/config.yaml
// 3. ~/.config/qtime/config.yaml
func DefaultPath() (string, error) {
	if p := os.Getenv("QTIME_CONFIG"); p != "" {
		return p, nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "qtime", "config.yaml"), nil
}
