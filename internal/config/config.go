package config

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/mcoot/othello-arena/internal/model"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds everything needed to run a match from the command line
type Config struct {
	LogLevel  string `yaml:"log-level" env:"OTHELLO_LOG_LEVEL" env-default:"warn"`
	LogFormat string `yaml:"log-format" env:"OTHELLO_LOG_FORMAT" env-default:"text"`
	Output    string `yaml:"output" env:"OTHELLO_OUTPUT" env-default:"text"`
	Match     Match  `yaml:"match"`
}

// Match describes one game and the agents playing it
type Match struct {
	Size         int           `yaml:"size" env:"OTHELLO_SIZE" env-default:"8"`
	TimeLimit    time.Duration `yaml:"time-limit" env:"OTHELLO_TIME_LIMIT" env-default:"100ms"`
	IllegalLimit int           `yaml:"illegal-limit" env:"OTHELLO_ILLEGAL_LIMIT" env-default:"3"`
	Black        string        `yaml:"black" env:"OTHELLO_BLACK" env-default:"greedy"`
	White        string        `yaml:"white" env:"OTHELLO_WHITE" env-default:"random"`
	Seed         uint64        `yaml:"seed" env:"OTHELLO_SEED"` // 0 draws from crypto/rand
}

// Load reads configuration from the yaml file at path, if given, then
// applies OTHELLO_* environment overrides and defaults
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	return cfg, nil
}

// MustLoad is like Load but panics on failure
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks the fields that are not covered by model.Settings
func (c *Config) Validate() error {
	if !slices.Contains([]string{OutputText, OutputJSON}, c.Output) {
		return fmt.Errorf("invalid output format %q: must be text or json", c.Output)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return c.Match.Settings().Validate()
}

// Level parses LogLevel
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// SeedValue returns the seed for reproducible agents, or nil when unseeded
func (m Match) SeedValue() *uint64 {
	if m.Seed == 0 {
		return nil
	}
	seed := m.Seed
	return &seed
}

// Settings converts the match section to game settings
func (m Match) Settings() model.Settings {
	return model.Settings{
		Size:         m.Size,
		TimeLimit:    m.TimeLimit,
		IllegalLimit: m.IllegalLimit,
	}
}
