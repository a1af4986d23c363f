package config

import (
	"fmt"

	"github.com/dmitrijs2005/realverse/internal/client/ingest"
	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/logging"
)

// DefaultQuotaBytes matches the 5 MB most browsers grant localStorage.
const DefaultQuotaBytes = 5 << 20

// Config holds runtime settings for the realverse terminal app.
type Config struct {
	Medium        medium.Kind `env:"REALVERSE_MEDIUM"`
	DataPath      string      `env:"REALVERSE_DATA_PATH"`
	QuotaBytes    int64       `env:"REALVERSE_QUOTA_BYTES"`
	MaxImageBytes int64       `env:"REALVERSE_MAX_IMAGE_BYTES"`
	LogLevel      string      `env:"REALVERSE_LOG_LEVEL"`
	QuizFile      string      `env:"REALVERSE_QUIZ_FILE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Medium = medium.KindSQLite
	c.DataPath = "realverse.db"
	c.QuotaBytes = DefaultQuotaBytes
	c.MaxImageBytes = ingest.DefaultMaxBytes
	c.LogLevel = "info"
	c.QuizFile = ""
}

// Validate reports settings the app cannot start with.
func (c *Config) Validate() error {
	switch c.Medium {
	case medium.KindMemory:
	case medium.KindFile, medium.KindSQLite:
		if c.DataPath == "" {
			return fmt.Errorf("medium %q needs a data path", c.Medium)
		}
	default:
		return fmt.Errorf("unknown medium %q", c.Medium)
	}
	if c.QuotaBytes < 0 {
		return fmt.Errorf("quota must not be negative: %d", c.QuotaBytes)
	}
	if c.MaxImageBytes < 0 {
		return fmt.Errorf("max image size must not be negative: %d", c.MaxImageBytes)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Load constructs a Config from args (without the program name): defaults,
// then the JSON file named by -c/-config, then REALVERSE_* environment
// variables, then flags. Later sources take precedence over earlier ones.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
