package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// tell an absent key from a zero value.
type JsonConfig struct {
	Medium        *string `json:"medium"`
	DataPath      *string `json:"data_path"`
	QuotaBytes    *int64  `json:"quota_bytes"`
	MaxImageBytes *int64  `json:"max_image_bytes"`
	LogLevel      *string `json:"log_level"`
	QuizFile      *string `json:"quiz_file"`
}

// parseJson overlays cfg with values from the JSON file named by -c or
// -config in args. Without either flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.Medium != nil {
		cfg.Medium = medium.Kind(*jc.Medium)
	}
	if jc.DataPath != nil {
		cfg.DataPath = *jc.DataPath
	}
	if jc.QuotaBytes != nil {
		cfg.QuotaBytes = *jc.QuotaBytes
	}
	if jc.MaxImageBytes != nil {
		cfg.MaxImageBytes = *jc.MaxImageBytes
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.QuizFile != nil {
		cfg.QuizFile = *jc.QuizFile
	}
	return nil
}
