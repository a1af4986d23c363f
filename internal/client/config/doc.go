// Package config loads runtime configuration for the realverse terminal app.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. REALVERSE_* environment variables (see the env tags on Config).
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-m string   storage medium: memory, file or sqlite
//	-d string   data path (JSON file or SQLite database)
//	-q int      storage quota in bytes, 0 disables it
//	-s int      maximum uploaded image size in bytes
//	-l string   log level: debug, info, warn, error
//	-z string   quiz definition file (YAML or JSON)
//
// # JSON schema
//
//	{
//	  "medium": "sqlite",
//	  "data_path": "realverse.db",
//	  "quota_bytes": 5242880,
//	  "max_image_bytes": 2097152,
//	  "log_level": "info",
//	  "quiz_file": "quiz.yaml"
//	}
//
// Keys absent from the file keep their default.
package config
