package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/realverse/internal/client/medium"
	"github.com/dmitrijs2005/realverse/internal/flagx"
)

// parseFlags populates Config fields from command-line flags. args are
// filtered with flagx.FilterArgs first so that -c/-config and anything else
// meant for other components do not trip the parser.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-m", "-d", "-q", "-s", "-l", "-z"})

	fs := flag.NewFlagSet("realverse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	kind := fs.String("m", string(cfg.Medium), "storage medium: memory, file or sqlite")
	fs.StringVar(&cfg.DataPath, "d", cfg.DataPath, "data path")
	fs.Int64Var(&cfg.QuotaBytes, "q", cfg.QuotaBytes, "storage quota in bytes, 0 disables it")
	fs.Int64Var(&cfg.MaxImageBytes, "s", cfg.MaxImageBytes, "maximum uploaded image size in bytes")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.QuizFile, "z", cfg.QuizFile, "quiz definition file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg.Medium = medium.Kind(*kind)
	return nil
}
