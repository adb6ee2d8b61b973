package app

import (
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"

	"github.com/forkful/forkful/internal/session"
)

// Config holds the complete client configuration, loadable from environment
// variables (FORKFUL_ prefix) or YAML config files. Command-line flags are
// reserved for subcommands, so the loader skips them.
type Config struct {
	APIBaseURL  string        `default:"http://localhost:5000" usage:"Backend API base URL"`
	Timeout     time.Duration `default:"15s" usage:"HTTP request timeout"`
	SessionFile string        `usage:"Path to the session file (defaults to the user config dir)"`
	Debug       bool          `default:"false" usage:"Enable debug logging"`
}

// LoadConfig loads configuration from environment variables and YAML config
// files, filling in the default session file location.
func LoadConfig() (*Config, error) {
	var cfg Config
	loader := aconfig.LoaderFor(&cfg, aconfig.Config{
		EnvPrefix: "FORKFUL",
		SkipFlags: true,
		Files:     []string{"forkful.yaml", "/etc/forkful/config.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
	if err := loader.Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if cfg.SessionFile == "" {
		path, err := session.DefaultPath()
		if err != nil {
			return nil, errors.Wrap(err, "resolve session file")
		}
		cfg.SessionFile = path
	}

	return &cfg, nil
}
