package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/chromatic/pkg/errors"
)

// Config holds defaults read from the TOML config file. Flags set on the
// command line take precedence over every field.
type Config struct {
	Algorithm string       `toml:"algorithm"`
	Verify    bool         `toml:"verify"`
	Format    string       `toml:"format"`
	Render    RenderConfig `toml:"render"`
	Serve     ServeConfig  `toml:"serve"`
}

// RenderConfig is the [render] table.
type RenderConfig struct {
	Formats []string `toml:"formats"`
	Palette []string `toml:"palette"`
}

// ServeConfig is the [serve] table.
type ServeConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// configDir returns the config directory using XDG standard (~/.config/chromatic/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// loadConfig reads the config file at path. An empty path means the default
// location, where a missing file is not an error. Unknown keys are logged as
// warnings.
func loadConfig(path string, logger *log.Logger) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if explicit {
				return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logger.Warn("unknown config keys", "path", path, "keys", strings.Join(keys, ", "))
	}

	logger.Debug("loaded config", "path", path)
	return cfg, nil
}
