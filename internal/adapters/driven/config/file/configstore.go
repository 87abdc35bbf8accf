// Package file loads the experto configuration: a TOML file overlaid
// with EXPERTO_* environment variables. Recognised keys are `threshold`
// (float in [0, 1]) and `store_path`.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"

	"github.com/Benjaminr180/experto-cli/internal/core/domain"
	"github.com/Benjaminr180/experto-cli/internal/logger"
)

// envPrefix is the prefix for environment overrides, e.g.
// EXPERTO_THRESHOLD and EXPERTO_STORE_PATH.
const envPrefix = "experto"

// config mirrors the on-disk configuration surface.
type config struct {
	Threshold float64 `toml:"threshold" envconfig:"THRESHOLD"`
	StorePath string  `toml:"store_path" envconfig:"STORE_PATH"`
}

// DefaultPath returns the default config location, ~/.experto/config.toml,
// or empty when the home directory cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".experto", "config.toml")
}

// Load resolves settings from the TOML file at path, then applies
// environment overrides and validates. A missing file is not an error;
// defaults apply. An empty path selects DefaultPath.
func Load(path string) (domain.Settings, error) {
	cfg := config{Threshold: domain.DefaultThreshold}

	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return domain.Settings{}, fmt.Errorf("parsing config %s: %w", path, err)
			}
			logger.Debug("Config loaded from %s", path)
		case os.IsNotExist(err):
			logger.Debug("No config file at %s, using defaults", path)
		default:
			return domain.Settings{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return domain.Settings{}, fmt.Errorf("applying environment overrides: %w", err)
	}

	settings := domain.Settings{Threshold: cfg.Threshold, StorePath: cfg.StorePath}
	if err := settings.Validate(); err != nil {
		return domain.Settings{}, err
	}
	return settings, nil
}
