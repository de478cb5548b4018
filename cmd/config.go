package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/cashpilot/cashpilot/agent"
)

// Config holds the app-wide settings read from the TOML config file.
type Config struct {
	// DataPath is the path to the database file.
	DataPath string `toml:"data_path"`
	// Model is the Gemini model used by the advise command.
	Model string `toml:"model"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return Config{
		DataPath: filepath.Join(home, ".cashpilot", "cashpilot.db"),
		Model:    agent.DefaultModel,
	}
}

// defaultConfigPath is where LoadConfig looks when no path is given.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".cashpilot", "config.toml")
}

// LoadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error: defaults apply, and
// fields absent from the file keep their default value.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("could not read config %q: %w", path, err)
	}
	return cfg, nil
}
