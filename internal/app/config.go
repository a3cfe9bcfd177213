package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"bog/internal/util/logging"
)

const (
	// HomeEnv overrides the default home directory.
	HomeEnv = "BOG_HOME"
	// ConfigFile is read from the home directory when present.
	ConfigFile = "bog.toml"

	defaultHomeDir = ".bog"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home   string                `toml:"-"`      // identity tree, e.g. $HOME/.bog
	Logger *logging.LoggerConfig `toml:"logger"` // defaults to production on stderr
}

// ResolveHome picks the home directory: the explicit flag value, then
// $BOG_HOME, then ~/.bog.
func ResolveHome(flag string) (string, error) {
	if h := strings.TrimSpace(flag); h != "" {
		return h, nil
	}
	if h := strings.TrimSpace(os.Getenv(HomeEnv)); h != "" {
		return h, nil
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(dir, defaultHomeDir), nil
}

// LoadConfig resolves the home directory and applies <home>/bog.toml if it
// exists.
func LoadConfig(homeFlag string) (Config, error) {
	home, err := ResolveHome(homeFlag)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{Home: home, Logger: logging.DefaultLoggerConfig()}

	path := filepath.Join(home, ConfigFile)
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	cfg.Home = home
	if cfg.Logger == nil {
		cfg.Logger = logging.DefaultLoggerConfig()
	}
	return cfg, nil
}
