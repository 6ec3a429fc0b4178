package config

import (
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

// Environment variable names.
const (
	// EnvPrefix is the prefix of all configuration environment variables.
	EnvPrefix = "SOFA_PLUGIN_MAKER"

	// EnvConfig overrides the config file path.
	EnvConfig = EnvPrefix + "_CONFIG"
)

// Paths contains standard filesystem paths for the plugin maker.
type Paths struct {
	// ConfigFile is the path to the config file (~/.sofa-plugin-maker/config.yaml).
	ConfigFile string

	// HomeDir is the tool home directory (~/.sofa-plugin-maker).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	toolHome := filepath.Join(homeDir, ".sofa-plugin-maker")

	return &Paths{
		ConfigFile: filepath.Join(toolHome, "config.yaml"),
		HomeDir:    toolHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If SOFA_PLUGIN_MAKER_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
// ~username forms are returned unchanged.
func ExpandPath(path string) (string, error) {
	if len(path) > 1 && path[0] == '~' && path[1] != '/' && path[1] != filepath.Separator {
		return path, nil
	}
	return homedir.Expand(path)
}
