package config

import (
	"os"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from the config file or its env override.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedBool is a boolean setting with the source it was taken from.
type ResolvedBool struct {
	Value  bool
	Source ConfigSource
}

// ResolvedString is a string setting with the source it was taken from.
type ResolvedString struct {
	Value  string
	Source ConfigSource
}

// BoolFlag describes a boolean command-line flag.
type BoolFlag struct {
	// Value is the parsed flag value.
	Value bool
	// Changed reports whether the user set the flag explicitly.
	Changed bool
}

// ResolveBool resolves a boolean with precedence flag > config > default.
func ResolveBool(flag BoolFlag, configValue *bool, def bool) ResolvedBool {
	switch {
	case flag.Changed:
		return ResolvedBool{Value: flag.Value, Source: SourceFlag}
	case configValue != nil:
		return ResolvedBool{Value: *configValue, Source: SourceConfig}
	default:
		return ResolvedBool{Value: def, Source: SourceDefault}
	}
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SOFA_PLUGIN_MAKER_CONFIG env, (3) ~/.sofa-plugin-maker/config.yaml.
// An empty value means no config file is used.
func ResolveConfigPath(flagValue string) (ResolvedString, error) {
	if flagValue != "" {
		return ResolvedString{Value: flagValue, Source: SourceFlag}, nil
	}
	if envValue := os.Getenv(EnvConfig); envValue != "" {
		return ResolvedString{Value: envValue, Source: SourceEnv}, nil
	}

	// Without a resolvable home directory there is no default config file.
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedString{Source: SourceDefault}, nil
	}
	return ResolvedString{Value: paths.ConfigFile, Source: SourceDefault}, nil
}

// ResolveOptions holds the raw inputs of ResolveAll.
type ResolveOptions struct {
	ConfigFlag string
	Timestamps BoolFlag
	Tree       BoolFlag
}

// ResolvedConfig holds every resolved setting.
type ResolvedConfig struct {
	ConfigPath ResolvedString
	Timestamps ResolvedBool
	Tree       ResolvedBool
}

// ResolveAll resolves the config path, loads the file and applies flag precedence.
func ResolveAll(opts ResolveOptions) (*ResolvedConfig, error) {
	configPath, err := ResolveConfigPath(opts.ConfigFlag)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if configPath.Value != "" {
		cfg, err = NewLoader().Load(configPath.Value)
		if err != nil {
			return nil, err
		}
	}

	return resolve(opts, configPath, cfg), nil
}

// ResolveDefaults applies flag precedence over the built-in defaults only.
// It is the fallback when the config file or environment cannot be loaded.
func ResolveDefaults(opts ResolveOptions) *ResolvedConfig {
	return resolve(opts, ResolvedString{Source: SourceDefault}, &Config{})
}

func resolve(opts ResolveOptions, configPath ResolvedString, cfg *Config) *ResolvedConfig {
	def := DefaultConfig()
	return &ResolvedConfig{
		ConfigPath: configPath,
		Timestamps: ResolveBool(opts.Timestamps, cfg.Log.Timestamps, *def.Log.Timestamps),
		Tree:       ResolveBool(opts.Tree, cfg.Output.Tree, *def.Output.Tree),
	}
}
