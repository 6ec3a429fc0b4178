// Package config provides configuration loading and management.
package config

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" mapstructure:"timestamps"`
}

// OutputConfig contains settings for what is printed after a scaffold run.
type OutputConfig struct {
	// Tree prints a tree summary of the created plugin.
	// Default: false. Override with --tree flag.
	Tree *bool `json:"tree,omitempty" mapstructure:"tree"`
}

// Config represents the plugin maker configuration.
// Loaded from ~/.sofa-plugin-maker/config.yaml, validated against the embedded CUE schema.
// No setting changes the content of generated files.
type Config struct {
	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" mapstructure:"log"`

	// Output contains summary output settings.
	Output OutputConfig `json:"output,omitempty" mapstructure:"output"`
}

// DefaultConfig returns a Config with all default values populated.
func DefaultConfig() *Config {
	timestamps := true
	tree := false
	return &Config{
		Log:    LogConfig{Timestamps: &timestamps},
		Output: OutputConfig{Tree: &tree},
	}
}

// WithDefaults returns a copy of c with unset values taken from DefaultConfig.
func (c *Config) WithDefaults() *Config {
	out := *c
	def := DefaultConfig()
	if out.Log.Timestamps == nil {
		out.Log.Timestamps = def.Log.Timestamps
	}
	if out.Output.Tree == nil {
		out.Output.Tree = def.Output.Tree
	}
	return &out
}
