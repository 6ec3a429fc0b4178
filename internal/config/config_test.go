package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NotNil(t, cfg.Log.Timestamps)
	require.NotNil(t, cfg.Output.Tree)
	assert.True(t, *cfg.Log.Timestamps)
	assert.False(t, *cfg.Output.Tree)
}

func TestWithDefaults(t *testing.T) {
	tree := true
	cfg := (&Config{Output: OutputConfig{Tree: &tree}}).WithDefaults()

	assert.True(t, *cfg.Output.Tree, "set values are kept")
	assert.True(t, *cfg.Log.Timestamps, "unset values take the default")
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		path := writeConfig(t, "log:\n  timestamps: false\noutput:\n  tree: true\n")

		cfg, err := NewLoader().Load(path)

		require.NoError(t, err)
		require.NotNil(t, cfg.Log.Timestamps)
		require.NotNil(t, cfg.Output.Tree)
		assert.False(t, *cfg.Log.Timestamps)
		assert.True(t, *cfg.Output.Tree)
	})

	t.Run("returns empty config for missing file", func(t *testing.T) {
		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))

		require.NoError(t, err)
		assert.Nil(t, cfg.Log.Timestamps)
		assert.Nil(t, cfg.Output.Tree)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "output:\n  tree: false\n")
		t.Setenv("SOFA_PLUGIN_MAKER_OUTPUT_TREE", "true")

		cfg, err := NewLoader().Load(path)

		require.NoError(t, err)
		require.NotNil(t, cfg.Output.Tree)
		assert.True(t, *cfg.Output.Tree)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		path := writeConfig(t, "output:\n  colour: always\n")

		_, err := NewLoader().Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "config validation failed")
	})

	t.Run("rejects wrong types", func(t *testing.T) {
		path := writeConfig(t, "log:\n  timestamps: sometimes\n")

		_, err := NewLoader().Load(path)

		assert.Error(t, err)
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "log: [unclosed\n")

		_, err := NewLoader().Load(path)

		assert.Error(t, err)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.True(t, *cfg.Log.Timestamps)
	assert.False(t, *cfg.Output.Tree)
}

func TestValidator(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		raw     map[string]interface{}
		wantErr bool
	}{
		{"nil is valid", nil, false},
		{"empty is valid", map[string]interface{}{}, false},
		{"full is valid", map[string]interface{}{
			"log":    map[string]interface{}{"timestamps": true},
			"output": map[string]interface{}{"tree": false},
		}, false},
		{"unknown top-level key", map[string]interface{}{"registry": "x"}, true},
		{"string instead of bool", map[string]interface{}{
			"output": map[string]interface{}{"tree": "yes"},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{{Field: "output.tree", Message: "conflicting values"}}
	assert.Contains(t, errs.Error(), "output.tree: conflicting values")
	assert.Equal(t, "no validation errors", ValidationErrors{}.Error())
}
