package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/galois/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, config.AlgorithmExtent, cfg.Lattice.Algorithm)
	assert.Equal(t, 20000, cfg.Lattice.MaxConcepts)
	assert.Equal(t, 1, cfg.Enumerate.Workers)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
}

func TestNew_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[lattice]
algorithm = "naive"
trie = true

[output]
format = "yaml"
`), 0o600))
	t.Setenv("GALOIS_ENUMERATE_WORKERS", "4")

	v, err := config.New(path)
	require.NoError(t, err)
	cfg, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, config.AlgorithmNaive, cfg.Lattice.Algorithm)
	assert.True(t, cfg.Lattice.Trie)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
	assert.Equal(t, 4, cfg.Enumerate.Workers)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestNew_Errors(t *testing.T) {
	_, err := config.New(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[lattice\n"), 0o600))
	_, err = config.New(bad)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() config.Config {
		return config.Config{
			Log:       config.LogConfig{Level: "info"},
			Lattice:   config.LatticeConfig{Algorithm: config.AlgorithmExtent},
			Enumerate: config.EnumerateConfig{Workers: 1},
			Output:    config.OutputConfig{Format: config.FormatJSON},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"valid", func(*config.Config) {}, false},
		{"unknown algorithm", func(c *config.Config) { c.Lattice.Algorithm = "magic" }, true},
		{"negative max concepts", func(c *config.Config) { c.Lattice.MaxConcepts = -1 }, true},
		{"zero max concepts disables the ceiling", func(c *config.Config) { c.Lattice.MaxConcepts = 0 }, false},
		{"zero workers", func(c *config.Config) { c.Enumerate.Workers = 0 }, true},
		{"unknown format", func(c *config.Config) { c.Output.Format = "xml" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
