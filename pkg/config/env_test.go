package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigPath, EnvSeed, EnvVerbose} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadEnvMissingFileIsIgnored(t *testing.T) {
	clearEnv(t)

	settings, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, EnvSettings{}, settings)
}

func TestLoadEnvFromProcess(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, "custom.yaml")
	t.Setenv(EnvSeed, "1234")
	t.Setenv(EnvVerbose, "true")

	settings, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Equal(t, EnvSettings{ConfigPath: "custom.yaml", Seed: 1234, Verbose: true}, settings)
}

func TestLoadEnvFromFile(t *testing.T) {
	clearEnv(t)
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("COLLECTOR_SEED=42\nCOLLECTOR_VERBOSE=1\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv(EnvSeed)
		os.Unsetenv(EnvVerbose)
	})

	settings, err := LoadEnv(p)
	require.NoError(t, err)
	assert.Equal(t, int64(42), settings.Seed)
	assert.True(t, settings.Verbose)
}

func TestLoadEnvProcessWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "7")
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("COLLECTOR_SEED=42\n"), 0o644))

	settings, err := LoadEnv(p)
	require.NoError(t, err)
	assert.Equal(t, int64(7), settings.Seed)
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "abc")
	_, err := LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.Error(t, err)

	t.Setenv(EnvSeed, "")
	t.Setenv(EnvVerbose, "maybe")
	_, err = LoadEnv(filepath.Join(t.TempDir(), ".env"))
	require.Error(t, err)
}
