package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "amity> ", cfg.Prompt)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	data := "seed = 42\ncolor = \"never\"\nload_file = \"people.txt\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "people.txt", cfg.LoadFile)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep defaults")
}

func TestLoad_InvalidColor(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("color = \"rainbow\"\n"), 0644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrInvalidColor), "got %v", err)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("log_level = \"loud\"\n"), 0644))

	_, err := Load(path)
	assert.True(t, errors.Is(err, ErrInvalidLogLevel), "got %v", err)
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = [unterminated\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	original := DefaultConfig()
	original.Seed = 7
	original.Prompt = "> "

	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original, loaded)
}

func TestConfigPath_Env(t *testing.T) {
	t.Setenv(EnvVarConfig, "/tmp/amity.toml")
	assert.Equal(t, "/tmp/amity.toml", ConfigPath())
}
