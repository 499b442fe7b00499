package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palindromes/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.ModeParallel, cfg.Mode)
	assert.Zero(t, cfg.Workers)
	assert.False(t, cfg.OrderStable)
	assert.False(t, cfg.Metrics)
	assert.True(t, cfg.IsParallel())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PALINDROMES_MODE", "sequence")
	t.Setenv("PALINDROMES_WORKERS", "3")
	t.Setenv("PALINDROMES_ORDERED", "true")
	t.Setenv("PALINDROMES_METRICS", "true")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		Mode:        config.ModeSequence,
		Workers:     3,
		OrderStable: true,
		Metrics:     true,
	}, cfg)
	assert.False(t, cfg.IsParallel())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"UnknownMode", "PALINDROMES_MODE", "random"},
		{"NegativeWorkers", "PALINDROMES_WORKERS", "-2"},
		{"NotANumber", "PALINDROMES_WORKERS", "many"},
		{"NotABool", "PALINDROMES_ORDERED", "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PALINDROMES_MODE=sequence\nPALINDROMES_WORKERS=5\n"), 0o600))

	// godotenv.Load sets variables for the whole process; register them with
	// t.Setenv first so they are restored after the test.
	t.Setenv("PALINDROMES_MODE", "")
	t.Setenv("PALINDROMES_WORKERS", "")
	require.NoError(t, os.Unsetenv("PALINDROMES_MODE"))
	require.NoError(t, os.Unsetenv("PALINDROMES_WORKERS"))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.ModeSequence, cfg.Mode)
	assert.Equal(t, 5, cfg.Workers)
}

func TestLoadFile_EnvironmentWins(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PALINDROMES_MODE=sequence\n"), 0o600))
	t.Setenv("PALINDROMES_MODE", "parallel")

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.ModeParallel, cfg.Mode)
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := config.LoadFile(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, config.ModeParallel, cfg.Mode)
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PALINDROMES_MODE='unterminated\n"), 0o600))
	_, err := config.LoadFile(path)
	assert.Error(t, err)
}
