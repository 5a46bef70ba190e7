package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcterm/value"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "> ", cfg.REPL.Prompt)
	assert.Equal(t, 1000, cfg.REPL.HistorySize)
	assert.True(t, cfg.REPL.ShowWelcome)
	assert.Equal(t, "rad", cfg.Calculator.Angle)
	assert.Equal(t, "dec", cfg.Calculator.Base)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
repl:
  prompt: "calc> "
  history_size: 50
calculator:
  angle: deg
  base: hex
  notation: rpn
verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "calc> ", cfg.REPL.Prompt)
	assert.Equal(t, 50, cfg.REPL.HistorySize)
	assert.Equal(t, "deg", cfg.Calculator.Angle)
	assert.True(t, cfg.Verbose)

	modes, err := cfg.Modes()
	require.NoError(t, err)
	assert.Equal(t, value.AngleDegrees, modes.Angle)
	assert.Equal(t, value.BaseHexadecimal, modes.Base)
	assert.Equal(t, value.ComplexRectangular, modes.Complex)
	assert.Equal(t, value.NotationRPN, modes.Notation)
}

func TestLoadConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"calculator": {"base": "bin"}, "repl": {"prompt": "# "}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "# ", cfg.REPL.Prompt)

	modes, err := cfg.Modes()
	require.NoError(t, err)
	assert.Equal(t, value.BaseBinary, modes.Base)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("repl: [not a map"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestModesRejectsUnknownNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Calculator.Angle = "gradians"
	_, err := cfg.Modes()
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Calculator.Base = "octal"
	_, err = cfg.Modes()
	assert.Error(t, err)

	cfg = DefaultConfig()
	cfg.Calculator.Notation = "postfix"
	_, err = cfg.Modes()
	assert.Error(t, err)
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved", "config.yaml")

	cfg := DefaultConfig()
	cfg.Calculator.Base = "hex"
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
