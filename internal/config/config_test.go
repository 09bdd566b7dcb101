package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.Equal(t, "data", c.Server.DataDir)
	assert.Equal(t, "static", c.Server.StaticDir)
	assert.Equal(t, 25, c.Gamify.LoginBonus.First)
	assert.Equal(t, 50, c.Gamify.LoginBonus.Consecutive)
	assert.Equal(t, "data/state.db", c.Gamify.StatePath)
	assert.Equal(t, 3, c.Tasks.MaxFocused)
}

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noteflow_config.yml")
	body := `
version: "1"
server:
  addr: ":9999"
gamification:
  login_bonus:
    consecutive: 75
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", c.Server.Addr)
	assert.Equal(t, 75, c.Gamify.LoginBonus.Consecutive)
	// Unspecified fields fall back to defaults.
	assert.Equal(t, 25, c.Gamify.LoginBonus.First)
	assert.Equal(t, "data", c.Server.DataDir)
	assert.Equal(t, 3, c.Tasks.MaxFocused)
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a map"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("NOTEFLOW_ADDR", ":7070")
	t.Setenv("NOTEFLOW_LOGIN_BONUS_FIRST", "30")
	t.Setenv("NOTEFLOW_MAX_FOCUSED", "not-a-number")

	c := Default()
	c.ApplyEnv()
	assert.Equal(t, ":7070", c.Server.Addr)
	assert.Equal(t, 30, c.Gamify.LoginBonus.First)
	// Malformed values leave the existing setting alone.
	assert.Equal(t, 3, c.Tasks.MaxFocused)
}
