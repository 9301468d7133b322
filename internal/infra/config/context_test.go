package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `channels:
  default: "111"
  log: "222"
daily:
  time: "09:00"
poll_interval_seconds: 120
powerup:
  min_minutes: 30
  max_minutes: 90
feed:
  owner: PixelatedFace
  repo: BoarBotCommunityEdition
presence: "/boar help"
`

func writeConfig(t *testing.T, body string) Env {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return Env{ConfigPath: path}
}

func TestFingerprintChangesOnSingleByteEdit(t *testing.T) {
	env := writeConfig(t, sampleConfig)

	before, err := Fingerprint(env.ConfigPath)
	require.NoError(t, err)

	edited := []byte(sampleConfig)
	edited[len(edited)-2] = 'x'
	require.NoError(t, os.WriteFile(env.ConfigPath, edited, 0o644))

	after, err := Fingerprint(env.ConfigPath)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}

func TestReloadSwapsOnlyOnChange(t *testing.T) {
	env := writeConfig(t, sampleConfig)

	ctx, err := LoadContext(env)
	require.NoError(t, err)
	assert.Equal(t, "111", ctx.Config().Channels.Default)

	changed, err := ctx.Reload()
	require.NoError(t, err)
	assert.False(t, changed, "unchanged file must not trigger a reload")

	next := sampleConfig + "extra: true\n"
	require.NoError(t, os.WriteFile(env.ConfigPath, []byte(next), 0o644))

	changed, err = ctx.Reload()
	require.NoError(t, err)
	assert.True(t, changed)
}

func TestDefaultsApplied(t *testing.T) {
	env := writeConfig(t, "channels:\n  default: \"1\"\n")

	ctx, err := LoadContext(env)
	require.NoError(t, err)

	cfg := ctx.Config()
	assert.Equal(t, "09:00", cfg.Daily.Time)
	assert.Equal(t, 120, cfg.PollIntervalSeconds)
	assert.Equal(t, 30, cfg.Powerup.MinMinutes)
	assert.Equal(t, 90, cfg.Powerup.MaxMinutes)
}
