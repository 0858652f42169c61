package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folio/internal/config"
	"folio/internal/mailer"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "folio.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\nmotion:\n  intro: true\n"), 0o644))

	cfg, err := loadConfig(options{configPath: path, theme: "light", noIntro: true, logFile: "x.log"})
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.False(t, cfg.Motion.Intro)
	assert.Equal(t, "x.log", cfg.LogFile)
}

func TestLoadConfig_RejectsBadTheme(t *testing.T) {
	_, err := loadConfig(options{configPath: filepath.Join(t.TempDir(), "missing.yaml"), theme: "sepia"})
	assert.Error(t, err)
}

func TestNewSender(t *testing.T) {
	cfg := config.Default()
	_, echo := newSender(cfg, false).(mailer.Echo)
	assert.True(t, echo, "no endpoint selects the echo dispatcher")

	cfg.Email.Endpoint = "https://example.com/api/contact"
	_, client := newSender(cfg, false).(*mailer.Client)
	assert.True(t, client)

	_, echo = newSender(cfg, true).(mailer.Echo)
	assert.True(t, echo, "dry run never sends")
}
