package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "about:blank", c.Window.URL)
	assert.True(t, c.Script.Enabled)
	assert.Equal(t, "htmlattrs", c.Metrics.Namespace)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "htmlattrs.toml")
	data := "[window]\nurl = \"https://example.test/\"\n\n[script]\nenabled = false\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	t.Setenv("HTMLATTRS_LOG_LEVEL", "debug")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.test/", c.Window.URL)
	assert.False(t, c.Script.Enabled)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestApplyLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())

	require.NoError(t, Config{Log: LogConfig{Level: "warn"}}.ApplyLogging())
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	assert.Error(t, Config{Log: LogConfig{Level: "loud"}}.ApplyLogging())
}
