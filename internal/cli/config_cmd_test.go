package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/focusflow/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Show(t *testing.T) {
	env := newTestEnv(t)
	env.app.Config = config.DefaultConfig("/tmp/ff")
	env.app.ConfigPath = "/tmp/ff/config.yaml"

	out, err := executeCmd(t, env.app, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "# /tmp/ff/config.yaml")
	assert.Contains(t, out, "path: /tmp/ff/focusflow.db")
	assert.Contains(t, out, "level: warn")
}

func TestConfigInit_WritesOnceThenNeedsForce(t *testing.T) {
	env := newTestEnv(t)
	path := filepath.Join(t.TempDir(), "ff", "config.yaml")
	env.app.Config = config.DefaultConfig(filepath.Dir(path))
	env.app.Config.Log.Level = "debug"
	env.app.ConfigPath = path

	out, err := executeCmd(t, env.app, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level: debug")

	_, err = executeCmd(t, env.app, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = executeCmd(t, env.app, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInit_NoPath(t *testing.T) {
	env := newTestEnv(t)
	_, err := executeCmd(t, env.app, "config", "init")
	require.Error(t, err)
}
