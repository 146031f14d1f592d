package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_init_config_from_env(t *testing.T) {
	// given no config file
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("REST_API_ADDR", ":9090")
	t.Setenv("ENGINE_MAX_PATH_DEPTH", "25")
	t.Setenv("HISTORY_DRIVER", "sqlite")
	t.Setenv("HISTORY_PATH", "/tmp/history.db")
	// when
	c := InitConfig()
	// then
	assert.Equal(t, ":9090", c.Server.Addr)
	assert.Equal(t, 25, c.Engine.MaxPathDepth)
	assert.Equal(t, HistoryDriverSqlite, c.History.Driver)
	assert.Equal(t, "/tmp/history.db", c.History.Path)
	// defaults
	assert.Equal(t, "bpml", c.Name)
	assert.Equal(t, "bpml", c.Tracing.Name)
	assert.Equal(t, 128, c.Engine.CacheSize)
	assert.Equal(t, 10*time.Minute, c.Engine.CacheTTL)
}

func Test_init_config_from_file(t *testing.T) {
	content := `
name: modeler
server:
  addr: ":7070"
engine:
  maxPathDepth: 10
tracing:
  enabled: true
  endpoint: http://collector:4318
`
	fileName := filepath.Join(t.TempDir(), "conf.yaml")
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", fileName)

	c := InitConfig()

	assert.Equal(t, "modeler", c.Name)
	assert.Equal(t, ":7070", c.Server.Addr)
	assert.Equal(t, 10, c.Engine.MaxPathDepth)
	assert.True(t, c.Tracing.Enabled)
	// tracing name falls back to the application name
	assert.Equal(t, "modeler", c.Tracing.Name)
}
