package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/dpsw/pkg/mc"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dpswctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, int32(0), cfg.Object.ID)
	assert.Equal(t, "echo", cfg.Portal.Type)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, mc.Flags(0), cfg.Portal.Flags())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
object:
  id: 7
portal:
  type: replay
  fixture: responses.yaml
  priority: true
  intr_disable: true
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, int32(7), cfg.Object.ID)
	assert.Equal(t, "replay", cfg.Portal.Type)
	assert.Equal(t, "responses.yaml", cfg.Portal.Fixture)
	assert.Equal(t, mc.FlagPriority|mc.FlagIntrDis, cfg.Portal.Flags())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	_, err := Load(writeConfig(t, "portal:\n  type: replay\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fixture")

	_, err = Load(writeConfig(t, "portal:\n  type: serial\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown portal type")
}
