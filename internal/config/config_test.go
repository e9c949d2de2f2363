package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dlwin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
library: /opt/glfw/lib/libglfw.so.3
width: 1024
gl:
  major: 3
  minor: 3
  core: true
`), 0o644))

	cfg := Default("OpenGL Triangle")
	require.NoError(t, Load(path, cfg))
	assert.Equal(t, &Config{
		Library: "/opt/glfw/lib/libglfw.so.3",
		Width:   1024,
		Height:  600,
		Title:   "OpenGL Triangle",
		GL:      GLConfig{Major: 3, Minor: 3, Core: true},
	}, cfg)
}

func TestLoadMissing(t *testing.T) {
	cfg := Default("Native Window")
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.yaml"), cfg))
	require.NoError(t, Load("", cfg))
	assert.Equal(t, Default("Native Window"), cfg)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("width: [800"), 0o644))
	err := Load(path, Default(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default("")
	t.Setenv(LibraryEnv, "")
	cfg.ApplyEnv()
	assert.Empty(t, cfg.Library)

	t.Setenv(LibraryEnv, "/tmp/libglfw3.so")
	cfg.ApplyEnv()
	assert.Equal(t, "/tmp/libglfw3.so", cfg.Library)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default("").Validate())

	cfg := Default("")
	cfg.Height = 0
	assert.Error(t, cfg.Validate())

	cfg = Default("")
	cfg.Frames = -1
	assert.Error(t, cfg.Validate())
}
