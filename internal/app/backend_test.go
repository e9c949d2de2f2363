//go:build !gogl

package app

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"dasa.cc/dlwin/dl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestCandidates(t *testing.T) {
	paths := candidates("linux", "")
	require.NotEmpty(t, paths)
	assert.Equal(t, "/usr/lib/libglfw3.so", paths[0])

	paths = candidates("darwin", "/custom/libglfw.3.dylib")
	assert.Equal(t, []string{
		"/custom/libglfw.3.dylib",
		"/usr/local/lib/libglfw3.dylib",
		"/opt/homebrew/lib/libglfw3.dylib",
		"/usr/lib/libglfw3.dylib",
	}, paths)
}

// statOnly reports a regular file for the given paths only.
func statOnly(t *testing.T, paths ...string) dl.StatFunc {
	file := filepath.Join(t.TempDir(), "libglfw3.so")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	return func(name string) (fs.FileInfo, error) {
		for _, p := range paths {
			if p == name {
				return os.Stat(file)
			}
		}
		return nil, fs.ErrNotExist
	}
}

func TestFindLibraryExplicitMissing(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path, err := findLibrary("linux", "/nope/libglfw3.so", statOnly(t, "/usr/lib64/libglfw3.so"), zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, "/usr/lib64/libglfw3.so", path)

	entries := logs.FilterMessage("library not found, using default").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/nope/libglfw3.so", entries[0].ContextMap()["lib"])
	assert.Equal(t, "/usr/lib64/libglfw3.so", entries[0].ContextMap()["path"])
}

func TestFindLibraryExplicitFound(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	path, err := findLibrary("linux", "/opt/libglfw3.so", statOnly(t, "/opt/libglfw3.so"), zap.New(core))
	require.NoError(t, err)
	assert.Equal(t, "/opt/libglfw3.so", path)
	assert.Zero(t, logs.Len())
}

func TestFindLibraryNone(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	_, err := findLibrary("linux", "/nope/libglfw3.so", statOnly(t), zap.New(core))
	assert.True(t, errors.Is(err, dl.ErrNotFound))
	assert.Zero(t, logs.Len())
}

func TestLogGLFWError(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logGLFWError(zap.New(core))(0x10008, "X11: bad")

	entries := logs.FilterMessage("glfw error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, map[string]interface{}{"code": "0x10008", "desc": "X11: bad"}, entries[0].ContextMap())
}
